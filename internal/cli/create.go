package cli

import (
	"github.com/spf13/cobra"

	"github.com/advisor-tools/advisor/internal/command"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create person --<key> <value> [--<key> <value> ...]",
	Short: "Create a person record from key/value attributes",
	Long: `Create a record from arbitrary attribute pairs, e.g.:

  advisor create person --name Steve --email steve@example.com

Attribute names are free-form, so flag parsing is disabled here and the
token pairs are collected as-is.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rest := make([]string, 0, len(args))
		for i := 0; i < len(args); i++ {
			switch args[i] {
			case "-h", "--help":
				return cmd.Help()
			case "-a", "--app":
				// The persistent instance flag is ours even with flag
				// parsing off.
				if i+1 < len(args) {
					appName = args[i+1]
					i++
				}
			default:
				rest = append(rest, args[i])
			}
		}
		return run(cmd, command.Parse("create", rest))
	},
}
