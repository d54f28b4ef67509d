package cli

import (
	"github.com/spf13/cobra"

	"github.com/advisor-tools/advisor/internal/command"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <people|questionnaires>",
	Short: "List records held by an instance",
	Args:  cobra.MatchAll(cobra.ExactArgs(1), enumArg(0, "people", "questionnaires")),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, command.Parse("show", args))
	},
}
