package cli

import (
	"github.com/spf13/cobra"

	"github.com/advisor-tools/advisor/internal/command"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <questionnaire_id> <add|remove> <email>",
	Short: "Add a person to or remove a person from a questionnaire",
	Args:  cobra.MatchAll(cobra.ExactArgs(3), enumArg(1, "add", "remove"), emailArg(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, command.Parse("update", args))
	},
}
