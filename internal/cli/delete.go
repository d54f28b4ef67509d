package cli

import (
	"github.com/spf13/cobra"

	"github.com/advisor-tools/advisor/internal/command"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Delete a person record",
	Args:  cobra.MatchAll(cobra.ExactArgs(1), emailArg(0)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, command.Parse("delete", args))
	},
}
