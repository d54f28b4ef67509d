package cli

import (
	"github.com/spf13/cobra"

	"github.com/advisor-tools/advisor/internal/command"
)

func init() {
	rootCmd.AddCommand(healthCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that an instance is up",
	Long:  `Probe the unauthenticated healthcheck endpoint of the selected instance.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, command.Parse("health", args))
	},
}
