package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/advisor-tools/advisor/internal/command"
	"github.com/advisor-tools/advisor/internal/config"
	"github.com/advisor-tools/advisor/internal/dispatch"
	"github.com/advisor-tools/advisor/internal/httpexec"
)

// ErrCommandFailed marks a dispatch or transport failure that has already
// been reported as a Failure line; main translates it into exit code 1
// without printing again.
var ErrCommandFailed = errors.New("command failed")

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var appName string

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Manage instances of advisor",
	Long: `advisor talks to the HTTP API of one or more named advisor service
instances: health checks, people listings, and questionnaire membership.

Instances are declared in a .advisor settings file, found in the current
directory or your home directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&appName, "app", "a", "", "Name of the configured instance to act on")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// run is the shared lifecycle behind every remote operation: load config,
// resolve the target instance, dispatch, print the outcome. Config and
// instance problems abort before any output and surface through cobra;
// everything after that point produces exactly one Success or Failure line.
func run(c *cobra.Command, cmd command.Command) error {
	reg, err := config.Load()
	if err != nil {
		return err
	}
	inst, err := reg.Resolve(appName)
	if err != nil {
		return err
	}

	d := dispatch.New(httpexec.New())
	out, err := d.Run(c.Context(), inst, cmd)
	if err != nil {
		fmt.Fprintf(c.OutOrStdout(), "Failure: %s\n", err)
		return ErrCommandFailed
	}
	fmt.Fprintf(c.OutOrStdout(), "Success: %s\n", out)
	return nil
}

// emailArg validates that positional argument i contains the @ every email
// needs, so an invalid address is rejected before it can reach the command
// model.
func emailArg(i int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if i < len(args) && !command.HasAt(args[i]) {
			return fmt.Errorf("%q does not contain the required @", args[i])
		}
		return nil
	}
}

// enumArg constrains positional argument i to one of the allowed values.
func enumArg(i int, allowed ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if i >= len(args) {
			return nil
		}
		for _, a := range allowed {
			if args[i] == a {
				return nil
			}
		}
		return fmt.Errorf("argument %q must be one of %v", args[i], allowed)
	}
}
