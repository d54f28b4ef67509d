package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/advisor-tools/advisor/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	err := cli.Execute(version, commit, date)
	switch {
	case err == nil:
	case errors.Is(err, cli.ErrCommandFailed):
		// Failure line already printed by the command.
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
