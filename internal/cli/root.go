package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tsclean/internal/logger"
	"github.com/example/tsclean/internal/wire"
)

// AddGlobalFlags registers --verbose and --no-history on root and applies
// them before any subcommand runs.
func AddGlobalFlags(root *cobra.Command) {
	var verbose, noHistory bool

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history journal")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		applyGlobalFlags(verbose, noHistory)
	}
}

// applyGlobalFlags is also called by create, which parses its own flags.
func applyGlobalFlags(verbose, noHistory bool) {
	logger.Setup(os.Stderr, verbose)
	if noHistory {
		wire.DisableHistory()
	}
}

// commandContext tags the command's logger with its name for the services below.
func commandContext(cmd *cobra.Command) context.Context {
	return logger.InjectLogger(cmd.Context(), logger.L.With("command", cmd.Name()))
}
