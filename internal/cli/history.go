package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/tsclean/internal/ports/primary"
	"github.com/example/tsclean/internal/wire"
)

// HistoryCmd returns the history command and its subcommands.
func HistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded create and feature runs",
		Long: `List previous generation runs, newest first.

Every create and feature run is recorded with the paths it wrote, so a run that
failed half way can be inspected and cleaned up with 'tsclean history show <id>'.

Examples:
  tsclean history
  tsclean history --limit 5
  tsclean history show 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := wire.HistoryService().ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printRuns(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	cmd.AddCommand(historyShowCmd())

	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a run and every path it wrote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRunID(args[0])
			if err != nil {
				return err
			}
			run, err := wire.HistoryService().GetRun(cmd.Context(), id)
			if err != nil {
				return err
			}
			printRunDetail(cmd.OutOrStdout(), run)
			return nil
		},
	}
}

func printRuns(w io.Writer, runs []*primary.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-5s %-8s %-11s %-20s %6s  %s\n", "ID", "COMMAND", "STATUS", "PROJECT", "FILES", "STARTED")
	for _, r := range runs {
		// Pad the plain status only; color codes would skew the width.
		fmt.Fprintf(w, "%-5d %-8s %s %-9s %-20s %6d  %s\n",
			r.ID, r.Command, statusMark(r.Status), r.Status, r.ProjectName, r.FileCount, r.StartedAt)
	}
}

func printRunDetail(w io.Writer, run *primary.RunDetail) {
	fmt.Fprintf(w, "Run #%d %s %s\n", run.ID, run.Command, statusMark(run.Status))
	fmt.Fprintf(w, "  Project:  %s\n", bold(run.ProjectName))
	fmt.Fprintf(w, "  Root:     %s\n", run.RootPath)
	if len(run.Features) > 0 {
		fmt.Fprintf(w, "  Features: %s\n", strings.Join(run.Features, ", "))
	}
	fmt.Fprintf(w, "  Started:  %s\n", run.StartedAt)
	if run.FinishedAt != "" {
		fmt.Fprintf(w, "  Finished: %s\n", run.FinishedAt)
	}
	if run.Error != "" {
		fmt.Fprintf(w, "  Error:    %s\n", run.Error)
	}

	fmt.Fprintf(w, "\nDirectories (%d):\n", len(run.Directories))
	for _, d := range run.Directories {
		fmt.Fprintf(w, "  %s/\n", d)
	}
	fmt.Fprintf(w, "\nFiles (%d):\n", len(run.Files))
	for _, f := range run.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
}
