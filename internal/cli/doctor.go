package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/example/tsclean/internal/ports/primary"
	"github.com/example/tsclean/internal/wire"
)

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that Node.js tooling for generated projects is available",
		Long: `Check the tools a generated project needs.

Validates:
- node (version 18 or higher, configurable with TSCLEAN_NODE_MIN_VERSION)
- npm
- tsc (warning only; generated projects install TypeScript locally)

The same node and npm checks run before 'tsclean create' unless --skip-checks is given.

Examples:
  tsclean doctor              # Run full health check
  tsclean doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := wire.DoctorService().Check(cmd.Context())

			hasErrors := false
			for _, r := range results {
				if r.Status == primary.CheckFail {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printChecks(cmd.OutOrStdout(), results, hasErrors)
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func printChecks(w io.Writer, results []primary.CheckResult, hasErrors bool) {
	// Print compact table
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check    Status  Version")
	fmt.Fprintln(w, "─────────────────────────")
	for _, r := range results {
		fmt.Fprintf(w, "%-8s %s       %s\n", r.Name, statusMark(r.Status), r.Version)
	}
	fmt.Fprintln(w)

	// Print details for non-passing checks
	hasDetails := false
	for _, r := range results {
		if r.Status != primary.CheckOK && r.Details != "" {
			if !hasDetails {
				fmt.Fprintln(w, "Details:")
				hasDetails = true
			}
			fmt.Fprintf(w, "\n%s:\n  %s\n", r.Name, r.Details)
		}
	}

	if hasErrors {
		fmt.Fprintf(w, "\n%s Issues found. Install the missing tools or pass --skip-checks to create.\n", warnMark)
	} else {
		fmt.Fprintln(w, "All checks passed.")
	}
}
