package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/tsclean/internal/introspect"
	"github.com/example/tsclean/internal/ports/primary"
	"github.com/example/tsclean/internal/scaffold"
	"github.com/example/tsclean/internal/wire"
)

// FeatureCmd returns the feature command, which adds a CRUD slice to an existing project.
func FeatureCmd() *cobra.Command {
	var (
		fieldsStr string
		dir       string
		strict    bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "feature <feature-name>",
		Short: "Add a feature to an existing project",
		Long: `Add a CRUD feature to a project created by tsclean.

The existing features are read from .tsclean.yaml, or from README.md when the
manifest is missing (fields are then lost and regenerated with defaults).
The bootstrap, README and manifest are regenerated so every feature stays mounted.

Examples:
  tsclean feature product
  tsclean feature order --fields "total:number:min=0,status:string:enum=new|paid"
  tsclean feature review --dir ./shop --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("fields") && fieldsStr == "" {
				return usageErrorf("--fields requires a comma-separated list of field:type:rule entries")
			}

			feature, err := scaffold.BuildFeatureSpec(args[0], fieldsStr)
			if err != nil {
				return err
			}

			resp, err := wire.ScaffoldService().AddFeature(commandContext(cmd), primary.AddFeatureRequest{
				Root:    dir,
				Feature: feature,
				Strict:  strict,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printWarnings(out, resp.Plan.Warnings)
			if resp.RosterSource == string(introspect.SourceReadme) {
				fmt.Fprintf(out, "%s No .tsclean.yaml found; existing features were recovered from README.md with default fields\n", warnMark)
			}
			if resp.DryRun {
				printPlan(out, resp)
				return nil
			}

			fmt.Fprintf(out, "%s Feature '%s' added to %s\n", okMark, feature.Name, bold(resp.ProjectName))
			if resp.RunID != 0 {
				fmt.Fprintf(out, "  Run: #%d\n", resp.RunID)
			}
			printNextSteps(out, []string{"npm run dev", "npm test"})
			return nil
		},
	}

	cmd.Flags().StringVar(&fieldsStr, "fields", "", "Comma-separated name:type[:rule] entries")
	cmd.Flags().StringVar(&dir, "dir", ".", "Project root")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unknown types or ignored rules instead of warning")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")

	return cmd
}
