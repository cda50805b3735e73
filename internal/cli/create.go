package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/tsclean/internal/ports/primary"
	"github.com/example/tsclean/internal/wire"
)

// CreateCmd returns the create command, which scaffolds a new project.
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <project-name> [path] [--feature <name> [--fields <spec>]]...",
		Short: "Create a new clean-architecture TypeScript API project",
		Long: `Create a TypeScript/Express/MongoDB API project laid out in clean-architecture layers.

The project is written to <path>/<project-name> (path defaults to the current
directory). Each --feature adds a CRUD slice; an optional --fields right after it
declares the feature's fields as comma-separated name:type[:rule] entries.

Types: string, number, boolean (anything else maps to any)
Rules: minlength=N, maxlength=N, min=N, max=N, email, enum=a|b|c

Without --fields a feature gets name:string:minlength=3,email:string:email.

Examples:
  tsclean create shop
  tsclean create shop ~/src --feature product --fields "title:string:minlength=3,price:number:min=0"
  tsclean create shop --feature user --feature order --dry-run`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseCreateArgs(args)
			if err != nil {
				return err
			}
			if opts.Help {
				return cmd.Help()
			}
			applyGlobalFlags(opts.Verbose, opts.NoHistory)

			// Every feature is validated before anything is planned or written
			features, err := opts.featureSpecs()
			if err != nil {
				return err
			}

			resp, err := wire.ScaffoldService().CreateProject(commandContext(cmd), primary.CreateProjectRequest{
				ProjectName: opts.ProjectName,
				ParentDir:   opts.ParentDir,
				Features:    features,
				Strict:      opts.Strict,
				DryRun:      opts.DryRun,
				SkipChecks:  opts.SkipChecks,
				Install:     opts.Install,
			})
			if resp == nil {
				return err
			}

			out := cmd.OutOrStdout()
			printWarnings(out, resp.Plan.Warnings)
			if resp.DryRun {
				printPlan(out, resp)
				return nil
			}

			fmt.Fprintf(out, "%s Created %s at %s (%d files)\n", okMark, bold(resp.ProjectName), resp.Root, len(resp.Plan.Files))
			if len(resp.Features) > 0 {
				fmt.Fprintf(out, "  Features: %s\n", strings.Join(resp.Features, ", "))
			}
			if resp.RunID != 0 {
				fmt.Fprintf(out, "  Run: #%d\n", resp.RunID)
			}
			if err != nil {
				// Project is on disk but npm install failed
				return err
			}
			printNextSteps(out, createNextSteps(resp))
			return nil
		},
	}

	// Parsed by parseCreateArgs; declared so they show up in --help.
	cmd.Flags().StringArray("feature", nil, "Feature (CRUD slice) to generate; repeatable")
	cmd.Flags().StringArray("fields", nil, "Fields for the preceding --feature (name:type[:rule],...)")
	cmd.Flags().Bool("strict", false, "Fail on unknown types or ignored rules instead of warning")
	cmd.Flags().Bool("skip-checks", false, "Skip the node/npm environment checks")
	cmd.Flags().Bool("install", false, "Run npm install in the new project")
	cmd.Flags().Bool("dry-run", false, "Show what would be written without writing")

	return cmd
}
