package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/tsclean/internal/ports/primary"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)

	okMark   = green.Sprint("✓")
	warnMark = yellow.Sprint("⚠")
	bold     = color.New(color.Bold).SprintFunc()
)

// statusMark renders a doctor or history status as a one-column colored marker.
func statusMark(status string) string {
	switch status {
	case primary.CheckOK, "succeeded":
		return green.Sprint("✓")
	case primary.CheckWarn, "running":
		return yellow.Sprint("⚠")
	default:
		return red.Sprint("✗")
	}
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "%s %s\n", warnMark, warning)
	}
}

// printPlan lists what a dry run would write.
func printPlan(w io.Writer, resp *primary.GenerateResponse) {
	plan := resp.Plan
	fmt.Fprintf(w, "Would write %d directories and %d files under %s\n", len(plan.Directories), len(plan.Files), resp.Root)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	for _, d := range plan.Directories {
		fmt.Fprintf(w, "  %s/\n", d)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Files:")
	for _, f := range plan.Files {
		fmt.Fprintf(w, "  %s\n", f.Path)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "(dry-run mode - no files written)")
}

func printNextSteps(w io.Writer, steps []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	for i, step := range steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}

// createNextSteps mirrors the commands a user runs after a fresh project.
func createNextSteps(resp *primary.GenerateResponse) []string {
	steps := []string{"cd " + resp.Root}
	if !resp.Installed {
		steps = append(steps, "npm install")
	}
	return append(steps, "npm run dev", "npm test")
}
