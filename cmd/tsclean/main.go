package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tsclean/internal/cli"
	"github.com/example/tsclean/internal/version"
	"github.com/example/tsclean/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tsclean",
		Short:   "tsclean - clean-architecture TypeScript API scaffolder",
		Version: version.String(),
		Long: `tsclean generates TypeScript/Express/MongoDB API projects organized in
clean-architecture layers, and adds CRUD features to projects it created.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(cli.CreateCmd())
	rootCmd.AddCommand(cli.FeatureCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("✗"), err)
		os.Exit(1)
	}
}
