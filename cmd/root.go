package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// reportError prints err unless the command already told the user what went
// wrong in its own output.
func reportError(w io.Writer, err error) {
	if errors.Is(err, errInvalidBuilding) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "campusnav",
		Short:             "Find the shortest walking route between campus buildings.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging(input),
	}
	rootCmd.PersistentFlags().StringVarP(&input.networkPath, "network", "n", "", "path to a network YAML file (default: built-in IST campus)")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Var(&input.logFormat, "log-format", "log output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&input.skipFinalized, "skip-finalized", true, "skip heap entries for nodes whose distance is already final")

	rootCmd.AddCommand(
		newRouteCommand(input),
		newRoutesCommand(ctx, input),
		newBuildingsCommand(input),
		newReachCommand(input),
		newInteractiveCommand(input),
		newServeCommand(ctx, input),
	)

	return rootCmd
}

func setupLogging(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		log.SetFormatter(input.logFormat.formatter())
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
		log.Debugf("campusnav %s", cmd.Root().Version)

		return nil
	}
}
