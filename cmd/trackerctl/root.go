package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type rootOptions struct {
	output  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "trackerctl",
		Short: "Inspect application status projections",
		Long: `trackerctl prints the status table, the projection of a single status
and the step track the tracker API serves, so operators can check what
students see for a given backend value.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(opts.verbose)
			switch opts.output {
			case outputText, outputJSON, outputYAML:
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (want text, json or yaml)", opts.output)
			}
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		newStatusesCmd(opts),
		newProjectCmd(opts),
		newStepsCmd(opts),
	)
	return cmd
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
