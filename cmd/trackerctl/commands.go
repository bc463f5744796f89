package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yuhakway/tracker/internal/progress"
)

func newStatusesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "Print every known status in canonical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := progress.Table()
			return render(cmd.OutOrStdout(), opts.output, table, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "STATUS\tLABEL\tPERCENT\tCOLOR\tTERMINAL")
				for _, p := range table {
					fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\t%t\n", p.Status, p.Label, p.Percentage, p.Color, p.Terminal)
				}
			})
		},
	}
}

func newProjectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "project <status>",
		Short: "Print the projection of a status value",
		Long:  "Print the projection of a status value. Values outside the known set get the fallback projection.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := progress.Project(args[0])
			if !p.Known {
				slog.Debug("status is not in the known set", "status", args[0])
			}
			return render(cmd.OutOrStdout(), opts.output, p, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Status:\t%s\n", p.Status)
				fmt.Fprintf(tw, "Known:\t%t\n", p.Known)
				fmt.Fprintf(tw, "Label:\t%s\n", p.Label)
				fmt.Fprintf(tw, "Percentage:\t%d%%\n", p.Percentage)
				fmt.Fprintf(tw, "Color:\t%s\n", p.Color)
				fmt.Fprintf(tw, "Terminal:\t%t\n", p.Terminal)
				fmt.Fprintf(tw, "Description:\t%s\n", p.Description)
			})
		},
	}
}

func newStepsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "steps <status>",
		Short: "Print the step track for a status value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			track := progress.Track(args[0])
			return render(cmd.OutOrStdout(), opts.output, track, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "STEP\tLABEL\tTHRESHOLD\tDONE\tCURRENT")
				for _, s := range track {
					fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\t%s\n", s.Status, s.Label, s.Threshold, mark(s.Completed), mark(s.Current))
				}
			})
		},
	}
}

// render writes v in the requested format; text uses the table callback.
func render(w io.Writer, format string, v any, table func(*tabwriter.Writer)) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}

func mark(b bool) string {
	if b {
		return "x"
	}
	return "-"
}
