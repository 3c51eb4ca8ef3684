package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vasalvit/svgprogress"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the arcs of an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := svgprogress.ParseSvgFromReader(f, filepath.Base(args[0]), 0)
			if err != nil {
				return err
			}
			arcs, err := svgprogress.Arcs(doc)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STROKE\tWIDTH\tCENTER\tRADIUS\tSTART\tEND\tLARGE\tSWEEP")
			for _, a := range arcs {
				fmt.Fprintf(tw, "%s\t%g\t%.2f,%.2f\t%.2f\t%.2f,%.2f\t%.2f,%.2f\t%t\t%t\n",
					a.Stroke, a.StrokeWidth,
					a.Center[0], a.Center[1], a.Radius,
					a.Start[0], a.Start[1], a.End[0], a.End[1],
					a.LargeArc, a.Sweep)
			}
			return tw.Flush()
		},
	}
}
