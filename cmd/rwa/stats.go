package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/pipeline"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Print model sizes per family and unroutable demands",
		GroupID: "model",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := pipeline.LoadInstance(a.cfg.Instance)
			if err != nil {
				return err
			}
			m, err := model.Build(in, model.WithSelfDemands(a.cfg.SelfDemands))
			if err != nil {
				return err
			}
			pairs, err := in.Unroutable()
			if err != nil {
				return err
			}

			return writeStats(cmd.OutOrStdout(), m, len(pairs))
		},
	}
}

func writeStats(w io.Writer, m *model.Model, unroutable int) error {
	s := m.Stats()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "nodes\t%d\n", m.Nodes())
	fmt.Fprintf(tw, "wavelengths\t%d\n", m.Wavelengths())
	fmt.Fprintf(tw, "variables\t%d\n", m.NumVars())
	for _, f := range []model.Family{model.LightpathCount, model.WavelengthAssignment, model.RoutedSegment} {
		fmt.Fprintf(tw, "  %s\t%d\n", f, s.Variables[f])
	}
	fmt.Fprintf(tw, "constraints\t%d\n", m.NumConstraints())
	for _, f := range model.CoreFamilies() {
		fmt.Fprintf(tw, "  %s\t%d\n", f, s.Constraints[f])
	}
	fmt.Fprintf(tw, "nonzeros\t%d\n", s.Nonzeros)
	fmt.Fprintf(tw, "unroutable\t%d\n", unroutable)

	return tw.Flush()
}
