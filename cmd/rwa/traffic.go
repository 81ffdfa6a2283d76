package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rwa/logging"
	"github.com/katalvlaran/rwa/traffic"
)

func newTrafficCmd(a *app) *cobra.Command {
	var nodes int
	cmd := &cobra.Command{
		Use:     "traffic",
		Short:   "Generate a request matrix per security level as YAML",
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := traffic.Generate(nodes)
			if err != nil {
				return err
			}
			a.log.V(logging.DEBUG).Info("traffic generated", "nodes", nodes, "levels", len(m.Levels()))

			return m.WriteYAML(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&nodes, "nodes", 6, "number of nodes")

	return cmd
}
