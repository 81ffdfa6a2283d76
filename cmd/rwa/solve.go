package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rwa/metrics"
	"github.com/katalvlaran/rwa/pipeline"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "solve",
		Short:   "Build, solve and report an instance",
		GroupID: "model",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := pipeline.Run(cmd.Context(), a.cfg, pipeline.Deps{
				Log:     a.log,
				Metrics: metrics.NewRegistry(),
				Out:     cmd.OutOrStdout(),
			})

			return err
		},
	}
}
