package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rwa/pipeline"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "export [file]",
		Short:   "Write the model in LP format",
		Long:    "Write the model in CPLEX LP format to file, or to stdout when no file is given.",
		GroupID: "model",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := pipeline.BuildModel(a.cfg)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return m.WriteLP(cmd.OutOrStdout())
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := m.WriteLP(f); err != nil {
				_ = f.Close()
				return err
			}
			a.log.Info("model written", "file", args[0], "variables", m.NumVars(), "constraints", m.NumConstraints())

			return f.Close()
		},
	}
}
