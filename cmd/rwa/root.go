package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rwa/config"
	"github.com/katalvlaran/rwa/logging"
)

// app is the state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	configFile string
	cfg        *config.Config
	log        logr.Logger
	flush      func() error
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard(), flush: func() error { return nil }}

	root := &cobra.Command{
		Use:   "rwa",
		Short: "Routing and wavelength assignment model builder",
		Long: `rwa builds the MILP of a routing and wavelength assignment instance,
solves it in process with branch and bound and reports the lightpaths.

Configuration is read from flags, RWA_* environment variables and an
optional YAML file, in that order of precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		PersistentPostRun: func(*cobra.Command, []string) {
			// stderr sync fails on some terminals
			_ = a.flush()
		},
	}

	fs := root.PersistentFlags()
	config.RegisterFlags(fs)
	fs.StringVarP(&a.configFile, "config", "c", "", "YAML configuration file")

	root.AddGroup(&cobra.Group{ID: "model", Title: "Model Commands"})
	root.AddGroup(&cobra.Group{ID: "data", Title: "Data Commands"})
	root.AddCommand(
		newSolveCmd(a),
		newExportCmd(a),
		newStatsCmd(a),
		newTrafficCmd(a),
	)

	return root
}

// load resolves the configuration for cmd and builds the logger.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v, a.configFile)
	if err != nil {
		return err
	}
	log, flush, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.flush = cfg, log.WithName("rwa"), flush

	return nil
}
