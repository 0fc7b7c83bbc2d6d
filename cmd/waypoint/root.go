package main

import (
	"log/slog"

	"github.com/katalvlaran/waypoint/config"
	"github.com/katalvlaran/waypoint/logging"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "waypoint",
		Short: "Stepwise BFS, DFS and Dijkstra searches over a location graph",
		Long: `waypoint runs breadth-first, depth-first and Dijkstra searches over a
graph of 15 US cities and 30 roads, one micro-step at a time.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	pf.StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "override log.format (text, json)")

	root.AddCommand(
		newCitiesCmd(a),
		newSearchCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
	)

	return root
}

// load resolves the configuration (file, then flag overrides) and builds the
// logger on the command's stderr.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}
