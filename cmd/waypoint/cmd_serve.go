package main

import (
	"github.com/katalvlaran/waypoint/cities"
	"github.com/katalvlaran/waypoint/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the city graph and streaming searches over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			srv := server.New(cities.Graph(), cfg,
				server.WithLogger(a.logger),
				server.WithGeographic(),
				server.WithProcessMetrics(),
			)

			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to server.addr)")

	return cmd
}
