package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/waypoint/cities"
	"github.com/spf13/cobra"
)

func newCitiesCmd(a *app) *cobra.Command {
	var roads bool
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List the cities (and optionally the roads) of the bundled graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cities.Graph()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "CITY\tLAT\tLON\tROADS")
			nodes := g.Nodes()
			for _, id := range g.IDs() {
				n := nodes[id]
				ll := cities.LonLat(n.Point())
				fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%d\n", id, ll.Lat(), ll.Lon(), n.Degree())
			}
			if roads {
				fmt.Fprintln(w, "\nFROM\tTO\tKM\tWEIGHT")
				for _, r := range cities.Roads(g) {
					fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\n", r.A, r.B, r.Km, r.Weight)
				}
			}
			a.logger.Debug("listed cities", "cities", g.Len(), "roads", g.EdgeCount()/2)

			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&roads, "roads", false, "also list every road with its great-circle length")

	return cmd
}
