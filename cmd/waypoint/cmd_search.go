package main

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/waypoint/cities"
	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/route"
	"github.com/katalvlaran/waypoint/search"
	"github.com/spf13/cobra"
)

type searchFlags struct {
	algorithm   string
	from, to    string
	steps       bool
	interval    time.Duration
	maxSteps    int
	maxDistance float64
	avoid       []string
}

func newSearchCmd(a *app) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a route between two cities",
		Long: `Search a route between two cities of the bundled graph.

With --steps every micro-step is printed, paced by --interval (the
configured search.interval when unset).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "bfs, dfs or dijkstra (defaults to search.algorithm)")
	fl.StringVar(&f.from, "from", "", "start city, e.g. \"Boston, MA\"")
	fl.StringVar(&f.to, "to", "", "destination city")
	fl.BoolVar(&f.steps, "steps", false, "print every step")
	fl.DurationVar(&f.interval, "interval", -1, "pause between printed steps")
	fl.IntVar(&f.maxSteps, "max-steps", -1, "step budget, 0 for unlimited (defaults to search.max_steps)")
	fl.Float64Var(&f.maxDistance, "max-distance", 0, "ignore frontier entries tagged beyond this distance")
	fl.StringArrayVar(&f.avoid, "avoid", nil, "city to route around (repeatable)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runSearch(cmd *cobra.Command, a *app, f *searchFlags) error {
	algo := a.cfg.Search.ParsedAlgorithm()
	if f.algorithm != "" {
		var err error
		if algo, err = route.ParseAlgorithm(f.algorithm); err != nil {
			return err
		}
	}

	var opts []search.Option
	if len(f.avoid) > 0 {
		opts = append(opts, search.WithAvoid(f.avoid...))
	}
	if f.maxDistance != 0 {
		opts = append(opts, search.WithMaxDistance(f.maxDistance))
	}

	g := cities.Graph()
	engine, err := route.New(g, algo, f.from, f.to, opts...)
	if err != nil {
		return err
	}

	maxSteps := a.cfg.Search.MaxSteps
	if f.maxSteps >= 0 {
		maxSteps = f.maxSteps
	}
	drive := []route.Option{route.WithMaxSteps(maxSteps)}
	out := cmd.OutOrStdout()
	if f.steps {
		interval := a.cfg.Search.Interval
		if f.interval >= 0 {
			interval = f.interval
		}
		drive = append(drive,
			route.WithInterval(interval),
			route.WithOnStep(func(s route.Snapshot) { printStep(out, s) }),
		)
	}

	logger := a.logger.With("algorithm", algo.String(), "from", f.from, "to", f.to)
	started := time.Now()
	res, err := route.Drive(cmd.Context(), engine, drive...)
	if err != nil {
		logger.Warn("search stopped", "steps", res.Steps, "error", err)
		return err
	}
	logger.Info("search finished", "status", res.Status.String(), "steps", res.Steps, "elapsed", time.Since(started))

	return printResult(out, res, g)
}

func printStep(w io.Writer, s route.Snapshot) {
	current := s.Current
	if current == search.Sentinel {
		current = "-"
	}
	fmt.Fprintf(w, "step %3d  %-12s current=%-20s frontier=%-3d visited=%d\n",
		s.Step, s.State, current, len(s.Visible), len(s.Visited))
}

func printResult(w io.Writer, res route.Result, g *core.Graph) error {
	fmt.Fprintf(w, "algorithm: %s\nstatus:    %s\nsteps:     %d\n", res.Algorithm, res.Status, res.Steps)
	if !res.Found() {
		return nil
	}

	fmt.Fprintln(w, "path:")
	for i, s := range res.Path {
		fmt.Fprintf(w, "  %2d  %-20s %12.3f\n", i, s.ID, s.Distance)
	}
	fmt.Fprintf(w, "distance:  %.3f\n", res.Distance())
	if km, err := cities.GreatCircleKm(g, res.IDs()); err == nil {
		fmt.Fprintf(w, "km:        %.1f\n", km)
	}

	return nil
}
