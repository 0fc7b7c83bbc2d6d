// Command waypoint searches the bundled US city graph from the terminal or
// serves it over HTTP.
//
//	waypoint cities
//	waypoint search --algorithm bfs --from "Boston, MA" --to "Los Angeles, CA" --steps
//	waypoint serve --addr :8080
//	waypoint config > waypoint.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "waypoint:", err)
		stop()
		os.Exit(1)
	}
}
