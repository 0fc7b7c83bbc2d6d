package search

import (
	"fmt"
	"math"
)

// Option configures an engine via functional arguments.
type Option func(*Options)

// Options holds the knobs shared by every engine.
type Options struct {
	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor during Push.
	FilterNeighbor func(curr, neighbor string) bool

	// MaxDistance, if > 0, keeps entries whose tagged distance exceeds it
	// out of the frontier. The tag is cumulative for BFS and Dijkstra, so the
	// search radius is capped; DFS tags the last hop, so roads longer than
	// MaxDistance are ignored. 0 disables the limit.
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no filtering and no distance limit.
func DefaultOptions() Options {
	return Options{
		FilterNeighbor: func(_, _ string) bool { return true },
		MaxDistance:    0,
	}
}

// Apply builds Options from opts on top of DefaultOptions. The first invalid
// option is reported as ErrOptionViolation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// Allows reports whether the edge curr→neighbor tagged with distance d may
// enter the frontier.
func (o Options) Allows(curr, neighbor string, d float64) bool {
	if o.MaxDistance > 0 && d > o.MaxDistance {
		return false
	}

	return o.FilterNeighbor(curr, neighbor)
}

// WithFilterNeighbor skips neighbors when fn returns false. Filters compose:
// an edge must pass every filter supplied, including those from WithAvoid.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.FilterNeighbor
		if prev == nil {
			o.FilterNeighbor = fn
			return
		}
		o.FilterNeighbor = func(curr, neighbor string) bool {
			return prev(curr, neighbor) && fn(curr, neighbor)
		}
	}
}

// WithAvoid never expands into the listed nodes. Avoiding the start or the
// destination has no effect on the start, and makes the destination
// unreachable unless it is the start.
func WithAvoid(ids ...string) Option {
	if len(ids) == 0 {
		return nil
	}
	avoid := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		avoid[id] = struct{}{}
	}

	return WithFilterNeighbor(func(_, neighbor string) bool {
		_, skip := avoid[neighbor]
		return !skip
	})
}

// WithMaxDistance caps the tagged distance of frontier entries.
//
//	d > 0: limit to d
//	d == 0: explicit no limit
//	d < 0 or NaN: invalid option → ErrOptionViolation
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		switch {
		case d < 0 || math.IsNaN(d):
			if o.err == nil {
				o.err = fmt.Errorf("%w: MaxDistance must be >= 0 (%g)", ErrOptionViolation, d)
			}
		default:
			o.MaxDistance = d
		}
	}
}
