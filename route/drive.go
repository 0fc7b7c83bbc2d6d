package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/waypoint/search"
	"golang.org/x/time/rate"
)

// Sentinel errors for Drive.
var (
	// ErrNilSearch is returned when Drive is handed a nil engine.
	ErrNilSearch = errors.New("route: search is nil")

	// ErrStepBudget is returned when WithMaxSteps runs out before the search
	// reaches a terminal state.
	ErrStepBudget = errors.New("route: step budget exhausted")

	// ErrInvalidOption is returned for a negative interval or step budget.
	ErrInvalidOption = errors.New("route: invalid option supplied")
)

// Snapshot is what a renderer sees after one step.
type Snapshot struct {
	Step    int // 1-based index of the Next call that produced it
	State   search.State
	Status  search.Status
	Current string
	Visible []search.Entry
	Visited []search.Entry
}

// Capture reads a Snapshot from s without stepping it.
func Capture(s search.Search, step int, status search.Status) Snapshot {
	return Snapshot{
		Step:    step,
		State:   s.State(),
		Status:  status,
		Current: s.Current(),
		Visible: s.Visible(),
		Visited: s.Visited(),
	}
}

// Option configures Drive.
type Option func(*driveOptions)

type driveOptions struct {
	interval time.Duration
	maxSteps int
	onStep   func(Snapshot)
	err      error
}

// WithInterval paces Next calls to at most one per d. Zero disables pacing.
func WithInterval(d time.Duration) Option {
	return func(o *driveOptions) {
		if d < 0 {
			o.fail(fmt.Errorf("%w: interval must be >= 0 (%s)", ErrInvalidOption, d))
			return
		}
		o.interval = d
	}
}

// WithMaxSteps caps the number of Next calls. Zero means unlimited.
func WithMaxSteps(n int) Option {
	return func(o *driveOptions) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: max steps must be >= 0 (%d)", ErrInvalidOption, n))
			return
		}
		o.maxSteps = n
	}
}

// WithOnStep calls fn with a Snapshot after every Next call. fn runs on the
// driving goroutine; a slow fn slows the search.
func WithOnStep(fn func(Snapshot)) Option {
	return func(o *driveOptions) { o.onStep = fn }
}

func (o *driveOptions) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Drive calls s.Next until the state is Done, the step budget runs out, or
// ctx ends. The returned Result always reports the steps taken; Path is set
// only when the search finished with Found.
//
// Behavior highlights:
//   - An engine that is already Done returns its stored result with Steps 0.
//   - With WithInterval the first step runs immediately and each later step
//     waits for the limiter.
//   - On budget exhaustion or cancellation the engine is left resumable.
func Drive(ctx context.Context, s search.Search, opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSearch
	}
	o := driveOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	algo, _ := AlgorithmOf(s)
	res := Result{Algorithm: algo, Status: s.State().Status()}
	if o.err != nil {
		return res, o.err
	}

	var limiter *rate.Limiter
	if o.interval > 0 {
		limiter = rate.NewLimiter(rate.Every(o.interval), 1)
	}

	for !s.State().IsDone() {
		if o.maxSteps > 0 && res.Steps >= o.maxSteps {
			return res, fmt.Errorf("%w: after %d steps", ErrStepBudget, res.Steps)
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return res, err
			}
		}

		res.Status = s.Next()
		res.Steps++
		if o.onStep != nil {
			o.onStep(Capture(s, res.Steps, res.Status))
		}
	}

	res.Status = s.State().Status()
	res.Path, _ = s.Result()

	return res, nil
}
