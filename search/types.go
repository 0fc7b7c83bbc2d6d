// Package search types: status, state machine, records and the Search contract.
package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for engine construction.
var (
	// ErrNilGraph is returned when an engine is asked to search a nil graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNodeNotFound is returned when start or destination is absent.
	ErrNodeNotFound = errors.New("search: node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Sentinel marks "no predecessor"; only the start node carries it.
const Sentinel = ""

// Status is the outcome reported by every Next call.
type Status int

const (
	// Searching means the step was consumed and the search is not resolved.
	Searching Status = iota
	// Found means the destination was reached and a path is available.
	Found
	// NotFound means the frontier ran empty before reaching the destination.
	NotFound
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Searching:
		return "Searching"
	case Found:
		return "Found"
	case NotFound:
		return "Not Found"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// StateKind names the three machine states.
type StateKind int

const (
	// Pop: about to examine the next frontier entry.
	Pop StateKind = iota
	// Push: about to expand the node just finalized.
	Push
	// Done: terminal.
	Done
)

// State is the current machine state. The terminal status is meaningful only
// when Kind is Done.
type State struct {
	Kind   StateKind
	status Status
}

// PopState returns the Pop state.
func PopState() State { return State{Kind: Pop} }

// PushState returns the Push state.
func PushState() State { return State{Kind: Push} }

// DoneState returns the terminal state carrying s.
func DoneState(s Status) State { return State{Kind: Done, status: s} }

// IsDone reports whether the state is terminal.
func (s State) IsDone() bool { return s.Kind == Done }

// Status returns the terminal status, or Searching for Pop and Push.
func (s State) Status() Status {
	if s.Kind != Done {
		return Searching
	}

	return s.status
}

// String renders "Pop", "Push" or "Done(<status>)".
func (s State) String() string {
	switch s.Kind {
	case Pop:
		return "Pop"
	case Push:
		return "Push"
	case Done:
		return fmt.Sprintf("Done(%s)", s.status)
	default:
		return fmt.Sprintf("State(%d)", int(s.Kind))
	}
}

// Hop is a tentative or settled (predecessor, distance) pair.
type Hop struct {
	From     string  // predecessor ID, Sentinel for the start node
	Distance float64 // cumulative or last-hop, per engine policy
}

// Entry is one frontier or visited record.
type Entry struct {
	ID string
	Hop
}

// Step is one element of a result path.
type Step struct {
	ID       string
	Distance float64
}

// Search is the stepwise pathfinding contract. Implementations are not safe
// for concurrent use; one driver owns one Search.
type Search interface {
	// Current returns the most recently finalized node, Sentinel before the
	// first successful pop.
	Current() string

	// Visible returns a snapshot of the frontier.
	Visible() []Entry

	// Visited returns a snapshot of the finalized records sorted by ID.
	Visited() []Entry

	// State returns the current machine state.
	State() State

	// Next advances exactly one transition and returns the resulting status.
	// After Done it returns the stored status without mutating anything.
	Next() Status

	// Result returns the start→destination path when the state is
	// Done(Found); otherwise nil, false.
	Result() ([]Step, bool)
}
