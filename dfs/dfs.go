package dfs

import (
	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/search"
)

// DepthFirstSearch is a resumable depth-first search from start to dest.
// It is not safe for concurrent use.
type DepthFirstSearch struct {
	graph      *core.Graph
	opts       search.Options
	dest       string
	current    string
	stack      []search.Entry // top is the last element
	discovered map[string]struct{}
	visited    map[string]search.Hop
	state      search.State
}

var _ search.Search = (*DepthFirstSearch)(nil)

// New validates start and dest against g and returns an engine in the Pop
// state. Returns search.ErrNilGraph, search.ErrNodeNotFound or
// search.ErrOptionViolation.
func New(g *core.Graph, start, dest string, opts ...search.Option) (*DepthFirstSearch, error) {
	if err := search.Validate(g, start, dest); err != nil {
		return nil, err
	}
	o, err := search.Apply(opts...)
	if err != nil {
		return nil, err
	}
	n := g.Len()

	s := &DepthFirstSearch{
		graph:      g.Clone(),
		opts:       o,
		dest:       dest,
		current:    search.Sentinel,
		stack:      make([]search.Entry, 0, n),
		discovered: map[string]struct{}{start: {}},
		visited:    make(map[string]search.Hop, n),
		state:      search.PopState(),
	}
	s.stack = append(s.stack, search.Entry{ID: start, Hop: search.Hop{From: search.Sentinel}})

	return s, nil
}

// Find runs a depth-first search to completion and returns its path.
func Find(g *core.Graph, start, dest string, opts ...search.Option) ([]search.Step, bool, error) {
	s, err := New(g, start, dest, opts...)
	if err != nil {
		return nil, false, err
	}
	for s.Next() == search.Searching {
	}
	path, ok := s.Result()

	return path, ok, nil
}

// Current returns the most recently finalized node.
func (s *DepthFirstSearch) Current() string { return s.current }

// State returns the machine state.
func (s *DepthFirstSearch) State() search.State { return s.state }

// Visible returns the stack, bottom first; the next pop is the last entry.
func (s *DepthFirstSearch) Visible() []search.Entry {
	out := make([]search.Entry, len(s.stack))
	copy(out, s.stack)

	return out
}

// Visited returns the finalized records sorted by ID.
func (s *DepthFirstSearch) Visited() []search.Entry {
	return search.SortedEntries(s.visited)
}

// Next performs one transition.
func (s *DepthFirstSearch) Next() search.Status {
	switch s.state.Kind {
	case search.Pop:
		return s.pop()
	case search.Push:
		s.push()
		return search.Searching
	default:
		return s.state.Status()
	}
}

// Result returns the path with last-hop distances once Found.
func (s *DepthFirstSearch) Result() ([]search.Step, bool) {
	if s.state != search.DoneState(search.Found) {
		return nil, false
	}

	return search.Reconstruct(s.visited, s.dest), true
}

func (s *DepthFirstSearch) pop() search.Status {
	top := len(s.stack) - 1
	if top < 0 {
		s.state = search.DoneState(search.NotFound)
		return search.NotFound
	}
	e := s.stack[top]
	s.stack = s.stack[:top]

	s.visited[e.ID] = e.Hop
	if e.ID == s.dest {
		s.state = search.DoneState(search.Found)
		return search.Found
	}
	s.current = e.ID
	s.state = search.PushState()

	return search.Searching
}

func (s *DepthFirstSearch) push() {
	s.state = search.PopState()

	edges, err := s.graph.Neighbors(s.current)
	if err != nil {
		return
	}
	for _, e := range edges {
		if _, seen := s.discovered[e.To]; seen {
			continue
		}
		d := e.Weight
		if !s.opts.Allows(s.current, e.To, d) {
			continue
		}
		s.discovered[e.To] = struct{}{}
		s.stack = append(s.stack, search.Entry{
			ID:  e.To,
			Hop: search.Hop{From: s.current, Distance: d},
		})
	}
}

// Total sums the last-hop distances of a depth-first path.
func Total(path []search.Step) float64 {
	total := 0.0
	for _, st := range path {
		total += st.Distance
	}

	return total
}
