package bfs

import (
	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/search"
)

// BreadthFirstSearch is a resumable breadth-first search from start to dest.
// It is not safe for concurrent use.
type BreadthFirstSearch struct {
	graph      *core.Graph
	opts       search.Options
	dest       string
	current    string
	queue      []search.Entry
	discovered map[string]struct{}
	visited    map[string]search.Hop
	state      search.State
}

var _ search.Search = (*BreadthFirstSearch)(nil)

// New validates start and dest against g and returns an engine in the Pop
// state. Returns search.ErrNilGraph, search.ErrNodeNotFound or
// search.ErrOptionViolation.
func New(g *core.Graph, start, dest string, opts ...search.Option) (*BreadthFirstSearch, error) {
	if err := search.Validate(g, start, dest); err != nil {
		return nil, err
	}
	o, err := search.Apply(opts...)
	if err != nil {
		return nil, err
	}
	n := g.Len()

	s := &BreadthFirstSearch{
		graph:      g.Clone(),
		opts:       o,
		dest:       dest,
		current:    search.Sentinel,
		queue:      make([]search.Entry, 0, n),
		discovered: make(map[string]struct{}, n),
		visited:    make(map[string]search.Hop, n),
		state:      search.PopState(),
	}
	s.discovered[start] = struct{}{}
	s.queue = append(s.queue, search.Entry{ID: start, Hop: search.Hop{From: search.Sentinel}})

	return s, nil
}

// Find runs a breadth-first search to completion and returns its path.
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
func (s *BreadthFirstSearch) Current() string { return s.current }

// State returns the machine state.
func (s *BreadthFirstSearch) State() search.State { return s.state }

// Visible returns the queue, front first.
func (s *BreadthFirstSearch) Visible() []search.Entry {
	out := make([]search.Entry, len(s.queue))
	copy(out, s.queue)

	return out
}

// Visited returns the finalized records sorted by ID.
func (s *BreadthFirstSearch) Visited() []search.Entry {
	return search.SortedEntries(s.visited)
}

// Next performs one transition.
func (s *BreadthFirstSearch) Next() search.Status {
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

// Result returns the path with cumulative distances once Found.
func (s *BreadthFirstSearch) Result() ([]search.Step, bool) {
	if s.state != search.DoneState(search.Found) {
		return nil, false
	}

	return search.Reconstruct(s.visited, s.dest), true
}

// pop dequeues the front entry and finalizes it.
func (s *BreadthFirstSearch) pop() search.Status {
	if len(s.queue) == 0 {
		s.state = search.DoneState(search.NotFound)
		return search.NotFound
	}
	e := s.queue[0]
	s.queue = s.queue[1:]

	s.visited[e.ID] = e.Hop
	if e.ID == s.dest {
		s.state = search.DoneState(search.Found)
		return search.Found
	}
	s.current = e.ID
	s.state = search.PushState()

	return search.Searching
}

// push enqueues every undiscovered neighbor of current.
func (s *BreadthFirstSearch) push() {
	s.state = search.PopState()

	edges, err := s.graph.Neighbors(s.current)
	if err != nil {
		return
	}
	base := s.visited[s.current].Distance
	for _, e := range edges {
		if _, seen := s.discovered[e.To]; seen {
			continue
		}
		d := e.Weight + base
		if !s.opts.Allows(s.current, e.To, d) {
			continue
		}
		s.discovered[e.To] = struct{}{}
		s.queue = append(s.queue, search.Entry{
			ID:  e.To,
			Hop: search.Hop{From: s.current, Distance: d},
		})
	}
}
