// Package dijkstra implements a resumable Dijkstra search from a start node to
// a destination over a core.Graph with non-negative Euclidean weights.
//
// Implementation:
//   - Stage 1 (New): validate ids, snapshot the graph, seed the heap with
//     (start, (Sentinel, 0)).
//   - Stage 2 (Pop): pop the minimum; destination → Found; stale → skip;
//     otherwise finalize and switch to Push.
//   - Stage 3 (Push): relax every neighbor of current, pushing only
//     improving candidates, then switch back to Pop.
package dijkstra

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/search"
)

// ShortestPath is a resumable Dijkstra search from start to dest.
// It is not safe for concurrent use.
type ShortestPath struct {
	graph   *core.Graph
	opts    search.Options
	dest    string
	current string
	pq      frontier
	seq     uint64
	visited map[string]search.Hop
	state   search.State
}

var _ search.Search = (*ShortestPath)(nil)

// New validates start and dest against g and returns an engine in the Pop
// state. Returns search.ErrNilGraph, search.ErrNodeNotFound or
// search.ErrOptionViolation.
func New(g *core.Graph, start, dest string, opts ...search.Option) (*ShortestPath, error) {
	if err := search.Validate(g, start, dest); err != nil {
		return nil, err
	}
	o, err := search.Apply(opts...)
	if err != nil {
		return nil, err
	}
	n := g.Len()

	s := &ShortestPath{
		graph:   g.Clone(),
		opts:    o,
		dest:    dest,
		current: search.Sentinel,
		pq:      make(frontier, 0, n),
		visited: make(map[string]search.Hop, n),
		state:   search.PopState(),
	}
	heap.Init(&s.pq)
	s.push(start, search.Hop{From: search.Sentinel})

	return s, nil
}

// Find runs Dijkstra to completion and returns the shortest path.
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

// Current returns the most recently popped node, stale pops included.
func (s *ShortestPath) Current() string { return s.current }

// State returns the machine state.
func (s *ShortestPath) State() search.State { return s.state }

// Visible returns the heap contents in pop order.
func (s *ShortestPath) Visible() []search.Entry {
	items := make(frontier, len(s.pq))
	copy(items, s.pq)
	sort.Slice(items, items.Less)

	out := make([]search.Entry, len(items))
	for i, it := range items {
		out[i] = it.Entry
	}

	return out
}

// Visited returns the finalized records sorted by ID.
func (s *ShortestPath) Visited() []search.Entry {
	return search.SortedEntries(s.visited)
}

// Next performs one transition.
func (s *ShortestPath) Next() search.Status {
	switch s.state.Kind {
	case search.Pop:
		return s.pop()
	case search.Push:
		s.relax()
		return search.Searching
	default:
		return s.state.Status()
	}
}

// Result returns the shortest path with cumulative distances once Found.
func (s *ShortestPath) Result() ([]search.Step, bool) {
	if s.state != search.DoneState(search.Found) {
		return nil, false
	}

	return search.Reconstruct(s.visited, s.dest), true
}

// pop extracts the minimum entry. A stale entry moves current but leaves the
// state in Pop.
func (s *ShortestPath) pop() search.Status {
	if s.pq.Len() == 0 {
		s.state = search.DoneState(search.NotFound)
		return search.NotFound
	}
	it := heap.Pop(&s.pq).(*item)

	if it.ID == s.dest {
		s.visited[it.ID] = it.Hop
		s.state = search.DoneState(search.Found)
		return search.Found
	}

	s.current = it.ID
	if prev, ok := s.visited[it.ID]; ok && prev.Distance < it.Distance {
		return search.Searching
	}
	s.visited[it.ID] = it.Hop
	s.state = search.PushState()

	return search.Searching
}

// relax pushes every neighbor of current whose candidate distance improves
// on its visited record.
func (s *ShortestPath) relax() {
	s.state = search.PopState()

	edges, err := s.graph.Neighbors(s.current)
	if err != nil {
		return
	}
	base := s.visited[s.current].Distance
	for _, e := range edges {
		candidate := base + e.Weight
		if prev, ok := s.visited[e.To]; ok && prev.Distance <= candidate {
			continue
		}
		if !s.opts.Allows(s.current, e.To, candidate) {
			continue
		}
		s.push(e.To, search.Hop{From: s.current, Distance: candidate})
	}
}

func (s *ShortestPath) push(id string, hop search.Hop) {
	heap.Push(&s.pq, &item{Entry: search.Entry{ID: id, Hop: hop}, seq: s.seq})
	s.seq++
}
