// Package core defines the central Graph, Node and Edge types together with
// the sentinel errors and constructors of the location graph.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrNodeNotFound - requested node does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation was given an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Edge is one outgoing half-edge of a Node: the neighbor it leads to and the
// Euclidean distance recorded when the edge was added.
type Edge struct {
	// To is the neighbor node ID.
	To string

	// Weight is the non-negative edge length.
	Weight float64
}

// Node is a named vertex placed at a Point.
//
// The neighbor mapping is private: only Graph adds or removes edges. Edges()
// exposes it in lexicographic neighbor order.
type Node struct {
	id    string
	point Point
	edges map[string]float64 // neighbor ID → weight
}

// Graph is an owning collection of Nodes keyed by ID.
//
// mu guards nodes and every Node's edge map; Nodes handed out by the query
// methods are detached copies.
type Graph struct {
	mu    sync.RWMutex
	nodes map[string]*Node
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// NewGraphWithCapacity creates an empty Graph pre-sized for n nodes.
// A negative hint is treated as zero.
func NewGraphWithCapacity(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{nodes: make(map[string]*Node, n)}
}

// newNode allocates a Node with an empty neighbor mapping.
func newNode(id string, p Point) *Node {
	return &Node{id: id, point: p, edges: make(map[string]float64)}
}
