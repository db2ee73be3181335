// Package core declares the Graph, Neighbor and Edge types, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"math"
	"sync"
)

// MaxWeight is the largest accepted edge weight. Path sums stay far below
// math.MaxInt64 for any graph with fewer than 2^32 edges on a path.
const MaxWeight int64 = math.MaxInt32

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node name is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNonPositiveWeight indicates AddEdge received a weight ≤ 0.
	ErrNonPositiveWeight = errors.New("core: edge weight must be positive")

	// ErrWeightTooLarge indicates AddEdge received a weight above MaxWeight.
	ErrWeightTooLarge = errors.New("core: edge weight exceeds MaxWeight")
)

// Neighbor is one adjacency entry: the node reached and the cost of getting there.
type Neighbor struct {
	// ID is the name of the adjacent node.
	ID string

	// Weight is the positive cost of the connecting edge.
	Weight int64
}

// Edge is an undirected connection as it was inserted.
// The store keeps both directions in the adjacency map; Edge records the call.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Graph is the adjacency store.
//
// mu guards every field below it. The graph is expected to be built once and
// then only read, but the lock keeps accidental concurrent construction safe.
type Graph struct {
	mu sync.RWMutex

	// adjacency[u] lists (v, w) for every edge touching u, in insertion order.
	adjacency map[string][]Neighbor

	// order records node names by first appearance in AddEdge.
	order []string

	// edges records each AddEdge call in order.
	edges []Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]Neighbor),
	}
}
