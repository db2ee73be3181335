// File: api.go
// Role: Read-only node queries: HasNode, Nodes, NodesInOrder, SortedNodes,
//       Neighbors, NodeCount.
// Determinism:
//   - Nodes() order is unspecified (adjacency map iteration).
//   - NodesInOrder() is first-appearance order; SortedNodes() is lexicographic.
//   - Neighbors() preserves insertion order.
// Concurrency:
//   - Every method holds the read lock for its whole body.

package core

import "sort"

// HasNode reports whether id appears in any inserted edge.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// NodeCount returns the number of distinct node names.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Nodes returns every distinct node name. The order is unspecified and may
// differ between calls; do not rely on it.
// Complexity: O(V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}

	return out
}

// NodesInOrder returns node names in the order they first appeared in AddEdge.
// Use it wherever a stable listing matters, e.g. numbered menus.
// Complexity: O(V)
func (g *Graph) NodesInOrder() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// SortedNodes returns node names in lexicographic order.
// Complexity: O(V log V)
func (g *Graph) SortedNodes() []string {
	out := g.NodesInOrder()
	sort.Strings(out)

	return out
}

// Neighbors returns a copy of id's adjacency list in insertion order.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeNotFound if id is not in the graph.
//
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Neighbor, len(adj))
	copy(out, adj)

	return out, nil
}
