// File: methods_edges.go
// Role: Edge insertion and edge catalog queries.
// Determinism:
//   - Edges() returns edges in AddEdge call order.
// Concurrency:
//   - AddEdge holds the write lock; queries hold the read lock.

package core

import "fmt"

// AddEdge inserts an undirected edge u—v with the given positive weight.
//
// Steps:
//  1. Validate names (ErrEmptyNodeID) and weight (ErrNonPositiveWeight,
//     ErrWeightTooLarge above MaxWeight).
//  2. Lock, register unseen endpoints in first-appearance order.
//  3. Append (v, w) to adjacency[u] and (u, w) to adjacency[v].
//  4. Record the edge in the catalog.
//
// Calling AddEdge twice with the same pair stores a parallel edge. That is legal:
// the search will simply use the lighter one. A self-loop u—u stores two entries
// in u's own list and never shortens any path.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight int64) error {
	// 1) Input validation
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if weight <= 0 {
		return fmt.Errorf("%w: edge %s—%s weight=%d", ErrNonPositiveWeight, u, v, weight)
	}
	if weight > MaxWeight {
		return fmt.Errorf("%w: edge %s—%s weight=%d", ErrWeightTooLarge, u, v, weight)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	g.touch(u)
	g.touch(v)

	// 3) Mirror both directions
	g.adjacency[u] = append(g.adjacency[u], Neighbor{ID: v, Weight: weight})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{ID: u, Weight: weight})

	// 4) Catalog
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})

	return nil
}

// touch registers id in the node index if it has not been seen yet.
// Caller must hold the write lock.
func (g *Graph) touch(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of AddEdge calls that succeeded.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
