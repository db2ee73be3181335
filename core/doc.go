// Package core provides the in-memory Graph store used by campusnav: a static,
// undirected graph of named locations connected by positively weighted edges.
//
// The Graph G = (V,E) is stored as an adjacency map:
//
//	adjacency[u] = [(v1, w1), (v2, w2), ...]
//
// Every AddEdge(u, v, w) appends (v, w) to u's list and (u, w) to v's list, so
// the structure is symmetric at all times. Neighbor lists keep insertion order.
//
// Why a dedicated store?
//
//   - Node identity is the name; there is no separate vertex catalog to keep in sync.
//   - Construction-time validation: empty names and non-positive weights are rejected
//     before they can break Dijkstra's non-negative weight invariant.
//   - Read-mostly: the graph is built once, then queried many times. A single
//     sync.RWMutex keeps concurrent readers cheap.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph                                   // O(1)
//	AddEdge(u, v string, weight int64) error            // O(1) amortized
//
//	// Queries
//	HasNode(id string) bool                             // O(1)
//	Nodes() []string                                    // O(V), unspecified order
//	NodesInOrder() []string                             // O(V), first-appearance order
//	SortedNodes() []string                              // O(V log V)
//	Neighbors(id string) ([]Neighbor, error)            // O(deg(id))
//	Edges() []Edge                                      // O(E), insertion order
//	NodeCount() int / EdgeCount() int                   // O(1)
//
// Ordering:
//
//	Nodes() walks the adjacency map and therefore has no defined order; callers that
//	render menus should use NodesInOrder() or SortedNodes() instead.
//
// Errors:
//
//	ErrEmptyNodeID       - a node name is the empty string.
//	ErrNodeNotFound      - a query referenced an unknown node.
//	ErrNonPositiveWeight - AddEdge was given a weight ≤ 0.
//	ErrWeightTooLarge    - AddEdge was given a weight above MaxWeight.
//
// There is no removal or weight-update operation; the graph is immutable once the
// construction phase is over.
package core
