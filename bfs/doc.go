// Package bfs provides breadth-first search over a core.Graph, ignoring edge
// weights: depth is the number of hops from the start node.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start node and returns
//     a Reach with the visit Order, the Hops of each node, and the Parent links of
//     the BFS tree.
//   - Components partitions the whole graph into connected components.
//   - Optional hooks (OnVisit), an edge filter (WithFollow) and a MaxDepth limit.
//
// Why
//
//   - Reachability is a hop question, not a cost question. The campus loader uses
//     Components to warn about networks whose buildings cannot all reach each other,
//     which would otherwise only surface later as "No path found" answers.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order and Components seeds each
//	search from core.NodesInOrder, so results are reproducible for a given graph.
//
// Complexity
//
//	O(V + E) time and O(V) space for both BFS and Components.
package bfs
