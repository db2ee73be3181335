// Package dijkstra computes shortest paths over a core.Graph with positive
// integer weights.
//
// Overview:
//
//   - ShortestPath answers one (source, destination) query and reports the result
//     as a value: Found, Trivial, Unreachable or InvalidInput. None of these are errors.
//   - Search runs the single-source algorithm and returns the full distance and
//     parent tables (a Tree) so callers can reconstruct paths to any node.
//   - The frontier is a pqueue.MinHeap of (distance, node) pairs.
//
// Algorithm:
//
//   - dist[v] = Infinity for every node, dist[source] = 0; push (0, source).
//   - Pop the minimum entry u; for each neighbor (v, w): if dist[u]+w < dist[v],
//     set dist[v], set parent[v] = u, push (dist[v], v).
//   - Stop when the heap is empty. Walk parent[] back from the destination and
//     reverse to obtain the path.
//
// There is no decrease-key: improved nodes are pushed again and older entries stay
// in the heap. With WithSkipFinalized(true) (the default) an entry whose node was
// already popped is discarded; with false it is processed again and every relaxation
// simply fails, since the comparison is strict. Distances are the same either way.
//
// Tie-breaking:
//
//   - When several paths share the minimum cost, the one reported depends on heap
//     order and neighbor insertion order. Callers must not treat it as a contract.
//
// Complexity:
//
//   - Time:  O(E log E) heap operations in the worst case (lazy decrease-key).
//   - Space: O(V + E).
//
// Errors (sentinel, Search and Tree.PathTo only):
//
//   - ErrNilGraph:     g is nil.
//   - ErrNodeNotFound: source or destination is not in the graph.
//   - ErrUnreachable:  destination has no path from the source.
//
// A pqueue.ErrEmptyQueue during a search means the engine itself is broken; it panics.
//
// Thread safety:
//
//   - Every call allocates its own tables and heap. Concurrent queries against one
//     graph are safe as long as nobody calls AddEdge at the same time.
package dijkstra
