// Package dfs enumerates simple routes between two nodes of a core.Graph by
// depth-first search with backtracking.
//
// Dijkstra answers "what is the cheapest way"; Routes answers "what are the
// other reasonable ways", e.g. a walker avoiding a crowded building wants the
// second and third cheapest options too.
//
// A route is simple: no node appears twice. Parallel edges collapse to the
// lightest one, so each node sequence is reported once.
//
// Complexity:
//
//   - Time:   exponential in the worst case (every simple path is visited).
//     Bound it with WithMaxHops on dense graphs, or cancel through WithContext.
//   - Memory: O(V) for the walk, plus the collected routes.
//
// Options:
//
//   - WithContext(ctx)      cancellation, checked at every step.
//   - WithMaxHops(n)        ignore routes longer than n edges (default: no limit).
//   - WithLimit(k)          keep only the k cheapest routes (default: all).
//   - WithOnVisit(fn)       hook called when the walk steps onto a node.
//
// Ordering: by distance, then hop count, then node names lexicographically.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrNodeNotFound    if from or to is not in g.
//   - context errors     if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs
