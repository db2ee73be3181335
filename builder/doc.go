// SPDX-License-Identifier: MIT
// Package builder assembles core.Graph fixtures from small, composable
// topology constructors.
//
// One orchestrator, BuildGraph(opts, cons...), creates the graph, resolves the
// configuration and runs each Constructor in order. Constructors cover the
// shapes the shortest-path tests and benchmarks need:
//
//	Path(n)            P_n: 0—1—…—(n-1)
//	Cycle(n)           C_n: a path closed back to its first node
//	Star(n)            a "Center" hub with n-1 leaves
//	Complete(n)        K_n
//	Grid(rows, cols)   4-neighborhood lattice with "r,c" IDs
//	RandomSparse(n, p) each unordered pair joined with probability p
//
// Determinism: equal options, seed and constructor order produce identical
// graphs, including adjacency insertion order (and so search tie-breaks).
//
// Weights: every edge weight comes from cfg.weightFn; the core store rejects
// non-positive weights, and that error is returned wrapped.
package builder
