// Package pqueue provides a binary min-heap keyed by int64 priority.
//
// It is the frontier used by the dijkstra package: Push appends then sifts up,
// Pop swaps the root with the last slot, shrinks, then sifts down. Both sifts are
// iterative loops over the index-addressed backing slice, so depth is bounded
// by the loop, not the call stack.
//
// Invariant (min-heap): for every index i > 0,
//
//	items[(i-1)/2].Priority ≤ items[i].Priority
//
// holds before and after every public operation.
//
// Ties between equal priorities are resolved by whatever position the heap
// operations leave them in. That order is stable for a given sequence of calls
// but is not otherwise meaningful.
//
// Complexity:
//
//	Push    O(log n)
//	Pop     O(log n)
//	Peek    O(1)
//	Len     O(1)
//	IsEmpty O(1)
//
// A MinHeap is not safe for concurrent use; each search owns its own heap.
package pqueue
