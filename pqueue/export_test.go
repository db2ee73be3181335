package pqueue

// Valid reports whether the min-heap invariant holds for every stored item.
func (h *MinHeap[T]) Valid() bool {
	for i := 1; i < len(h.items); i++ {
		if h.items[(i-1)/2].Priority > h.items[i].Priority {
			return false
		}
	}

	return true
}
