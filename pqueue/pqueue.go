package pqueue

import "errors"

// ErrEmptyQueue is returned by Pop and Peek on an empty heap.
var ErrEmptyQueue = errors.New("pqueue: priority queue is empty")

// Item is one heap entry.
type Item[T any] struct {
	Priority int64
	Value    T
}

// MinHeap is a binary min-heap of Items ordered by Priority ascending.
// The zero value is an empty heap ready to use.
type MinHeap[T any] struct {
	items []Item[T]
}

// New returns an empty heap with room for capacity items.
func New[T any](capacity int) *MinHeap[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &MinHeap[T]{items: make([]Item[T], 0, capacity)}
}

// Len returns the number of stored items.
func (h *MinHeap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *MinHeap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Push inserts value with the given priority.
func (h *MinHeap[T]) Push(priority int64, value T) {
	h.items = append(h.items, Item[T]{Priority: priority, Value: value})
	h.siftUp(len(h.items) - 1)
}

// Peek returns the minimum item without removing it.
func (h *MinHeap[T]) Peek() (Item[T], error) {
	if len(h.items) == 0 {
		return Item[T]{}, ErrEmptyQueue
	}

	return h.items[0], nil
}

// Pop removes and returns the minimum item.
// It returns ErrEmptyQueue when called on an empty heap.
func (h *MinHeap[T]) Pop() (Item[T], error) {
	n := len(h.items)
	if n == 0 {
		return Item[T]{}, ErrEmptyQueue
	}

	top := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]
	h.items[last] = Item[T]{} // drop reference held by the vacated slot
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top, nil
}

// siftUp moves the item at i toward the root until its parent is not larger.
func (h *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].Priority <= h.items[i].Priority {
			return
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// siftDown moves the item at i toward the leaves until both children are not smaller.
func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		right := left + 1
		smallest := i

		if left < n && h.items[left].Priority < h.items[smallest].Priority {
			smallest = left
		}
		if right < n && h.items[right].Priority < h.items[smallest].Priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
