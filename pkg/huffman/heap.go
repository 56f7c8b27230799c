package huffman

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

/*** ---------- Indexed MinHeap ---------- ***/

// Heap is a min-priority queue of distinct values. Besides the usual
// array-backed complete binary tree it keeps an index from each value to its
// current position, so Contains is O(1) and ChangePriority does not scan.
//
// For position i the children are 2i+1 and 2i+2 and the parent is (i-1)/2.
// After every exported call:
//
//	entries[0:len) are all live
//	priority(parent(i)) <= priority(i)
//	values are unique
//	index[entries[i].value] == i for every i, and len(index) == len(entries)
//
// A Heap is not safe for concurrent use.
type Heap[V comparable, P constraints.Ordered] struct {
	entries []entry[V, P]
	index   map[V]int
}

type entry[V comparable, P constraints.Ordered] struct {
	value    V
	priority P
}

func NewHeap[V comparable, P constraints.Ordered]() *Heap[V, P] {
	return &Heap[V, P]{index: make(map[V]int)}
}

// Len returns the number of values in the heap.
func (h *Heap[V, P]) Len() int { return len(h.entries) }

// Contains reports whether v is currently in the heap.
func (h *Heap[V, P]) Contains(v V) bool {
	_, ok := h.index[v]
	return ok
}

// Priority returns the stored priority of v.
func (h *Heap[V, P]) Priority(v V) (P, bool) {
	i, ok := h.index[v]
	if !ok {
		var zero P
		return zero, false
	}
	return h.entries[i].priority, true
}

// Insert adds v with priority p.
func (h *Heap[V, P]) Insert(v V, p P) error {
	if h.Contains(v) {
		return fmt.Errorf("insert %v: %w", v, ErrDuplicateValue)
	}
	h.entries = append(h.entries, entry[V, P]{value: v, priority: p})
	h.place(len(h.entries)-1, h.entries[len(h.entries)-1])
	h.bubbleUp(len(h.entries) - 1)
	return nil
}

// PeekMin returns the value with the smallest priority without removing it.
func (h *Heap[V, P]) PeekMin() (V, error) {
	if len(h.entries) == 0 {
		var zero V
		return zero, ErrEmptyHeap
	}
	return h.entries[0].value, nil
}

// ExtractMin removes and returns the value with the smallest priority.
func (h *Heap[V, P]) ExtractMin() (V, error) {
	if len(h.entries) == 0 {
		var zero V
		return zero, ErrEmptyHeap
	}
	root := h.entries[0]
	delete(h.index, root.value)

	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	delete(h.index, last.value)

	if len(h.entries) > 0 {
		h.place(0, last)
		if len(h.entries) > 1 {
			h.bubbleDown(0)
		}
	}
	return root.value, nil
}

// ChangePriority sets the priority of v to p and restores heap order.
func (h *Heap[V, P]) ChangePriority(v V, p P) error {
	i, ok := h.index[v]
	if !ok {
		return fmt.Errorf("change priority of %v: %w", v, ErrNotFound)
	}
	h.entries[i].priority = p

	if i > 0 && h.entries[parent(i)].priority > p {
		h.bubbleUp(i)
		return nil
	}
	if c, ok := h.smallerChild(i); ok && h.entries[c].priority < p {
		h.bubbleDown(i)
	}
	return nil
}

// place writes e at position i and records the position in the index.
func (h *Heap[V, P]) place(i int, e entry[V, P]) {
	h.entries[i] = e
	h.index[e.value] = i
}

// swap exchanges positions i and j in both the entries and the index.
func (h *Heap[V, P]) swap(i, j int) {
	a, b := h.entries[i], h.entries[j]
	h.place(i, b)
	h.place(j, a)
}

func (h *Heap[V, P]) bubbleUp(i int) {
	for i > 0 {
		p := parent(i)
		if h.entries[i].priority >= h.entries[p].priority {
			return
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[V, P]) bubbleDown(i int) {
	for {
		c, ok := h.smallerChild(i)
		if !ok {
			return
		}
		if h.entries[i].priority <= h.entries[c].priority {
			return
		}
		h.swap(i, c)
		i = c
	}
}

// smallerChild returns the child of i with the smaller priority. When both
// children have the same priority the right one wins; tree shapes built on
// this heap depend on it.
func (h *Heap[V, P]) smallerChild(i int) (int, bool) {
	l, r := left(i), right(i)
	switch {
	case l >= len(h.entries):
		return 0, false
	case r >= len(h.entries):
		return l, true
	case h.entries[l].priority >= h.entries[r].priority:
		return r, true
	default:
		return l, true
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
