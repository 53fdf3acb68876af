package queue

import (
	"sort"

	"github.com/glahaie/schedsim/internal/workload"
)

// Queue is an ordered, non-owning collection of process references. The
// workload model owns every *workload.Descriptor for the run's lifetime;
// a Queue only ever borrows them.
type Queue struct {
	items []*workload.Descriptor
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Append inserts p at the tail in O(1).
func (q *Queue) Append(p *workload.Descriptor) {
	q.items = append(q.items, p)
}

// RemoveByIdentity removes the first element identical to p, by pointer
// identity. It reports whether an element was removed.
func (q *Queue) RemoveByIdentity(p *workload.Descriptor) bool {
	for i, it := range q.items {
		if it == p {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// PopHead removes and returns the first element, for FIFO consumers
// (Round-Robin dispatch).
func (q *Queue) PopHead() (*workload.Descriptor, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	p := q.items[0]
	q.items = q.items[1:]
	return p, true
}

// Head returns the first element without removing it.
func (q *Queue) Head() (*workload.Descriptor, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue) IsEmpty() bool { return len(q.items) == 0 }

// Len returns the number of elements currently queued.
func (q *Queue) Len() int { return len(q.items) }

// Items returns the queue's contents in insertion order. Callers must treat
// the returned slice as read-only: it aliases the queue's backing array.
func (q *Queue) Items() []*workload.Descriptor { return q.items }

// SortStable reorders the queue in place using less, preserving the
// relative order of elements that compare equal.
func (q *Queue) SortStable(less func(a, b *workload.Descriptor) bool) {
	sort.SliceStable(q.items, func(i, j int) bool {
		return less(q.items[i], q.items[j])
	})
}
