package frontier

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Queue is a min-priority queue of values of type T ordered by priority P.
// Ties are broken by insertion order. The zero value is ready to use.
type Queue[T any, P constraints.Ordered] struct {
	items entries[T, P]
	seq   uint64 // next insertion sequence number
}

// New returns an empty Queue with room for capacity entries.
// A non-positive capacity is treated as zero.
func New[T any, P constraints.Ordered](capacity int) *Queue[T, P] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T, P]{items: make(entries[T, P], 0, capacity)}
}

// Len returns the number of pending entries.
func (q *Queue[T, P]) Len() int { return len(q.items) }

// Push inserts v with the given priority.
func (q *Queue[T, P]) Push(v T, priority P) {
	heap.Push(&q.items, entry[T, P]{value: v, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the entry with the smallest priority.
// ok is false when the queue is empty.
func (q *Queue[T, P]) Pop() (v T, priority P, ok bool) {
	if len(q.items) == 0 {
		return v, priority, false
	}
	e := heap.Pop(&q.items).(entry[T, P])

	return e.value, e.priority, true
}

// Peek returns the entry Pop would return, without removing it.
func (q *Queue[T, P]) Peek() (v T, priority P, ok bool) {
	if len(q.items) == 0 {
		return v, priority, false
	}

	return q.items[0].value, q.items[0].priority, true
}

// Reset drops all pending entries but keeps the allocated storage.
func (q *Queue[T, P]) Reset() {
	clear(q.items)
	q.items = q.items[:0]
	q.seq = 0
}

// entry is one pending value with its priority and insertion order.
type entry[T any, P constraints.Ordered] struct {
	value    T
	priority P
	seq      uint64
}

// entries implements heap.Interface ordered by (priority, seq) ascending.
type entries[T any, P constraints.Ordered] []entry[T, P]

func (es entries[T, P]) Len() int { return len(es) }

func (es entries[T, P]) Less(i, j int) bool {
	if es[i].priority != es[j].priority {
		return es[i].priority < es[j].priority
	}

	return es[i].seq < es[j].seq
}

func (es entries[T, P]) Swap(i, j int) { es[i], es[j] = es[j], es[i] }

func (es *entries[T, P]) Push(x any) { *es = append(*es, x.(entry[T, P])) }

func (es *entries[T, P]) Pop() any {
	old := *es
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T, P]{} // drop the reference held by the backing array
	*es = old[:n-1]

	return e
}
