/*
Package queue provides a concurrent LIFO work queue. It is the single
load-balancing mechanism of the chunksort library: every goroutine may push
unsorted chunks, and every idle goroutine may attempt to pop one, with the
queue guaranteeing that each pushed item is handed to exactly one popper.
*/
package queue

import "sync"

// A Queue is a mutex-protected LIFO stack of items of type T. It is safe for
// concurrent use by any number of goroutines. The zero value is an empty
// queue ready to use.
//
// Ownership of an item transfers completely to the goroutine whose TryPop
// call returns it: no item is ever delivered twice, and no pushed item is
// lost.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// Push inserts an item. It always succeeds, and the item becomes visible to
// subsequent TryPop calls from any goroutine. O(1) amortized.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
}

// TryPop removes and returns the most recently pushed item. It returns
// ok=false when the queue is empty at the instant of the call; callers must
// treat that as "nothing available right now", not as a terminal condition.
func (q *Queue[T]) TryPop() (item T, ok bool) {
	q.mu.Lock()
	if n := len(q.items); n > 0 {
		item, ok = q.items[n-1], true
		var zero T
		q.items[n-1] = zero // drop the reference
		q.items = q.items[:n-1]
	}
	q.mu.Unlock()
	return
}

// IsEmpty reports whether the queue held no items at the instant of the
// call. The answer may be stale by the time it is returned; it is only a
// hint.
func (q *Queue[T]) IsEmpty() bool {
	q.mu.Lock()
	empty := len(q.items) == 0
	q.mu.Unlock()
	return empty
}

// Len returns the number of queued items at the instant of the call. Like
// IsEmpty, the answer may be stale immediately.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	n := len(q.items)
	q.mu.Unlock()
	return n
}
