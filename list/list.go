/*
Package list provides a generic doubly-linked sequence with constant-time
splicing. It is the element container of the chunksort library: partitions
are carved out of a list and sorted results are spliced back together by
relinking nodes, so elements are moved between sequences without ever being
copied.

The zero value of List is an empty list ready to use.
*/
package list

// A node is an element of a list. The list is a ring with a sentinel root
// node, in the manner of container/list.
type node[T any] struct {
	next, prev *node[T]
	value      T
}

// A List is a doubly-linked sequence of values of type T.
type List[T any] struct {
	root node[T]
	len  int
}

// New returns a new empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Of returns a new list holding the given values in the given order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// Len returns the number of elements in the list. O(1).
func (l *List[T]) Len() int {
	return l.len
}

// insert links n between at and at.next.
func (l *List[T]) insert(n, at *node[T]) {
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
	l.len++
}

// remove unlinks n from the list.
func (l *List[T]) remove(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	l.len--
}

// PushFront inserts a new element with value v at the front of the list.
func (l *List[T]) PushFront(v T) {
	l.lazyInit()
	l.insert(&node[T]{value: v}, &l.root)
}

// PushBack inserts a new element with value v at the back of the list.
func (l *List[T]) PushBack(v T) {
	l.lazyInit()
	l.insert(&node[T]{value: v}, l.root.prev)
}

// Front returns the value of the first element. The second return value is
// false if the list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	if l.len == 0 {
		return
	}
	return l.root.next.value, true
}

// Back returns the value of the last element. The second return value is
// false if the list is empty.
func (l *List[T]) Back() (v T, ok bool) {
	if l.len == 0 {
		return
	}
	return l.root.prev.value, true
}

// PopFront removes the first element and returns its value. The second
// return value is false if the list is empty.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.len == 0 {
		return
	}
	n := l.root.next
	l.remove(n)
	return n.value, true
}

// SpliceBack moves all elements of other to the back of l, preserving their
// order. Element nodes are relinked, not copied, so the operation is O(1).
// Afterwards other is empty. SpliceBack of an empty or nil other is a no-op.
func (l *List[T]) SpliceBack(other *List[T]) {
	if other == nil || other.len == 0 {
		return
	}
	l.lazyInit()
	first, last := other.root.next, other.root.prev
	at := l.root.prev
	at.next = first
	first.prev = at
	last.next = &l.root
	l.root.prev = last
	l.len += other.len
	other.root.next = &other.root
	other.root.prev = &other.root
	other.len = 0
}

// SpliceFront moves all elements of other to the front of l, preserving
// their order. Like SpliceBack, it relinks nodes in O(1) and leaves other
// empty.
func (l *List[T]) SpliceFront(other *List[T]) {
	if other == nil || other.len == 0 {
		return
	}
	l.lazyInit()
	first, last := other.root.next, other.root.prev
	at := l.root.next
	l.root.next = first
	first.prev = &l.root
	last.next = at
	at.prev = last
	l.len += other.len
	other.root.next = &other.root
	other.root.prev = &other.root
	other.len = 0
}

// Partition removes every element for which pred returns true and returns
// them as a new list. The relative order of elements is preserved both in
// the returned list and among the elements that remain, so the partition is
// stable. Elements are moved by relinking nodes, not copied.
func (l *List[T]) Partition(pred func(T) bool) *List[T] {
	out := New[T]()
	if l.len == 0 {
		return out
	}
	for n := l.root.next; n != &l.root; {
		next := n.next
		if pred(n.value) {
			l.remove(n)
			out.insert(n, out.root.prev)
		}
		n = next
	}
	return out
}

// Each calls f for every element in order, stopping early if f returns
// false. f must not mutate the list.
func (l *List[T]) Each(f func(T) bool) {
	if l.len == 0 {
		return
	}
	for n := l.root.next; n != &l.root; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// Values returns the values of the list as a freshly allocated slice, in
// order. It is intended for inspection and testing; the list is unchanged.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.len)
	l.Each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
