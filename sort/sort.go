/*
Package sort provides a parallel quicksort for linked sequences, driven by a
shared work queue of chunks and a lazily grown pool of worker goroutines.
*/
package sort

import (
	"cmp"

	"github.com/helpfirst/chunksort/list"
)

// A Less function reports whether a should sort before b. It must implement
// a strict weak ordering; the sorting functions in this package do not
// validate the ordering and behave unpredictably if it is invalid.
type Less[T any] func(a, b T) bool

/*
Sort sorts a list of naturally ordered elements in parallel, in increasing
order. It is shorthand for ParallelSort with the < operator as the ordering.
*/
func Sort[T cmp.Ordered](data *list.List[T], opts ...Option) *list.List[T] {
	return ParallelSort(data, func(a, b T) bool { return a < b }, opts...)
}

/*
SequentialSort sorts a list with the same split/merge algorithm as
ParallelSort, but on the calling goroutine only, without an engine. It is
useful for testing and debugging, and as a reference for the parallel
implementation.

Like ParallelSort, it consumes the input list and returns the sorted list.
*/
func SequentialSort[T any](data *list.List[T], less Less[T]) *list.List[T] {
	if data.Len() < 2 {
		return data
	}
	pivot, _ := data.PopFront()
	low := data.Partition(func(v T) bool { return less(v, pivot) })
	high := SequentialSort(data, less)
	res := SequentialSort(low, less)
	res.PushBack(pivot)
	res.SpliceBack(high)
	return res
}

/*
IsSorted reports whether the list is in non-decreasing order according to
less.
*/
func IsSorted[T any](data *list.List[T], less Less[T]) bool {
	sorted := true
	first := true
	var prev T
	data.Each(func(v T) bool {
		if !first && less(v, prev) {
			sorted = false
			return false
		}
		prev = v
		first = false
		return true
	})
	return sorted
}
