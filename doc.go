// Package chunksort provides a parallel quicksort for linked sequences, built
// around a shared work queue of sortable chunks. Recursive sub-problems are
// handed off to a lazily grown pool of worker goroutines, and any goroutine
// that waits for a sub-result keeps draining the queue in the meantime, so
// the system makes progress even when every goroutine has outstanding
// dependencies.
//
// Chunksort provides the following subpackages:
//
// chunksort/list provides a generic doubly-linked sequence with constant-time
// splicing, the element container that chunks are carved from and spliced
// back into without copying elements.
//
// chunksort/queue provides the concurrent LIFO work queue through which idle
// goroutines discover unclaimed chunks.
//
// chunksort/promise provides the write-once, poll-before-take result slot
// used to deliver a chunk's sorted output back to the goroutine that split
// it off.
//
// chunksort/sort provides the sort engine itself: the split/merge algorithm,
// the worker pool, and the public sorting entry points.
//
// The design follows the classic shared-stack parallel quicksort: each split
// pushes its low partition onto the queue as a chunk and continues on the
// high partition, and waiting for a chunk's result is a spin-poll loop that
// sorts other queued chunks rather than blocking.
package chunksort
