package sort

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/helpfirst/chunksort"
	"github.com/helpfirst/chunksort/internal"
	"github.com/helpfirst/chunksort/list"
	"github.com/helpfirst/chunksort/promise"
	"github.com/helpfirst/chunksort/queue"
)

// An Option configures a single ParallelSort call.
type Option func(*config)

type config struct {
	maxWorkers int
}

/*
WithMaxWorkers bounds the number of background worker goroutines the sort
engine may spawn. The default is chunksort.Concurrency()-1, counting the
calling goroutine as one unit of parallelism. Negative values are treated
as zero.

With a bound of zero no workers are spawned at all, and the calling
goroutine sorts every chunk itself while draining the queue.
*/
func WithMaxWorkers(n int) Option {
	return func(cfg *config) {
		cfg.maxWorkers = n
	}
}

// outcome is what travels through a chunk's result slot: either the sorted
// list, or a panic recovered while sorting the chunk, to be rethrown on the
// goroutine that waits for it.
type outcome[T any] struct {
	sorted   *list.List[T]
	panicked *internal.RethrownPanic
}

// A chunk is the unit of distributable work: an unsorted partition bundled
// with the write handle of its result slot. A chunk is owned by the
// goroutine that created it until pushed; afterwards ownership transfers
// atomically to whichever goroutine pops it, which sorts the data and
// fulfills the result exactly once.
type chunk[T any] struct {
	data   *list.List[T]
	result *promise.Promise[outcome[T]]
}

// An engine coordinates one ParallelSort call: the shared chunk queue, the
// worker pool, and the termination flag. Engines are never shared across
// calls, so a goroutine helping with queued chunks can only ever sort
// chunks belonging to its own sort invocation.
type engine[T any] struct {
	less   Less[T]
	chunks queue.Queue[*chunk[T]]

	// cap is the maximum number of workers; workers is the spawn counter,
	// advanced by CAS so the cap holds under concurrent splits.
	cap     int32
	workers atomic.Int32
	wg      sync.WaitGroup
	done    atomic.Bool
}

/*
ParallelSort sorts a list in parallel according to less and returns the
sorted list. The input list is consumed: its elements are moved, not
copied, into the result, and the input must not be used afterwards (the
returned list may or may not alias it).

Each call constructs its own engine with a fresh work queue and worker
pool; no state is shared between calls. The call returns only after every
worker it spawned has exited, even if less panics, in which case the panic
is rethrown on the calling goroutine.

The pivot is always the first element of the current partition, so
already-sorted or reverse-sorted input degrades to quadratic work and a
split-chain length proportional to the input size. Callers with adversarial
inputs should shuffle first or supply a less over a randomized key.

An empty list is returned unchanged, with no engine constructed and no
workers spawned.
*/
func ParallelSort[T any](data *list.List[T], less Less[T], opts ...Option) *list.List[T] {
	if data.Len() == 0 {
		return data
	}
	cfg := config{maxWorkers: chunksort.Concurrency() - 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxWorkers < 0 {
		cfg.maxWorkers = 0
	}
	e := &engine[T]{less: less, cap: int32(cfg.maxWorkers)}
	defer e.shutdown()
	return e.sort(data)
}

// sort implements the split/merge algorithm. The "continue on the high
// partition" step of the classic recursion is an explicit loop with a frame
// stack, so the split phase consumes heap proportional to the number of
// splits instead of call-stack.
func (e *engine[T]) sort(data *list.List[T]) *list.List[T] {
	type frame struct {
		pivot T
		low   *promise.Future[outcome[T]]
	}
	var frames []frame
	for data.Len() > 0 {
		pivot, _ := data.PopFront()
		low := data.Partition(func(v T) bool { return e.less(v, pivot) })
		frames = append(frames, frame{pivot: pivot, low: e.offload(low)})
		// data now holds the high partition; keep splitting it here.
	}
	// data is empty; reuse it as the result accumulator and assemble
	// [sorted-low, pivot, sorted-high] from the innermost split outwards.
	for i := len(frames) - 1; i >= 0; i-- {
		data.PushFront(frames[i].pivot)
		data.SpliceFront(e.await(frames[i].low))
	}
	return data
}

// offload wraps the partition as a chunk, publishes it on the queue, and
// grows the pool if there is capacity. It returns the future through which
// the sorted partition will come back.
func (e *engine[T]) offload(data *list.List[T]) *promise.Future[outcome[T]] {
	result, future := promise.New[outcome[T]]()
	e.chunks.Push(&chunk[T]{data: data, result: result})
	e.maybeSpawn()
	return future
}

// await spins on the future until it is ready, sorting any other queued
// chunk in the meantime. The waiting goroutine is never idle while chunks
// are available, which is what keeps the system from deadlocking once every
// goroutine has an outstanding dependency.
func (e *engine[T]) await(f *promise.Future[outcome[T]]) *list.List[T] {
	for !f.Ready() {
		if !e.trySortChunk() {
			runtime.Gosched()
		}
	}
	out := f.Take()
	if out.panicked != nil {
		panic(out.panicked)
	}
	return out.sorted
}

// trySortChunk pops and sorts one chunk. It reports false if the queue was
// empty at the instant of the pop.
func (e *engine[T]) trySortChunk() bool {
	c, ok := e.chunks.TryPop()
	if !ok {
		return false
	}
	e.sortChunk(c)
	return true
}

// sortChunk sorts a claimed chunk and fulfills its result slot exactly
// once. A panic while sorting, including one rethrown from a nested await,
// is captured with its original stack and delivered through the slot
// instead.
func (e *engine[T]) sortChunk(c *chunk[T]) {
	defer func() {
		if p := recover(); p != nil {
			c.result.Fulfill(outcome[T]{panicked: internal.Capture(p)})
		}
	}()
	c.result.Fulfill(outcome[T]{sorted: e.sort(c.data)})
}

// maybeSpawn starts one more worker unless the pool is at capacity. The
// spawn counter only ever grows; workers stay in the pool until shutdown.
func (e *engine[T]) maybeSpawn() {
	for {
		n := e.workers.Load()
		if n >= e.cap {
			return
		}
		if e.workers.CompareAndSwap(n, n+1) {
			e.wg.Add(1)
			go e.work()
			return
		}
	}
}

// work is the worker loop: pop a chunk and sort it, yield when the queue is
// empty, exit when the engine shuts down.
func (e *engine[T]) work() {
	defer e.wg.Done()
	for !e.done.Load() {
		if !e.trySortChunk() {
			runtime.Gosched()
		}
	}
}

// shutdown signals all workers to exit and joins them. On a normal return
// every chunk has already been popped and fulfilled by then; on a panic
// path chunks may remain queued, but no goroutine is waiting on them.
func (e *engine[T]) shutdown() {
	e.done.Store(true)
	e.wg.Wait()
}
