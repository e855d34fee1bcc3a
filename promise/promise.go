/*
Package promise provides a write-once result slot, split into a write-only
Promise and a read-only Future. It is the handoff mechanism through which a
sorted chunk travels back to the goroutine that split it off.

The Future deliberately has no blocking wait. A goroutine with an
outstanding chunk must stay available to sort other queued chunks, otherwise
the system would deadlock once every goroutine is waiting; consumers
therefore alternate between polling Ready and doing other work, and call
Take only once Ready reports true.
*/
package promise

import (
	"errors"
	"sync/atomic"
)

// Errors carried by the panics raised on slot misuse. Both indicate a
// coordination bug in the caller, not a runtime condition to recover from.
var (
	// ErrFulfilled is the panic value of a second Fulfill call on the same
	// promise.
	ErrFulfilled = errors.New("promise: already fulfilled")

	// ErrNotReady is the panic value of a Take call before Ready reports
	// true.
	ErrNotReady = errors.New("promise: result not ready")
)

const (
	stateEmpty int32 = iota
	stateWriting
	stateReady
)

// cell is the slot shared by a linked Promise/Future pair.
type cell[T any] struct {
	state atomic.Int32
	value T
}

// A Promise is the write-only handle of a result slot. Fulfill may be called
// at most once, from any goroutine.
type Promise[T any] struct {
	c *cell[T]
}

// A Future is the read-only handle of a result slot. Ready may be polled any
// number of times from the owning goroutine; Take returns the fulfilled
// value once Ready reports true.
type Future[T any] struct {
	c *cell[T]
}

// New returns a linked Promise/Future pair around a fresh, unfulfilled slot.
func New[T any]() (*Promise[T], *Future[T]) {
	c := &cell[T]{}
	return &Promise[T]{c}, &Future[T]{c}
}

// Fulfill stores the value in the slot and marks it ready. It panics with
// ErrFulfilled if the slot has already been fulfilled.
func (p *Promise[T]) Fulfill(v T) {
	if !p.c.state.CompareAndSwap(stateEmpty, stateWriting) {
		panic(ErrFulfilled)
	}
	p.c.value = v
	p.c.state.Store(stateReady)
}

// Ready reports whether the slot has been fulfilled. It never blocks. Once
// Ready returns true it returns true forever, and Take will observe the
// fulfilled value.
func (f *Future[T]) Ready() bool {
	return f.c.state.Load() == stateReady
}

// Take returns the fulfilled value. It may be called any number of times
// after Ready reports true and always returns the same value. It panics
// with ErrNotReady if the slot has not been fulfilled yet.
func (f *Future[T]) Take() T {
	if f.c.state.Load() != stateReady {
		panic(ErrNotReady)
	}
	return f.c.value
}
