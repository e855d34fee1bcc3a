// Package internal provides helpers shared by the chunksort packages.
package internal

import (
	"fmt"
	"runtime/debug"
)

// A RethrownPanic carries a panic value recovered on one goroutine so that
// it can be rethrown on the goroutine that waits for the corresponding
// result, preserving the stack trace of the original panic site.
type RethrownPanic struct {
	Value interface{}
	Stack []byte
}

func (p *RethrownPanic) Error() string {
	return fmt.Sprintf("%v\n%s\nrethrown at", p.Value, p.Stack)
}

// Capture wraps a recovered panic value together with the current stack
// trace. If the value is already a RethrownPanic, it is returned unchanged,
// so a panic that travels through several waiting goroutines keeps the
// stack of the goroutine it originated on.
func Capture(p interface{}) *RethrownPanic {
	if rp, ok := p.(*RethrownPanic); ok {
		return rp
	}
	return &RethrownPanic{Value: p, Stack: debug.Stack()}
}
