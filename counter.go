package faultline

import (
	"math"
	"sync/atomic"
)

// Counter is the process-wide fault-injection countdown.
//
// Every guarded call decrements it by one; the call whose decrement lands on
// exactly zero receives a forced failure. It starts at math.MaxUint64,
// meaning faults are effectively disabled: a test run would need to perform
// 2^64 guarded calls to exhaust it by accident.
//
// Test code reads and writes it directly. Storing n arms a fault n guarded
// calls from now; storing math.MaxUint64 disables injection. Stores are
// visible to subsequent guarded calls on any goroutine (Go atomics are
// sequentially consistent, which is stronger than the release/acquire
// ordering this requires).
//
// Decrementing at zero does not panic: unsigned subtraction wraps to
// math.MaxUint64, returning the counter to its effectively-disabled regime.
var Counter atomic.Uint64

func init() {
	Counter.Store(math.MaxUint64)
}

// Arm stores n into Counter, forcing the nth guarded call from now to fail.
//
// Arm(1) fails the very next guarded call. Arm is sugar over Counter.Store
// and carries the same visibility guarantee.
func Arm(n uint64) {
	Counter.Store(n)
}

// Disable restores the default disabled state.
//
// Equivalent to Counter.Store(math.MaxUint64).
func Disable() {
	Counter.Store(math.MaxUint64)
}

// Remaining returns the current countdown value without decrementing it.
//
// Under concurrent guarded calls the value may be stale by the time the
// caller inspects it.
func Remaining() uint64 {
	return Counter.Load()
}
