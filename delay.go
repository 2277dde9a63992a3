package faultline

import (
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// Sleepiness scales the random delay injected ahead of every guarded call.
//
// Zero (the default) disables delay injection entirely. A positive value n
// bounds each injected delay to n milliseconds. Like Counter, it is
// process-wide and written directly by test code.
var Sleepiness atomic.Uint32

// MaybeDelay sleeps the calling goroutine for a pseudorandom duration
// bounded by the current Sleepiness level and returns the duration chosen.
//
// When Sleepiness is zero the cost is a single atomic load and the return
// value is 0. When it is n, the delay is uniform in [0, n milliseconds).
// The randomness is weak and per-run seeded; identical delays across runs
// are neither guaranteed nor desired. Only the calling goroutine blocks.
//
// Guarded calls invoke MaybeDelay unconditionally, so a positive Sleepiness
// perturbs timing on every call, successful or not. It models ambient
// jitter, not jitter on failure.
func MaybeDelay() time.Duration {
	sleepiness := Sleepiness.Load()
	if sleepiness == 0 {
		return 0
	}
	d := rand.N(time.Duration(sleepiness) * time.Millisecond)
	time.Sleep(d)
	return d
}
