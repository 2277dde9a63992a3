// Package faultline provides deterministic fault injection for fallible
// operations.
//
// The core primitive is a process-wide countdown: every operation guarded by
// [Fallible] or [Do] decrements [Counter] by one, and the call whose
// decrement lands the counter on exactly zero fails with a synthetic,
// location-annotated error instead of running at all. Test code arms the
// counter, runs a workload, and asserts that the error propagating up from
// the forced failure is handled correctly — no disk needs to fill, no
// network needs to drop.
//
// ARMING FAULTS:
//
// The counter starts at math.MaxUint64, which effectively disables
// injection: no realistic test run performs enough guarded calls to exhaust
// it. Storing a small value arms a fault that many calls in the future:
//
//	faultline.Arm(1) // the next guarded call fails
//	faultline.Arm(7) // six calls succeed, the seventh fails
//
// A typical workflow runs the workload once to count guarded calls, then
// re-runs it with the counter armed at each successive value, asserting
// clean error propagation every time.
//
// COUNTDOWN SEMANTICS:
//
// The decrement uses wrapping unsigned arithmetic. The forced failure fires
// when the post-decrement value is exactly zero; a decrement at zero wraps
// to math.MaxUint64 and the counter is effectively disabled again. The
// decrement happens on every guarded call, including successful ones — the
// guard is never free.
//
// TIMING JITTER:
//
// Storing a positive value into [Sleepiness] makes every guarded call sleep
// for a weakly pseudorandom duration before doing anything else, bounded by
// that many milliseconds. This perturbs interleavings between concurrent
// goroutines racing toward a shared armed counter, which is what makes the
// countdown useful for concurrency-recovery testing: which goroutine
// receives the forced failure is intentionally unspecified.
//
// OBSERVATION:
//
// [SetTriggerFunction] registers a process-wide callback invoked
// synchronously at each forced failure with the call site's component
// (package import path), file, and line. The faulttest subpackage provides
// ready-made observers and testing.TB-scoped setup helpers.
//
// All shared state (counter, sleepiness, trigger) is process-wide by design.
// There is no per-test isolation; tests that arm faults concurrently must
// serialize externally. The faulttest helpers restore the disabled state on
// test cleanup for exactly this reason.
package faultline
