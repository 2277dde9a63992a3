package faultline

import "sync/atomic"

// TriggerFunc observes forced failures. It receives the component (package
// import path), file name, and line number of the guarded call that was
// forced to fail.
//
// The function runs synchronously on the goroutine that hit the armed
// counter, before the synthetic error is returned, and is invoked exactly
// once per forced failure. It is for side-effecting observation only:
// logging, counting, asserting. A panic inside the function propagates to
// the guarded call site; a trigger that fails is a bug in test code and is
// not caught here.
type TriggerFunc func(component, file string, line int)

// trigger holds the registered observer. The pointer is never nil after
// package init; SetTriggerFunction(nil) reinstalls the no-op.
var trigger atomic.Pointer[TriggerFunc]

func init() {
	noop := TriggerFunc(func(string, string, int) {})
	trigger.Store(&noop)
}

// SetTriggerFunction replaces the process-wide trigger observer.
//
// Passing nil restores the default no-op. The swap is atomic: a guarded
// call racing with the swap observes either the old or the new function,
// never a torn one. Last writer wins; there is no per-test isolation, so
// tests registering triggers concurrently must serialize externally (see
// faulttest.Swap).
func SetTriggerFunction(f TriggerFunc) {
	if f == nil {
		f = func(string, string, int) {}
	}
	trigger.Store(&f)
}

func invokeTrigger(component, file string, line int) {
	(*trigger.Load())(component, file, line)
}
