package faultline

import (
	"runtime"
	"strings"
)

// Fallible guards a fallible operation with countdown-triggered fault
// injection.
//
// Every call first runs [MaybeDelay], then decrements [Counter]. If the
// decrement lands on exactly zero, the registered trigger fires and a
// forced failure is returned without evaluating op — the operation's side
// effects do not occur. Otherwise op runs: a success passes through
// unchanged (the decrement already happened; the guard is not free), and a
// failure comes back wrapped in an [*Error] annotated with the call site of
// the Fallible invocation itself.
//
// Which of several racing goroutines receives the forced failure when the
// counter is small is deliberately unspecified.
func Fallible[T any](op func() (T, error)) (T, error) {
	MaybeDelay()
	if Counter.Add(^uint64(0)) == 0 {
		var zero T
		return zero, forced(callsite())
	}
	v, err := op()
	if err != nil {
		component, file, line := callsite()
		return v, &Error{Component: component, File: file, Line: line, Err: err}
	}
	return v, nil
}

// Do guards an operation that produces only an error. Semantics are
// identical to [Fallible].
func Do(op func() error) error {
	MaybeDelay()
	if Counter.Add(^uint64(0)) == 0 {
		return forced(callsite())
	}
	if err := op(); err != nil {
		component, file, line := callsite()
		return &Error{Component: component, File: file, Line: line, Err: err}
	}
	return nil
}

// forced fires the trigger and builds the synthetic error. The trigger runs
// before the error is returned, on the calling goroutine.
func forced(component, file string, line int) *Error {
	invokeTrigger(component, file, line)
	return &Error{Component: component, File: file, Line: line}
}

// callsite resolves the frame of whoever invoked Fallible or Do.
// Skip 2 frames: callsite itself, then the guard function.
func callsite() (component, file string, line int) {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "", "unknown", 0
	}
	return componentName(pc), file, line
}

// componentName extracts the package import path from a frame's fully
// qualified function name, e.g.
// "github.com/roach88/faultline.Do" -> "github.com/roach88/faultline".
func componentName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	name := fn.Name()
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return name
	}
	return name[:slash+1+dot]
}
