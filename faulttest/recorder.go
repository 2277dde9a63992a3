package faulttest

import (
	"sync"

	"github.com/roach88/faultline"
)

// Call records a single trigger invocation.
type Call struct {
	Component string
	File      string
	Line      int
}

// Recorder is a trigger observer that records every forced failure it sees.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex; forced failures on racing goroutines are recorded in arrival
// order.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Func returns the TriggerFunc to register, typically via [Swap].
func (r *Recorder) Func() faultline.TriggerFunc {
	return func(component, file string, line int) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, Call{Component: component, File: file, Line: line})
	}
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of recorded invocations.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset discards all recorded invocations for test reuse.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
