package faulttest

import (
	"log/slog"
	"testing"

	"github.com/roach88/faultline"
)

// Swap installs f as the process-wide trigger for the duration of the test
// and restores the no-op on cleanup.
//
// It restores the default rather than the previously registered function:
// the trigger registry is last-writer-wins with no read-back, and tests
// should not depend on triggers leaking in from outside.
func Swap(tb testing.TB, f faultline.TriggerFunc) {
	tb.Helper()
	faultline.SetTriggerFunction(f)
	tb.Cleanup(func() {
		faultline.SetTriggerFunction(nil)
	})
}

// ArmAfter arms the counter so the nth guarded call from now fails, and
// disables injection again on cleanup.
func ArmAfter(tb testing.TB, n uint64) {
	tb.Helper()
	faultline.Arm(n)
	tb.Cleanup(faultline.Disable)
}

// ArmOne arms the very next guarded call to fail. See [ArmAfter].
func ArmOne(tb testing.TB) {
	tb.Helper()
	ArmAfter(tb, 1)
}

// LogTrigger returns a trigger that logs each forced failure with
// structured fields. A nil logger uses slog.Default().
func LogTrigger(logger *slog.Logger) faultline.TriggerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(component, file string, line int) {
		logger.Warn("fault injected",
			"component", component,
			"file", file,
			"line", line)
	}
}
