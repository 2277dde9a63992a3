// Package faulttest provides observers and testing.TB-scoped setup helpers
// for the faultline countdown.
//
// The faultline globals (counter, sleepiness, trigger) are process-wide with
// no per-test isolation, so every consumer test needs the same two things:
// scoped arming that cannot leak into the next test, and a way to observe
// trigger invocations. [ArmAfter] and [Swap] handle the first via
// testing.TB cleanup; [Recorder] and [LogTrigger] handle the second.
//
// Typical usage:
//
//	rec := faulttest.NewRecorder()
//	faulttest.Swap(t, rec.Func())
//	faulttest.ArmOne(t)
//
//	err := writeCheckpoint(db)
//	require.True(t, faultline.IsInjected(err))
//	require.Equal(t, 1, rec.Len())
package faulttest
