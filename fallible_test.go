package faultline

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallible_Success_PassesValueThrough(t *testing.T) {
	defer Disable()
	Disable()

	v, err := Fallible(func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestFallible_Success_StillDecrementsCounter(t *testing.T) {
	defer Disable()

	Arm(10)
	_, err := Fallible(func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, uint64(9), Remaining(), "the guard is not free on success")
}

func TestFallible_WrapsNaturalFailure(t *testing.T) {
	defer Disable()
	Disable()

	underlying := errors.New("no such file or directory")
	_, _, base, _ := runtime.Caller(0)
	_, err := Fallible(func() (int, error) { return 0, underlying })
	require.Error(t, err)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "github.com/roach88/faultline", ae.Component)
	assert.True(t, strings.HasSuffix(ae.File, "fallible_test.go"), "got file %q", ae.File)
	assert.Equal(t, base+1, ae.Line, "annotation must point at the guard call site")
	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "fallible_test.go:")
	assert.Contains(t, err.Error(), "no such file or directory")
	assert.False(t, IsInjected(err))
}

func TestFallible_Forced_SkipsOperation(t *testing.T) {
	defer Disable()

	ran := false
	Arm(1)
	v, err := Fallible(func() (int, error) {
		ran = true
		return 42, nil
	})

	require.Error(t, err)
	assert.True(t, IsInjected(err))
	assert.False(t, ran, "the wrapped operation's side effects must not occur")
	assert.Zero(t, v, "forced failure yields the zero value")
	assert.Contains(t, err.Error(), "injected fault")
	assert.Contains(t, err.Error(), "fallible_test.go:")
}

func TestDo_ReportsCallerLocation(t *testing.T) {
	defer Disable()

	Arm(1)
	err := Do(ok)
	require.Error(t, err)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.True(t, strings.HasSuffix(ae.File, "fallible_test.go"),
		"location must be the caller, not an internal frame; got %q", ae.File)
}

func TestFallible_ArmProperty(t *testing.T) {
	// For all n: n-1 successes, then exactly one forced failure, with
	// exactly one trigger invocation.
	defer Disable()
	defer SetTriggerFunction(nil)

	for _, n := range []uint64{1, 3, 8} {
		fired := 0
		SetTriggerFunction(func(string, string, int) { fired++ })
		Arm(n)

		for i := uint64(0); i < n-1; i++ {
			_, err := Fallible(func() (bool, error) { return true, nil })
			require.NoError(t, err)
			require.Zero(t, fired, "trigger must not fire before the countdown hits zero")
		}

		_, err := Fallible(func() (bool, error) { return true, nil })
		require.Error(t, err)
		assert.True(t, IsInjected(err))
		assert.Equal(t, 1, fired, "exactly one trigger invocation per forced failure")
	}
}
