package faultline_test

import (
	"errors"
	"fmt"

	"github.com/roach88/faultline"
)

func writeRecord() error { return nil }

// Arm the counter so the next guarded call fails, mirroring a disk-full
// condition without touching a disk.
func ExampleArm() {
	faultline.Arm(1)
	defer faultline.Disable()

	err := faultline.Do(writeRecord)
	fmt.Println(faultline.IsInjected(err))
	// Output: true
}

func ExampleFallible() {
	faultline.Disable()

	// With the counter disabled the operation runs normally and its own
	// error comes back annotated with the call site.
	n, err := faultline.Fallible(func() (int, error) {
		return 0, errors.New("connection reset")
	})
	fmt.Println(n, faultline.IsInjected(err), errors.As(err, new(*faultline.Error)))
	// Output: 0 false true
}
