package errors_test

import (
	"fmt"

	"github.com/shieldpool/sapling/errors"
)

var ErrBadSignature = errors.New("bad signature")

// Sub substitutes a caller-facing sentinel for a detailed internal
// error while keeping the internal error's stack trace.
func ExampleSub() {
	err := errors.Wrap(verify(), "checking credentials")
	err = errors.Sub(ErrBadSignature, err)
	fmt.Println(errors.Root(err) == ErrBadSignature, err)
	// Output: true bad signature
}

func verify() error { return errors.New("signature does not match key") }
