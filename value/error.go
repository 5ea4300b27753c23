package value

import (
	"errors"
)

// ErrTypeMismatch is the root of every extraction failure.
// Use errors.Is to test for it.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError represents an extraction of a type that does not
// match the tag of the value.
type TypeMismatchError struct {
	// Expected is the kind matching the requested type.
	Expected Kind
	// Actual is the kind of the value.
	Actual Kind
}

func errTypeMismatch(expected, actual Kind) error {
	return TypeMismatchError{
		Expected: expected,
		Actual:   actual,
	}
}

// Error returns a message naming the requested type.
func (e TypeMismatchError) Error() string {
	return "Value is not a " + e.Expected.String()
}

// Unwrap returns ErrTypeMismatch.
func (e TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
