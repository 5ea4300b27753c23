package value

import (
	"github.com/tarantool/go-option"
)

// Get returns the payload of v as T without copying it, or None when the
// tag of v does not match T. Array and Object payloads are returned as
// stored and must be treated as read-only.
//
// Use Get when "not this type" is an expected outcome; use Extract when
// the caller needs an owned copy or a reason for the failure.
func Get[T Native](v Value) option.Generic[T] {
	payload, ok := v.inner().(T)
	if !ok {
		return option.None[T]()
	}

	return option.Some(payload)
}

// Is reports whether the tag of v matches T.
func Is[T Native](v Value) bool {
	_, ok := v.inner().(T)
	return ok
}
