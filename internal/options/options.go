// Package options holds the functional option helpers shared by the
// public packages.
package options

// Defaults returns the initial value that callbacks are applied to.
type Defaults[T any] func() T

// Callback mutates an option set in place.
type Callback[T any] func(*T)

// Apply builds an option set: it starts from defaults (or the zero value
// when defaults is nil) and runs every callback in order. Nil callbacks
// are skipped.
func Apply[T any](defaults Defaults[T], cbs []Callback[T]) T {
	var opts T

	if defaults != nil {
		opts = defaults()
	}

	for _, cb := range cbs {
		if cb != nil {
			cb(&opts)
		}
	}

	return opts
}
