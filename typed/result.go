package typed

import (
	"github.com/tarantool/go-option"
)

// Result represents a named value read by Range.
// Exactly one of Value and Error is set.
type Result[T any] struct {
	Name        string
	Value       option.Generic[T]
	ModRevision int64
	Error       error
}
