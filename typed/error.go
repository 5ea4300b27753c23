package typed

import (
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key is missing and no default is set.
	ErrNotFound = errors.New("not found")
	// ErrInvalidName is returned for empty names and names with a leading or
	// trailing "/".
	ErrInvalidName = errors.New("invalid name")
	// ErrPredicateFailed is returned by Put or Delete when predicates are specified
	// but the transaction predicate check fails (i.e., the conditions are not met).
	// Use [WithPutPredicates] or [WithDeletePredicates] to specify predicates.
	ErrPredicateFailed = errors.New("predicate check failed")
)
