package typed

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-kvs/internal/options"
	"github.com/tarantool/go-kvs/value"
)

type getOptions[T value.Native] struct {
	fallback option.Generic[T]
}

type putOptions struct {
	Predicates []Predicate
}

type deleteOptions struct {
	withPrefix bool
	Predicates []Predicate
}

// Default returns an option that makes Get return val instead of
// [ErrNotFound] when the key is missing. The default is never stored.
func Default[T value.Native](val T) options.Callback[getOptions[T]] {
	return func(opts *getOptions[T]) {
		opts.fallback = option.Some(val)
	}
}

// WithPutPredicates configures predicates for conditional Put operations.
// The Put operation will only succeed if all predicates evaluate to true.
// If predicates are specified but fail, [ErrPredicateFailed] is returned.
func WithPutPredicates(predicates ...Predicate) options.Callback[putOptions] {
	return func(opts *putOptions) {
		opts.Predicates = append(opts.Predicates, predicates...)
	}
}

// WithDeletePredicates configures predicates for conditional Delete operations.
// The Delete operation will only succeed if all predicates evaluate to true.
// If predicates are specified but fail, [ErrPredicateFailed] is returned.
func WithDeletePredicates(predicates ...Predicate) options.Callback[deleteOptions] {
	return func(opts *deleteOptions) {
		opts.Predicates = append(opts.Predicates, predicates...)
	}
}

// WithPrefix configures Delete to remove every key under a directory name.
func WithPrefix() options.Callback[deleteOptions] {
	return func(opts *deleteOptions) {
		opts.withPrefix = true
	}
}
