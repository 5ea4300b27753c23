// Package typed provides key-value access by native Go type on top of
// [kvs.Storage]. Stored values are built with [value.Of] and read back
// with [value.Extract], so a value of another kind is reported as a
// [value.ErrTypeMismatch].
//
// See [Builder] for configuration options and [Typed] for available operations.
package typed

import (
	"context"
	"fmt"
	"strings"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-kvs"
	"github.com/tarantool/go-kvs/internal/options"
	"github.com/tarantool/go-kvs/operation"
	"github.com/tarantool/go-kvs/predicate"
	"github.com/tarantool/go-kvs/value"
	"github.com/tarantool/go-kvs/watch"
)

// Typed provides storage operations for values of the native type T.
// Every name is stored under the configured key prefix.
type Typed[T value.Native] struct {
	base   kvs.Storage
	prefix string
}

func checkName(name string) bool {
	switch {
	case len(name) == 0:
		return false
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		return false
	default:
		return true
	}
}

// checkPrefix accepts the empty name (everything under the key prefix)
// and directory names such as "a/b/".
func checkPrefix(name string) bool {
	switch {
	case len(name) == 0:
		return true
	case strings.HasPrefix(name, "/"):
		return false
	default:
		return strings.HasSuffix(name, "/")
	}
}

func checkRangeName(name string) bool {
	return !strings.HasPrefix(name, "/")
}

func (t *Typed[T]) key(name string) []byte {
	return []byte(t.prefix + name)
}

// Predicate builds a storage predicate for the key of a name.
type Predicate func(key []byte) predicate.Predicate

// ValueEqual creates a predicate that checks if a key's value equals the specified value.
func (t *Typed[T]) ValueEqual(val T) Predicate {
	expected := value.Of(val)

	return func(key []byte) predicate.Predicate { return predicate.ValueEqual(key, expected) }
}

// ValueNotEqual creates a predicate that checks if a key's value is not equal to the specified value.
func (t *Typed[T]) ValueNotEqual(val T) Predicate {
	expected := value.Of(val)

	return func(key []byte) predicate.Predicate { return predicate.ValueNotEqual(key, expected) }
}

// VersionEqual creates a predicate that checks if a key's version equals the specified version.
func (t *Typed[T]) VersionEqual(version int64) Predicate {
	return t.versionPredicate(version, predicate.VersionEqual)
}

// VersionNotEqual creates a predicate that checks if a key's version is not equal to the specified version.
func (t *Typed[T]) VersionNotEqual(version int64) Predicate {
	return t.versionPredicate(version, predicate.VersionNotEqual)
}

// VersionGreater creates a predicate that checks if a key's version is greater than the specified version.
func (t *Typed[T]) VersionGreater(version int64) Predicate {
	return t.versionPredicate(version, predicate.VersionGreater)
}

// VersionLess creates a predicate that checks if a key's version is less than the specified version.
func (t *Typed[T]) VersionLess(version int64) Predicate {
	return t.versionPredicate(version, predicate.VersionLess)
}

func (t *Typed[T]) versionPredicate(
	version int64,
	predFunc func(key []byte, version int64) predicate.Predicate,
) Predicate {
	return func(key []byte) predicate.Predicate { return predFunc(key, version) }
}

func buildPredicates(key []byte, preds []Predicate) []predicate.Predicate {
	if len(preds) == 0 {
		return nil
	}

	out := make([]predicate.Predicate, 0, len(preds))
	for _, p := range preds {
		out = append(out, p(key))
	}

	return out
}

// Get retrieves a single named value and extracts it as T.
// It returns [ErrNotFound] when the key is missing (unless [Default] is
// given) and an error wrapping [value.ErrTypeMismatch] when the stored
// value holds another kind.
func (t *Typed[T]) Get(
	ctx context.Context,
	name string,
	vOpts ...options.Callback[getOptions[T]],
) (T, error) {
	var zero T

	if !checkName(name) {
		return zero, ErrInvalidName
	}

	opts := options.Apply(nil, vOpts)

	got, err := t.base.Get(ctx, t.key(name))
	if err != nil {
		return zero, fmt.Errorf("%w: failed to get %s", err, name)
	}

	entry, ok := got.Get()
	if !ok {
		if fallback, ok := opts.fallback.Get(); ok {
			return fallback, nil
		}

		return zero, ErrNotFound
	}

	out, err := value.Extract[T](entry.Value)
	if err != nil {
		return zero, fmt.Errorf("%w: failed to extract %s", err, name)
	}

	return out, nil
}

// Lookup retrieves a single named value. A missing key and a value of
// another kind are both reported as None.
func (t *Typed[T]) Lookup(ctx context.Context, name string) (option.Generic[T], error) {
	if !checkName(name) {
		return option.None[T](), ErrInvalidName
	}

	got, err := t.base.Get(ctx, t.key(name))
	if err != nil {
		return option.None[T](), fmt.Errorf("%w: failed to get %s", err, name)
	}

	entry, ok := got.Get()
	if !ok {
		return option.None[T](), nil
	}

	return value.Get[T](entry.Value), nil
}

// Put stores a named value, replacing the previous one as a whole.
// Use [WithPutPredicates] to specify conditions that must be met for the operation to succeed.
// If predicates are specified but fail, [ErrPredicateFailed] is returned.
func (t *Typed[T]) Put(ctx context.Context, name string, val T, vOpts ...options.Callback[putOptions]) error {
	if !checkName(name) {
		return ErrInvalidName
	}

	opts := options.Apply(nil, vOpts)
	key := t.key(name)
	predicates := buildPredicates(key, opts.Predicates)

	txn := t.base.Tx(ctx)
	if len(predicates) > 0 {
		txn = txn.If(predicates...)
	}

	resp, err := txn.Then(operation.Put(key, value.Of(val))).Commit()
	if err != nil {
		return fmt.Errorf("%w: failed to execute", err)
	}

	if len(predicates) > 0 && !resp.Succeeded {
		return ErrPredicateFailed
	}

	return nil
}

// Delete removes a named value. Deleting a missing name is not an error.
// Use [WithPrefix] to delete all values under a directory name ("" means
// every value under the key prefix).
// Use [WithDeletePredicates] to specify conditions that must be met for the operation to succeed.
// If predicates are specified but fail, [ErrPredicateFailed] is returned.
func (t *Typed[T]) Delete(ctx context.Context, name string, vOpts ...options.Callback[deleteOptions]) error {
	opts := options.Apply(nil, vOpts)

	if !opts.withPrefix && !checkName(name) {
		return ErrInvalidName
	}

	if opts.withPrefix && !checkPrefix(name) {
		return ErrInvalidName
	}

	key := t.key(name)
	predicates := buildPredicates(key, opts.Predicates)

	txn := t.base.Tx(ctx)
	if len(predicates) > 0 {
		txn = txn.If(predicates...)
	}

	resp, err := txn.Then(operation.Delete(key)).Commit()
	if err != nil {
		return fmt.Errorf("%w: failed to execute", err)
	}

	if len(predicates) > 0 && !resp.Succeeded {
		return ErrPredicateFailed
	}

	return nil
}

// Range retrieves all values whose names start with the given prefix,
// ordered by name. Values of another kind are returned with Error set.
func (t *Typed[T]) Range(ctx context.Context, name string) ([]Result[T], error) {
	if !checkRangeName(name) {
		return nil, ErrInvalidName
	}

	entries, err := t.base.Range(ctx, kvs.WithPrefix(t.prefix+name))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute range", err)
	}

	out := make([]Result[T], 0, len(entries))

	for _, entry := range entries {
		result := Result[T]{
			Name:        strings.TrimPrefix(string(entry.Key), t.prefix),
			Value:       option.None[T](),
			ModRevision: entry.ModRevision,
			Error:       nil,
		}

		val, err := value.Extract[T](entry.Value)
		if err != nil {
			result.Error = fmt.Errorf("%w: failed to extract %s", err, result.Name)
		} else {
			result.Value = option.Some(val)
		}

		out = append(out, result)
	}

	return out, nil
}

// Watch returns a channel for watching changes to a name. A name ending
// with "/" (or the empty name) watches every value under it.
// The channel is closed when ctx is done.
func (t *Typed[T]) Watch(ctx context.Context, name string) (<-chan watch.Event, error) {
	if !checkRangeName(name) {
		return nil, ErrInvalidName
	}

	rawCh, err := t.base.Watch(ctx, t.key(name))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to watch", err)
	}

	filteredCh := make(chan watch.Event)

	go func() {
		defer close(filteredCh)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-rawCh:
				if !ok {
					return
				}

				// Skip keys that no name maps to.
				if !checkName(strings.TrimPrefix(string(event.Key), t.prefix)) {
					continue
				}

				select {
				case <-ctx.Done():
					return
				case filteredCh <- event:
				}
			}
		}
	}()

	return filteredCh, nil
}
