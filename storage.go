package kvs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-kvs/driver"
	"github.com/tarantool/go-kvs/internal/options"
	"github.com/tarantool/go-kvs/kv"
	"github.com/tarantool/go-kvs/operation"
	"github.com/tarantool/go-kvs/predicate"
	txPkg "github.com/tarantool/go-kvs/tx"
	"github.com/tarantool/go-kvs/value"
	"github.com/tarantool/go-kvs/watch"
)

var (
	// ErrInvalidKey is returned for single-key calls with an empty key
	// or a key ending with "/".
	ErrInvalidKey = errors.New("invalid key")
)

// rangeOptions contains configuration options for range operations.
type rangeOptions struct {
	Prefix string // Prefix filter for range queries.
	Limit  int    // Maximum number of results to return.
}

// RangeOption is a function that configures range operation options.
type RangeOption = options.Callback[rangeOptions]

// WithPrefix configures a range operation to filter keys by the specified prefix.
func WithPrefix(prefix string) RangeOption {
	return func(opts *rangeOptions) {
		opts.Prefix = prefix
	}
}

// WithLimit configures a range operation to limit the number of results returned.
// Zero or a negative limit means no limit.
func WithLimit(limit int) RangeOption {
	return func(opts *rangeOptions) {
		opts.Limit = limit
	}
}

// Storage is the main interface for key-value storage operations.
// It provides methods for watching changes, transaction management, and range queries.
type Storage interface {
	// Watch streams changes for a specific key or prefix.
	// The channel is closed when ctx is done.
	// Options:
	//   - watch.WithPrefix: watch for changes on keys with the specified prefix
	Watch(ctx context.Context, key []byte, opts ...watch.Option) (<-chan watch.Event, error)

	// Tx creates a new transaction.
	// The context manages timeouts and cancellation for the transaction.
	Tx(ctx context.Context) txPkg.Tx

	// Range queries a range of keys with optional filtering.
	// Results are ordered by key.
	// Options:
	//   - WithPrefix: filter keys by prefix
	//   - WithLimit: limit the number of results returned
	Range(ctx context.Context, opts ...RangeOption) ([]kv.KeyValue, error)

	// Get returns the entry stored under key, or None if the key is missing.
	Get(ctx context.Context, key []byte) (option.Generic[kv.KeyValue], error)

	// Put replaces the value stored under key as a whole.
	Put(ctx context.Context, key []byte, val value.Value) error

	// Delete removes key and reports whether it existed.
	Delete(ctx context.Context, key []byte) (bool, error)
}

// storageOptions contains configuration options for storage instances.
type storageOptions struct {
	timeout time.Duration
}

// Option is a function that configures storage options.
type Option = options.Callback[storageOptions]

// WithTimeout configures a default timeout for storage operations.
// A transaction must be committed within the timeout after Tx is called.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *storageOptions) {
		opts.timeout = timeout
	}
}

// storage is the concrete implementation of the Storage interface.
type storage struct {
	driver driver.Driver // Underlying storage driver.
	opts   storageOptions
}

// NewStorage creates a new Storage instance with the specified driver.
// Optional Option parameters can be provided to configure the storage.
func NewStorage(driver driver.Driver, opts ...Option) Storage {
	return &storage{
		driver: driver,
		opts:   options.Apply(nil, opts),
	}
}

func checkKey(key []byte) error {
	if operation.IsPrefix(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return nil
}

// Watch implements the Storage interface for watching key changes.
func (s storage) Watch(ctx context.Context, key []byte, opts ...watch.Option) (<-chan watch.Event, error) {
	ch, _, err := s.driver.Watch(ctx, key, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to watch: %w", err)
	}

	return ch, nil
}

// Tx implements the Storage interface for transaction creation.
func (s storage) Tx(ctx context.Context) txPkg.Tx {
	return newTx(ctx, s.driver, s.opts.timeout)
}

// Range implements the Storage interface for range queries.
func (s storage) Range(ctx context.Context, opts ...RangeOption) ([]kv.KeyValue, error) {
	rangeOpts := options.Apply(nil, opts)

	prefix := []byte(rangeOpts.Prefix)

	// Drivers read prefixes ending with "/"; other prefixes are filtered here.
	readKey := prefix
	if !operation.IsPrefix(prefix) {
		readKey = prefix[:bytes.LastIndexByte(prefix, '/')+1]
	}

	resp, err := s.Tx(ctx).Then(operation.Get(readKey)).Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to range: %w", err)
	}

	var out []kv.KeyValue

	for _, entry := range resp.Flatten() {
		if !bytes.HasPrefix(entry.Key, prefix) {
			continue
		}

		out = append(out, entry)
		if rangeOpts.Limit > 0 && len(out) == rangeOpts.Limit {
			break
		}
	}

	return out, nil
}

// Get implements the Storage interface.
func (s storage) Get(ctx context.Context, key []byte) (option.Generic[kv.KeyValue], error) {
	if err := checkKey(key); err != nil {
		return option.None[kv.KeyValue](), err
	}

	resp, err := s.Tx(ctx).Then(operation.Get(key)).Commit()
	if err != nil {
		return option.None[kv.KeyValue](), fmt.Errorf("failed to get: %w", err)
	}

	kvs := resp.Flatten()
	if len(kvs) == 0 {
		return option.None[kv.KeyValue](), nil
	}

	return option.Some(kvs[0]), nil
}

// Put implements the Storage interface.
func (s storage) Put(ctx context.Context, key []byte, val value.Value) error {
	if err := checkKey(key); err != nil {
		return err
	}

	_, err := s.Tx(ctx).Then(operation.Put(key, val)).Commit()
	if err != nil {
		return fmt.Errorf("failed to put: %w", err)
	}

	return nil
}

// Delete implements the Storage interface.
func (s storage) Delete(ctx context.Context, key []byte) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}

	resp, err := s.Tx(ctx).Then(operation.Delete(key)).Commit()
	if err != nil {
		return false, fmt.Errorf("failed to delete: %w", err)
	}

	return len(resp.Flatten()) > 0, nil
}

// tx is the internal implementation of the Tx interface.
type tx struct {
	driver  driver.Driver
	ctx     context.Context //nolint:containedctx // Context is stored for transaction execution
	timeout time.Duration

	predicates option.Generic[[]predicate.Predicate]
	thenOps    option.Generic[[]operation.Operation]
	elseOps    option.Generic[[]operation.Operation]
}

// newTx creates a new transaction builder with the given driver and context.
func newTx(ctx context.Context, driver driver.Driver, timeout time.Duration) txPkg.Tx {
	return &tx{
		driver:     driver,
		ctx:        ctx,
		timeout:    timeout,
		predicates: option.None[[]predicate.Predicate](),
		thenOps:    option.None[[]operation.Operation](),
		elseOps:    option.None[[]operation.Operation](),
	}
}

// If adds predicates to the transaction condition.
// Empty predicate list means always true (unconditional execution).
// If should be called before Then/Else.
func (tb *tx) If(predicates ...predicate.Predicate) txPkg.Tx {
	if tb.predicates.IsSome() {
		panic("predicates are already set")
	} else if tb.thenOps.IsSome() || tb.elseOps.IsSome() {
		panic("If can only be called before Then/Else")
	}

	tb.predicates = option.Some(predicates)

	return tb
}

// Then adds operations to execute if predicates evaluate to true.
// Then can only be called before Else.
func (tb *tx) Then(operations ...operation.Operation) txPkg.Tx {
	if tb.thenOps.IsSome() {
		panic("then operations are already set")
	} else if tb.elseOps.IsSome() {
		panic("Then can only be called before Else")
	}

	tb.thenOps = option.Some(operations)

	return tb
}

// Else adds operations to execute if predicates evaluate to false.
// This is optional.
func (tb *tx) Else(operations ...operation.Operation) txPkg.Tx {
	if tb.elseOps.IsSome() {
		panic("else operations are already set")
	}

	tb.elseOps = option.Some(operations)

	return tb
}

// Commit atomically executes the transaction by delegating to the driver.
func (tb *tx) Commit() (txPkg.Response, error) {
	ctx := tb.ctx
	if tb.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, tb.timeout)
		defer cancel()
	}

	resp, err := tb.driver.Execute(
		ctx,
		tb.predicates.UnwrapOr(nil),
		tb.thenOps.UnwrapOr(nil),
		tb.elseOps.UnwrapOr(nil),
	)
	if err != nil {
		return txPkg.Response{}, fmt.Errorf("tx execute failed: %w", err)
	}

	return resp, nil
}
