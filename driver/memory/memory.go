// Package memory provides an in-memory implementation of the storage driver
// interface. Values are kept as value.Value and never serialized.
package memory

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tarantool/go-kvs/driver"
	"github.com/tarantool/go-kvs/kv"
	"github.com/tarantool/go-kvs/operation"
	"github.com/tarantool/go-kvs/predicate"
	"github.com/tarantool/go-kvs/tx"
	"github.com/tarantool/go-kvs/value"
	"github.com/tarantool/go-kvs/watch"
)

type watcher struct {
	key    string
	prefix bool
	ch     chan watch.Event
}

func (w watcher) matches(key string) bool {
	if w.prefix {
		return strings.HasPrefix(key, w.key)
	}

	return key == w.key
}

// memoryStorage holds the entries and the watchers. Every field is guarded by mu.
type memoryStorage struct {
	entries     map[string]kv.KeyValue
	watchers    map[uint64]watcher
	watcherID   uint64
	modRevision int64
	mu          sync.RWMutex
}

// Driver is an in-memory storage driver. It is safe for concurrent use.
// Every transaction runs under a single write lock, so readers observe
// stored values only as whole replacements.
type Driver struct {
	data memoryStorage
}

var (
	_ driver.Driver = &Driver{} //nolint:exhaustruct
)

// New creates an empty in-memory driver.
func New() *Driver {
	return &Driver{
		data: memoryStorage{
			entries:     make(map[string]kv.KeyValue),
			watchers:    make(map[uint64]watcher),
			watcherID:   0,
			modRevision: 1,
			mu:          sync.RWMutex{},
		},
	}
}

// Execute implements driver.Driver. Put operations store a deep copy of
// their value, and values read back are deep copies as well.
func (d *Driver) Execute(
	ctx context.Context,
	predicates []predicate.Predicate,
	thenOps []operation.Operation,
	elseOps []operation.Operation,
) (tx.Response, error) {
	if err := ctx.Err(); err != nil {
		return tx.Response{}, fmt.Errorf("failed to execute: %w", err)
	}

	d.data.mu.Lock()
	defer d.data.mu.Unlock()

	ops := elseOps

	success := d.checkPredicates(predicates)
	if success {
		ops = thenOps
	}

	return tx.Response{
		Succeeded: success,
		Results:   d.executeOps(ops),
	}, nil
}

// Watch implements driver.Driver. A key that ends with "/" (or the
// watch.WithPrefix option) matches every key under it.
func (d *Driver) Watch(ctx context.Context, key []byte, opts ...watch.Option) (<-chan watch.Event, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, func() {}, fmt.Errorf("failed to watch: %w", err)
	}

	options := watch.Apply(opts...)
	ch, cancel := d.addWatcher(ctx, string(key), options.Prefix || operation.IsPrefix(key), options.BufferSize)

	return ch, cancel, nil
}

// Revision returns the revision that the next mutating transaction will use.
func (d *Driver) Revision() int64 {
	d.data.mu.RLock()
	defer d.data.mu.RUnlock()

	return d.data.modRevision
}

// Len returns the number of stored keys.
func (d *Driver) Len() int {
	d.data.mu.RLock()
	defer d.data.mu.RUnlock()

	return len(d.data.entries)
}

func cloneKeyValue(in kv.KeyValue) kv.KeyValue {
	return kv.KeyValue{
		Key:         bytes.Clone(in.Key),
		Value:       in.Value.Clone(),
		ModRevision: in.ModRevision,
	}
}

func (d *Driver) get(key string) (kv.KeyValue, bool) {
	val, ok := d.data.entries[key]
	if !ok {
		return kv.KeyValue{}, false
	}

	return cloneKeyValue(val), true
}

// put replaces the value stored under key. It reports false when the
// stored value is already equal to val, in which case nothing changes.
func (d *Driver) put(key string, val value.Value) bool {
	if prev, ok := d.data.entries[key]; ok && prev.Value.Equal(val) {
		return false
	}

	d.data.entries[key] = kv.KeyValue{
		Key:         []byte(key),
		Value:       val.Clone(),
		ModRevision: d.data.modRevision,
	}
	d.notifyWatchers(key)

	return true
}

func (d *Driver) delete(key string) (kv.KeyValue, bool) {
	prevKv, ok := d.data.entries[key]
	if !ok {
		return kv.KeyValue{}, false
	}

	delete(d.data.entries, key)
	d.notifyWatchers(key)

	return prevKv, true
}

func (d *Driver) checkVersion(pred predicate.Predicate, entry kv.KeyValue, exists bool) bool {
	version, ok := pred.Value().(int64)
	if !ok {
		return false
	}

	if !exists {
		// A missing key has no revision: only "not equal" holds.
		return pred.Operation() == predicate.OpNotEqual
	}

	return pred.Operation().Holds(cmp.Compare(entry.ModRevision, version))
}

func (d *Driver) checkValue(pred predicate.Predicate, entry kv.KeyValue, exists bool) bool {
	expected, ok := pred.Value().(value.Value)
	if !ok {
		return false
	}

	switch pred.Operation() { //nolint:exhaustive
	case predicate.OpEqual:
		return exists && entry.Value.Equal(expected)
	case predicate.OpNotEqual:
		return !exists || !entry.Value.Equal(expected)
	default:
		return false
	}
}

// checkPredicates checks if the given predicates are satisfied by
// the current state of the storage.
func (d *Driver) checkPredicates(predicates []predicate.Predicate) bool {
	for _, pred := range predicates {
		entry, exists := d.data.entries[string(pred.Key())]

		var holds bool

		switch pred.Target() {
		case predicate.TargetVersion:
			holds = d.checkVersion(pred, entry, exists)
		case predicate.TargetValue:
			holds = d.checkValue(pred, entry, exists)
		default:
			holds = false
		}

		if !holds {
			return false
		}
	}

	return true
}

// keysByPrefix returns the stored keys starting with prefix in byte order.
func (d *Driver) keysByPrefix(prefix string) []string {
	var keys []string

	for k := range d.data.entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)

	return keys
}

func (d *Driver) executeOps(ops []operation.Operation) []tx.RequestResponse {
	result := make([]tx.RequestResponse, 0, len(ops))
	mutated := false

	for _, eop := range ops {
		key := string(eop.Key())

		var values []kv.KeyValue

		switch eop.Type() {
		case operation.TypePut:
			if d.put(key, eop.Value()) {
				mutated = true
			}
		case operation.TypeDelete:
			if eop.IsPrefix() {
				for _, k := range d.keysByPrefix(key) {
					prev, _ := d.delete(k)
					values = append(values, prev)
				}
			} else if prev, ok := d.delete(key); ok {
				values = []kv.KeyValue{prev}
			}

			if len(values) > 0 {
				mutated = true
			}
		case operation.TypeGet:
			if eop.IsPrefix() {
				for _, k := range d.keysByPrefix(key) {
					val, _ := d.get(k)
					values = append(values, val)
				}
			} else if val, ok := d.get(key); ok {
				values = []kv.KeyValue{val}
			}
		}

		result = append(result, tx.RequestResponse{
			Values: values,
		})
	}

	if mutated {
		d.data.modRevision++
	}

	return result
}

func (d *Driver) addWatcher(ctx context.Context, key string, prefix bool, size int) (chan watch.Event, func()) {
	d.data.mu.Lock()
	defer d.data.mu.Unlock()

	d.data.watcherID++
	wid := d.data.watcherID
	wch := make(chan watch.Event, size)

	d.data.watchers[wid] = watcher{
		key:    key,
		prefix: prefix,
		ch:     wch,
	}

	var (
		isStoppedOnce = sync.Once{}
		isStopped     = make(chan struct{})
	)

	go func() {
		defer func() {
			d.data.mu.Lock()
			defer d.data.mu.Unlock()

			delete(d.data.watchers, wid)
			close(wch)
		}()

		select {
		case <-ctx.Done():
		case <-isStopped:
		}
	}()

	return wch, func() { isStoppedOnce.Do(func() { close(isStopped) }) }
}

// notifyWatchers sends a watch event to all watchers matching the key.
// Watchers with a full buffer miss the event.
func (d *Driver) notifyWatchers(key string) {
	for _, w := range d.data.watchers {
		if !w.matches(key) {
			continue
		}

		select {
		case w.ch <- watch.Event{
			Prefix:   []byte(w.key),
			Key:      []byte(key),
			Revision: d.data.modRevision,
		}:
		default:
		}
	}
}
