// Package kv provides the key-value pair type exchanged between the storage
// and its drivers.
package kv

import (
	"github.com/tarantool/go-kvs/value"
)

// KeyValue represents a stored entry with revision metadata.
type KeyValue struct {
	// Key is the raw key of the entry.
	Key []byte
	// Value is the value stored under the key.
	Value value.Value

	// ModRevision is the revision number of the last modification to this key.
	ModRevision int64
}
