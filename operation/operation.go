// Package operation provides types and interfaces for storage operations.
// It defines operation types and configurations used in transactional contexts.
package operation

import (
	"github.com/tarantool/go-kvs/value"
)

// Option configures an operation. No options are defined yet.
type Option struct{}

// Operation represents a storage operation to be executed.
// This is used within transactions and other operation contexts.
type Operation struct {
	typ     Type
	key     []byte
	value   value.Value
	options []Option
}

// Get creates an operation that reads a key. A key that is empty or ends
// with "/" reads every key under that prefix.
func Get(key []byte, opts ...Option) Operation {
	return Operation{
		typ:     TypeGet,
		key:     key,
		value:   value.Null(),
		options: opts,
	}
}

// Put creates an operation that replaces the value stored under a key.
func Put(key []byte, val value.Value, opts ...Option) Operation {
	return Operation{
		typ:     TypePut,
		key:     key,
		value:   val,
		options: opts,
	}
}

// Delete creates an operation that removes a key. A key that is empty or
// ends with "/" removes every key under that prefix.
func Delete(key []byte, opts ...Option) Operation {
	return Operation{
		typ:     TypeDelete,
		key:     key,
		value:   value.Null(),
		options: opts,
	}
}

// Type returns the operation type.
func (o Operation) Type() Type {
	return o.typ
}

// Key returns the target key.
func (o Operation) Key() []byte {
	return o.key
}

// Value returns the value to store. It is Null for Get and Delete.
func (o Operation) Value() value.Value {
	return o.value
}

// Options returns the operation options.
func (o Operation) Options() []Option {
	return o.options
}

// IsPrefix reports whether the key addresses a prefix rather than a single key.
func (o Operation) IsPrefix() bool {
	return IsPrefix(o.key)
}

// IsPrefix reports whether the key is empty or ends with "/".
func IsPrefix(key []byte) bool {
	return len(key) == 0 || key[len(key)-1] == '/'
}
