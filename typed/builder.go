package typed

import (
	"strings"

	"github.com/tarantool/go-kvs"
	"github.com/tarantool/go-kvs/value"
)

// Builder builds Typed instances.
type Builder[T value.Native] struct {
	storage kvs.Storage
	prefix  string
}

// NewBuilder creates a new Builder for the given storage instance.
func NewBuilder[T value.Native](storageInstance kvs.Storage) Builder[T] {
	return Builder[T]{
		storage: storageInstance,
		prefix:  "/",
	}
}

// WithPrefix sets the key prefix. A missing trailing "/" is added on Build.
func (b Builder[T]) WithPrefix(prefix string) Builder[T] {
	out := b
	out.prefix = prefix

	return out
}

// Build creates a new Typed instance with the configured options.
func (b Builder[T]) Build() *Typed[T] {
	prefix := b.prefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &Typed[T]{
		base:   b.storage,
		prefix: prefix,
	}
}
