package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-kvs/operation"
	"github.com/tarantool/go-kvs/value"
)

func TestGet(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")
	op := operation.Get(key)

	assert.Equal(t, operation.TypeGet, op.Type())
	assert.Equal(t, key, op.Key())
	assert.True(t, op.Value().IsNull())
	assert.Empty(t, op.Options())
	assert.False(t, op.IsPrefix())
}

func TestGetWithOptions(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")
	op := operation.Get(key, operation.Option{}, operation.Option{})

	assert.Equal(t, operation.TypeGet, op.Type())
	assert.Equal(t, key, op.Key())
	assert.True(t, op.Value().IsNull())
	assert.Len(t, op.Options(), 2)
}

func TestPut(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")
	val := value.FromString("test-value")
	op := operation.Put(key, val)

	assert.Equal(t, operation.TypePut, op.Type())
	assert.Equal(t, key, op.Key())
	assert.True(t, val.Equal(op.Value()))
	assert.Empty(t, op.Options())
}

func TestPutWithOptions(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")
	val := value.FromObject(map[string]value.Value{"a": value.FromI32(1)})
	op := operation.Put(key, val, operation.Option{}, operation.Option{})

	assert.Equal(t, operation.TypePut, op.Type())
	assert.Equal(t, key, op.Key())
	assert.True(t, val.Equal(op.Value()))
	assert.Len(t, op.Options(), 2)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")
	op := operation.Delete(key)

	assert.Equal(t, operation.TypeDelete, op.Type())
	assert.Equal(t, key, op.Key())
	assert.True(t, op.Value().IsNull())
	assert.Empty(t, op.Options())
}

func TestIsPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      []byte
		expected bool
	}{
		{"nil", nil, true},
		{"empty", []byte{}, true},
		{"directory", []byte("/config/"), true},
		{"root", []byte("/"), true},
		{"single key", []byte("/config/app"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, operation.IsPrefix(tt.key))
			assert.Equal(t, tt.expected, operation.Delete(tt.key).IsPrefix())
		})
	}
}
