package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvs/predicate"
	"github.com/tarantool/go-kvs/value"
)

func TestValueNotEqual(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")
	val := value.FromString("test-value")
	p := predicate.ValueNotEqual(key, val)

	assert.Equal(t, key, p.Key())
	assert.Equal(t, predicate.OpNotEqual, p.Operation())
	assert.Equal(t, predicate.TargetValue, p.Target())

	got, ok := p.Value().(value.Value)
	require.True(t, ok)
	assert.True(t, val.Equal(got))
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")
	val := value.FromI32(42)
	p := predicate.ValueEqual(key, val)

	assert.Equal(t, key, p.Key())
	assert.Equal(t, predicate.OpEqual, p.Operation())
	assert.Equal(t, predicate.TargetValue, p.Target())

	got, ok := p.Value().(value.Value)
	require.True(t, ok)
	assert.True(t, val.Equal(got))
}

func TestVersionPredicates(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")

	tests := []struct {
		name    string
		pred    predicate.Predicate
		op      predicate.Op
		version int64
	}{
		{"VersionEqual", predicate.VersionEqual(key, 123), predicate.OpEqual, 123},
		{"VersionNotEqual", predicate.VersionNotEqual(key, 456), predicate.OpNotEqual, 456},
		{"VersionGreater", predicate.VersionGreater(key, 789), predicate.OpGreater, 789},
		{"VersionLess", predicate.VersionLess(key, 999), predicate.OpLess, 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, key, tt.pred.Key())
			assert.Equal(t, tt.op, tt.pred.Operation())
			assert.Equal(t, predicate.TargetVersion, tt.pred.Target())
			assert.Equal(t, tt.version, tt.pred.Value())
		})
	}
}
