package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvs/value"
)

func TestFromBytes(t *testing.T) {
	t.Parallel()

	buf := []byte("world")
	val := value.FromBytes(buf)

	buf[0] = 'W'

	str, err := value.ToString(val)
	require.NoError(t, err)
	assert.Equal(t, "world", str, "bytes must be copied on construction")
}

func TestFromArray_Nil(t *testing.T) {
	t.Parallel()

	val := value.FromArray(nil)
	assert.Equal(t, value.KindArray, val.Kind())
	assert.Zero(t, val.Len())

	arr, err := value.ToArray(val)
	require.NoError(t, err)
	assert.NotNil(t, arr)
	assert.Empty(t, arr)
}

func TestFromObject_Nil(t *testing.T) {
	t.Parallel()

	val := value.FromObject(nil)
	assert.Equal(t, value.KindObject, val.Kind())

	obj, err := value.ToObject(val)
	require.NoError(t, err)
	assert.NotNil(t, obj)
	assert.Empty(t, obj)
}

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val      value.Value
		expected value.Value
	}{
		{"i32", value.Of(int32(-1)), value.FromI32(-1)},
		{"u32", value.Of(uint32(1)), value.FromU32(1)},
		{"i64", value.Of(int64(-1)), value.FromI64(-1)},
		{"u64", value.Of(uint64(1)), value.FromU64(1)},
		{"f64", value.Of(2.5), value.FromF64(2.5)},
		{"bool", value.Of(false), value.FromBool(false)},
		{"string", value.Of("s"), value.FromString("s")},
		{"unit", value.Of(value.Unit{}), value.Null()},
		{"nil array", value.Of(value.Array(nil)), value.FromArray([]value.Value{})},
		{"nil object", value.Of(value.Object(nil)), value.FromObject(map[string]value.Value{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected.Kind(), tt.val.Kind())
			assert.True(t, tt.expected.Equal(tt.val))
		})
	}
}

func TestObjectSemantics(t *testing.T) {
	t.Parallel()

	val := value.FromObject(map[string]value.Value{"a": value.FromI32(1)})

	entry, ok := val.Field("a").Get()
	require.True(t, ok)

	one, ok := value.Get[int32](entry).Get()
	require.True(t, ok)
	assert.Equal(t, int32(1), one)

	assert.False(t, val.Field("b").IsSome(), "missing key is absence, not an error")
}

func TestArrayIndexing(t *testing.T) {
	t.Parallel()

	val := value.FromArray([]value.Value{value.FromI32(10), value.FromI32(20)})

	assert.Equal(t, int32(10), value.Get[int32](val.Index(0).UnwrapOr(value.Null())).UnwrapOr(0))
	assert.Equal(t, int32(20), value.Get[int32](val.Index(1).UnwrapOr(value.Null())).UnwrapOr(0))
	assert.False(t, val.Index(2).IsSome())
}
