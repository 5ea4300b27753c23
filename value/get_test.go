package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvs/value"
)

func TestGet_Mismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		val   value.Value
		isSet func(value.Value) bool
	}{
		{"i32 from string", value.FromString("abc"), func(v value.Value) bool { return value.Get[int32](v).IsSome() }},
		{"u32 from i32", value.FromI32(123), func(v value.Value) bool { return value.Get[uint32](v).IsSome() }},
		{"i64 from string", value.FromString("abc"), func(v value.Value) bool { return value.Get[int64](v).IsSome() }},
		{"u64 from u32", value.FromU32(1), func(v value.Value) bool { return value.Get[uint64](v).IsSome() }},
		{"f64 from bool", value.FromBool(true), func(v value.Value) bool { return value.Get[float64](v).IsSome() }},
		{"bool from array", value.FromArray(nil), func(v value.Value) bool { return value.Get[bool](v).IsSome() }},
		{"string from f64", value.FromF64(345.6), func(v value.Value) bool { return value.Get[string](v).IsSome() }},
		{"array from object", value.FromObject(nil), func(v value.Value) bool { return value.Get[value.Array](v).IsSome() }},
		{"object from null", value.Null(), func(v value.Value) bool { return value.Get[value.Object](v).IsSome() }},
		{"unit from string", value.FromString(""), func(v value.Value) bool { return value.Get[value.Unit](v).IsSome() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.False(t, tt.isSet(tt.val))
		})
	}
}

func TestGet_Unit(t *testing.T) {
	t.Parallel()

	unit, ok := value.Get[value.Unit](value.Null()).Get()
	require.True(t, ok)
	assert.Equal(t, value.Unit{}, unit)

	assert.True(t, value.Is[value.Unit](value.Value{}))
	assert.False(t, value.Is[value.Unit](value.FromI32(0)))
}

func TestGet_BorrowsComposite(t *testing.T) {
	t.Parallel()

	elems := []value.Value{value.FromI32(1), value.FromI32(2)}
	val := value.FromArray(elems)

	arr, ok := value.Get[value.Array](val).Get()
	require.True(t, ok)
	require.Len(t, arr, 2)
	assert.Same(t, &elems[0], &arr[0], "accessor must not copy the payload")

	extracted, err := value.ToArray(val)
	require.NoError(t, err)
	assert.NotSame(t, &elems[0], &extracted[0], "extraction must copy the payload")
}

func TestGet_DoesNotAllocate(t *testing.T) {
	val := value.FromObject(map[string]value.Value{"a": value.FromI32(1)})

	allocs := testing.AllocsPerRun(100, func() {
		_ = value.Get[value.Object](val)
		_ = value.Get[int32](val)
	})
	assert.Zero(t, allocs)
}
