package value

func zero[T any]() T {
	var out T
	return out
}

// Extract returns a copy of the payload of v as T. Composite payloads are
// deep-copied. It fails with a TypeMismatchError when the tag of v does not
// match T; v itself is never modified.
func Extract[T Native](v Value) (T, error) {
	payload, ok := v.inner().(T)
	if !ok {
		return zero[T](), errTypeMismatch(kindFor[T](), v.Kind())
	}

	return cloned(payload), nil
}

// cloned deep-copies composite payloads and returns scalars as is.
func cloned[T Native](payload T) T {
	switch any(payload).(type) {
	case Array, Object:
		out, _ := Value{payload: payload}.Clone().payload.(T)
		return out
	default:
		return payload
	}
}

// ToI32 extracts an int32 from an i32 value.
func ToI32(v Value) (int32, error) {
	return Extract[int32](v)
}

// ToU32 extracts a uint32 from a u32 value.
func ToU32(v Value) (uint32, error) {
	return Extract[uint32](v)
}

// ToI64 extracts an int64 from an i64 value.
func ToI64(v Value) (int64, error) {
	return Extract[int64](v)
}

// ToU64 extracts a uint64 from a u64 value.
func ToU64(v Value) (uint64, error) {
	return Extract[uint64](v)
}

// ToF64 extracts a float64 from an f64 value.
func ToF64(v Value) (float64, error) {
	return Extract[float64](v)
}

// ToBool extracts a bool from a bool value.
func ToBool(v Value) (bool, error) {
	return Extract[bool](v)
}

// ToString extracts a string from a String value.
func ToString(v Value) (string, error) {
	return Extract[string](v)
}

// ToArray extracts a deep copy of the elements of an Array value.
func ToArray(v Value) ([]Value, error) {
	return Extract[Array](v)
}

// ToObject extracts a deep copy of the entries of an Object value.
func ToObject(v Value) (map[string]Value, error) {
	return Extract[Object](v)
}

// ToUnit succeeds only for a Null value.
func ToUnit(v Value) (Unit, error) {
	return Extract[Unit](v)
}
