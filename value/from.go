package value

// FromI32 creates an i32 value.
func FromI32(v int32) Value {
	return Value{payload: v}
}

// FromU32 creates a u32 value.
func FromU32(v uint32) Value {
	return Value{payload: v}
}

// FromI64 creates an i64 value.
func FromI64(v int64) Value {
	return Value{payload: v}
}

// FromU64 creates a u64 value.
func FromU64(v uint64) Value {
	return Value{payload: v}
}

// FromF64 creates an f64 value.
func FromF64(v float64) Value {
	return Value{payload: v}
}

// FromBool creates a bool value.
func FromBool(v bool) Value {
	return Value{payload: v}
}

// FromString creates a String value.
func FromString(v string) Value {
	return Value{payload: v}
}

// FromBytes creates a String value from a borrowed byte view.
// The bytes are copied, so b may be reused after the call.
func FromBytes(b []byte) Value {
	return Value{payload: string(b)}
}

// FromArray creates an Array value. The value takes ownership of
// elems: the caller must not modify the slice afterwards.
func FromArray(elems []Value) Value {
	if elems == nil {
		elems = Array{}
	}

	return Value{payload: elems}
}

// FromObject creates an Object value. The value takes ownership of
// entries: the caller must not modify the map afterwards.
func FromObject(entries map[string]Value) Value {
	if entries == nil {
		entries = Object{}
	}

	return Value{payload: entries}
}

// Null creates a Null value. It is the same as the zero Value.
func Null() Value {
	return Value{payload: nil}
}

// Of creates a value of the variant matching T. It never fails:
// types outside of Native are rejected by the compiler.
func Of[T Native](v T) Value {
	switch p := any(v).(type) {
	case Unit:
		return Null()
	case Array:
		return FromArray(p)
	case Object:
		return FromObject(p)
	default:
		return Value{payload: p}
	}
}
