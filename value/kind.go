package value

// Kind represents the tag of a Value.
type Kind int

const (
	// KindNull represents the absence of data (unit type).
	// It is the kind of the zero Value.
	KindNull Kind = iota
	// KindI32 represents a 32-bit signed integer.
	KindI32
	// KindU32 represents a 32-bit unsigned integer.
	KindU32
	// KindI64 represents a 64-bit signed integer.
	KindI64
	// KindU64 represents a 64-bit unsigned integer.
	KindU64
	// KindF64 represents a 64-bit floating point number.
	KindF64
	// KindBool represents a boolean.
	KindBool
	// KindString represents a UTF-8 string.
	KindString
	// KindArray represents an ordered sequence of values.
	KindArray
	// KindObject represents a mapping from string keys to values.
	KindObject
)

// String returns the canonical type name of the kind. The same names
// are used in extraction error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null (unit type)"
	case KindI32:
		return "i32"
	case KindU32:
		return "u32"
	case KindI64:
		return "i64"
	case KindU64:
		return "u64"
	case KindF64:
		return "f64"
	case KindBool:
		return "bool"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// IsComposite reports whether values of the kind own child values.
func (k Kind) IsComposite() bool {
	return k == KindArray || k == KindObject
}

// kindOf maps a payload to its tag. The payload's dynamic type is the tag,
// so this switch must list every member of Native.
func kindOf(payload any) Kind {
	switch payload.(type) {
	case int32:
		return KindI32
	case uint32:
		return KindU32
	case int64:
		return KindI64
	case uint64:
		return KindU64
	case float64:
		return KindF64
	case bool:
		return KindBool
	case string:
		return KindString
	case Array:
		return KindArray
	case Object:
		return KindObject
	default:
		return KindNull
	}
}

// kindFor returns the tag that carries payloads of type T.
func kindFor[T Native]() Kind {
	var zero T
	if _, ok := any(zero).(Unit); ok {
		return KindNull
	}

	return kindOf(zero)
}
