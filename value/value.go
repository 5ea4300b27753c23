// Package value provides the universal value representation stored under
// each key of the key-value storage.
//
// A [Value] is a closed tagged union over signed and unsigned integers of
// 32 and 64 bits, 64-bit floats, booleans, strings, null, arrays and
// string-keyed objects. Values are built with the total From* constructors
// (or [Of]), read back with the fallible To* extractors (or [Extract]) and
// inspected without copying through the [Get] accessor.
//
// Values are immutable once constructed and carry no internal
// synchronization, so any number of goroutines may read the same Value.
package value

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tarantool/go-option"
)

// Unit is the payload of the Null variant.
type Unit struct{}

// Array is the payload of the Array variant.
type Array = []Value

// Object is the payload of the Object variant. Keys are unique,
// iteration order is not significant.
type Object = map[string]Value

// Native is the closed set of Go types that have a matching Value variant.
// Adding a member requires updating kindOf as well.
type Native interface {
	int32 | uint32 | int64 | uint64 | float64 | bool | string | Unit | Array | Object
}

// Value is a tagged union holding exactly one payload of a Native type.
// The zero Value is Null.
type Value struct {
	// payload is nil for Null, otherwise one of the Native types except Unit.
	payload any
}

// inner returns the payload, substituting Unit for Null.
func (v Value) inner() any {
	if v.payload == nil {
		return Unit{}
	}

	return v.payload
}

// Kind returns the tag of the value.
func (v Value) Kind() Kind {
	return kindOf(v.payload)
}

// IsNull reports whether the value is Null.
func (v Value) IsNull() bool {
	return v.payload == nil
}

// Len returns the number of elements of an Array or entries of an Object.
// It returns 0 for scalars.
func (v Value) Len() int {
	switch p := v.payload.(type) {
	case Array:
		return len(p)
	case Object:
		return len(p)
	default:
		return 0
	}
}

type valuePair struct {
	left  Value
	right Value
}

// Equal reports whether two values have the same kind and recursively equal payloads.
func (v Value) Equal(other Value) bool {
	stack := []valuePair{{left: v, right: other}}

	for len(stack) > 0 {
		pair := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pair.left.Kind() != pair.right.Kind() {
			return false
		}

		switch left := pair.left.payload.(type) {
		case Array:
			right, _ := pair.right.payload.(Array)
			if len(left) != len(right) {
				return false
			}

			for i := range left {
				stack = append(stack, valuePair{left: left[i], right: right[i]})
			}
		case Object:
			right, _ := pair.right.payload.(Object)
			if len(left) != len(right) {
				return false
			}

			for key, lv := range left {
				rv, ok := right[key]
				if !ok {
					return false
				}

				stack = append(stack, valuePair{left: lv, right: rv})
			}
		default:
			if pair.left.payload != pair.right.payload {
				return false
			}
		}
	}

	return true
}

type cloneFrame struct {
	src Value
	dst *Value
}

type objectSlot struct {
	obj  Object
	key  string
	slot *Value
}

// Clone returns a deep copy of the value. The copy shares no
// array or object storage with the original.
func (v Value) Clone() Value {
	var (
		out   Value
		slots []objectSlot
		stack = []cloneFrame{{src: v, dst: &out}}
	)

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch p := frame.src.payload.(type) {
		case Array:
			arr := make(Array, len(p))
			*frame.dst = Value{payload: arr}

			for i := range p {
				stack = append(stack, cloneFrame{src: p[i], dst: &arr[i]})
			}
		case Object:
			obj := make(Object, len(p))
			*frame.dst = Value{payload: obj}

			for key, child := range p {
				slot := new(Value)
				slots = append(slots, objectSlot{obj: obj, key: key, slot: slot})
				stack = append(stack, cloneFrame{src: child, dst: slot})
			}
		default:
			*frame.dst = frame.src
		}
	}

	// Map entries are not addressable, so object children are
	// filled through slots once every frame has been processed.
	for _, s := range slots {
		s.obj[s.key] = *s.slot
	}

	return out
}

// Index returns the element at position i of an Array.
// It returns None if the value is not an Array or i is out of range.
func (v Value) Index(i int) option.Generic[Value] {
	arr, ok := v.payload.(Array)
	if !ok || i < 0 || i >= len(arr) {
		return option.None[Value]()
	}

	return option.Some(arr[i])
}

// Field returns the entry stored under key in an Object.
// It returns None if the value is not an Object or the key is missing.
func (v Value) Field(key string) option.Generic[Value] {
	obj, ok := v.payload.(Object)
	if !ok {
		return option.None[Value]()
	}

	child, ok := obj[key]
	if !ok {
		return option.None[Value]()
	}

	return option.Some(child)
}

// String returns a deterministic, JSON-like representation of the value.
// Object keys are printed in sorted order.
func (v Value) String() string {
	var (
		sb strings.Builder
		// Each item is either a Value to render or a literal to emit.
		stack = []any{v}
	)

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lit, ok := item.(string)
		if ok {
			sb.WriteString(lit)
			continue
		}

		cur, _ := item.(Value)
		switch p := cur.payload.(type) {
		case nil:
			sb.WriteString("null")
		case int32:
			sb.WriteString(strconv.FormatInt(int64(p), 10))
		case uint32:
			sb.WriteString(strconv.FormatUint(uint64(p), 10))
		case int64:
			sb.WriteString(strconv.FormatInt(p, 10))
		case uint64:
			sb.WriteString(strconv.FormatUint(p, 10))
		case float64:
			sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
		case bool:
			sb.WriteString(strconv.FormatBool(p))
		case string:
			sb.WriteString(strconv.Quote(p))
		case Array:
			sb.WriteByte('[')

			stack = append(stack, "]")
			for i := len(p) - 1; i >= 0; i-- {
				stack = append(stack, p[i])
				if i > 0 {
					stack = append(stack, ", ")
				}
			}
		case Object:
			keys := make([]string, 0, len(p))
			for key := range p {
				keys = append(keys, key)
			}

			sort.Strings(keys)

			sb.WriteByte('{')

			stack = append(stack, "}")
			for i := len(keys) - 1; i >= 0; i-- {
				stack = append(stack, p[keys[i]], strconv.Quote(keys[i])+": ")
				if i > 0 {
					stack = append(stack, ", ")
				}
			}
		}
	}

	return sb.String()
}
