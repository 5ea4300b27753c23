package value_test

import (
	"fmt"

	"github.com/tarantool/go-kvs/value"
)

// ExampleExtract demonstrates the fallible extraction of a native type.
func ExampleExtract() {
	val := value.FromString("abc")

	_, err := value.Extract[int32](val)
	fmt.Println(err)

	str, err := value.Extract[string](val)
	fmt.Println(str, err)

	// Output:
	// Value is not a i32
	// abc <nil>
}

// ExampleGet demonstrates the accessor, which reports a mismatch as absence.
func ExampleGet() {
	val := value.FromObject(map[string]value.Value{
		"port":  value.FromU32(3301),
		"hosts": value.FromArray([]value.Value{value.FromString("a"), value.FromString("b")}),
	})

	port, ok := value.Get[uint32](val.Field("port").UnwrapOr(value.Null())).Get()
	fmt.Println(port, ok)

	_, ok = value.Get[string](val.Field("port").UnwrapOr(value.Null())).Get()
	fmt.Println(ok)

	hosts := val.Field("hosts").UnwrapOr(value.Null())
	fmt.Println(hosts.Len(), hosts.Index(1).IsSome(), hosts.Index(2).IsSome())

	// Output:
	// 3301 true
	// false
	// 2 true false
}

// ExampleValue_String shows the debug representation of a nested value.
func ExampleValue_String() {
	val := value.FromObject(map[string]value.Value{
		"name":    value.FromString("alice"),
		"age":     value.FromI32(30),
		"enabled": value.FromBool(true),
		"tags":    value.FromArray([]value.Value{value.FromString("admin"), value.Null()}),
	})

	fmt.Println(val)

	// Output:
	// {"age": 30, "enabled": true, "name": "alice", "tags": ["admin", null]}
}
