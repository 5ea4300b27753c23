// Package kvs provides a key-value storage whose entries hold structured
// values of the [github.com/tarantool/go-kvs/value.Value] type.
//
// Atomic execution is delegated to a [driver.Driver]; see
// [github.com/tarantool/go-kvs/driver/memory] for the in-memory driver and
// the [github.com/tarantool/go-kvs/typed] package for access by native Go type.
package kvs
