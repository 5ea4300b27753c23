// Package predicate provides types and interfaces for conditional operations.
// It defines predicate logic used in transactional conditional execution.
package predicate

import (
	"github.com/tarantool/go-kvs/value"
)

// Predicate represents a condition used for conditional operations.
// Predicates are used in transactions to specify conditions for execution.
type Predicate interface {
	// Key returns the key that this predicate applies to.
	Key() []byte
	// Operation returns the comparison operation (Equal, NotEqual, Greater, Less).
	Operation() Op
	// Target returns what aspect of the key to compare (Version, Value).
	Target() Target
	// Value returns the comparison value for the predicate.
	Value() any
}

type predicate struct {
	key    []byte
	op     Op
	target Target
	value  any
}

func (p predicate) Key() []byte {
	return p.key
}

func (p predicate) Operation() Op {
	return p.op
}

func (p predicate) Target() Target {
	return p.target
}

func (p predicate) Value() any {
	return p.value
}

// ValueEqual creates a predicate that holds when the key exists and its
// value is structurally equal to val.
func ValueEqual(key []byte, val value.Value) Predicate {
	return predicate{key: key, op: OpEqual, target: TargetValue, value: val}
}

// ValueNotEqual creates a predicate that holds when the key is missing or
// its value differs from val.
func ValueNotEqual(key []byte, val value.Value) Predicate {
	return predicate{key: key, op: OpNotEqual, target: TargetValue, value: val}
}

// VersionEqual creates a predicate that holds when the key's modification
// revision equals version.
func VersionEqual(key []byte, version int64) Predicate {
	return predicate{key: key, op: OpEqual, target: TargetVersion, value: version}
}

// VersionNotEqual creates a predicate that holds when the key is missing or
// its modification revision differs from version.
func VersionNotEqual(key []byte, version int64) Predicate {
	return predicate{key: key, op: OpNotEqual, target: TargetVersion, value: version}
}

// VersionGreater creates a predicate that holds when the key's modification
// revision is greater than version.
func VersionGreater(key []byte, version int64) Predicate {
	return predicate{key: key, op: OpGreater, target: TargetVersion, value: version}
}

// VersionLess creates a predicate that holds when the key's modification
// revision is less than version.
func VersionLess(key []byte, version int64) Predicate {
	return predicate{key: key, op: OpLess, target: TargetVersion, value: version}
}
