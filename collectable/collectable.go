// Package collectable combines hashing and equality so values can be placed
// in hash buckets with collisions resolved by Equals.
package collectable

import (
	"errors"
	"fmt"
	"hash"

	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/hashing"
)

// ErrUnsupportedType is returned when hashing a value whose type has no
// hashing.HashableX counterpart.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// Collectable is a value that can be hashed and compared for equality.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

type comparableWrapper[T comparable] struct {
	value T
}

// UpdateHash delegates to the hashing.HashableX type matching the value.
func (w *comparableWrapper[T]) UpdateHash(h hash.Hash) error {
	switch v := any(w.value).(type) {
	case int:
		return hashing.HashableInt64(v).UpdateHash(h)
	case int8:
		return hashing.HashableInt64(v).UpdateHash(h)
	case int16:
		return hashing.HashableInt64(v).UpdateHash(h)
	case int32:
		return hashing.HashableInt64(v).UpdateHash(h)
	case int64:
		return hashing.HashableInt64(v).UpdateHash(h)
	case uint:
		return hashing.HashableUint64(v).UpdateHash(h)
	case uint8:
		return hashing.HashableUint64(v).UpdateHash(h)
	case uint16:
		return hashing.HashableUint64(v).UpdateHash(h)
	case uint32:
		return hashing.HashableUint64(v).UpdateHash(h)
	case uint64:
		return hashing.HashableUint64(v).UpdateHash(h)
	case float32:
		return hashing.HashableFloat64(v).UpdateHash(h)
	case float64:
		return hashing.HashableFloat64(v).UpdateHash(h)
	case string:
		return hashing.HashableString(v).UpdateHash(h)
	case bool:
		return hashing.HashableBool(v).UpdateHash(h)
	case hashing.Hashable:
		return v.UpdateHash(h)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func (w *comparableWrapper[T]) Equals(other T) bool {
	return w.value == other
}

// FromComparable wraps a comparable value. Numeric types, strings, booleans
// and types that already implement hashing.Hashable can be hashed; any other
// type fails in UpdateHash with ErrUnsupportedType.
func FromComparable[T comparable](value T) Collectable[T] { //nolint:ireturn
	return &comparableWrapper[T]{value: value}
}
