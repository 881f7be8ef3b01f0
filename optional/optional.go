// Package optional holds the result of lookups that can come up empty, such
// as the first element of a sequence or the match of a search. A zero element
// that was found stays distinguishable from nothing found.
package optional

import "fmt"

// Value is either Some element or None.
type Value[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Value[T] {
	return Value[T]{value: value, ok: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the element and whether there is one.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.ok
}

func (v Value[T]) Empty() bool {
	return !v.ok
}

// GetOrPanic returns the element. Calling it on None is a programming error.
func (v Value[T]) GetOrPanic() T {
	if !v.ok {
		panic("optional: GetOrPanic on None")
	}

	return v.value
}

func (v Value[T]) String() string {
	if !v.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", v.value)
}
