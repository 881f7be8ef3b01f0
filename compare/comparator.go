package compare

import (
	"cmp"
)

// Comparator is a three-way comparison: negative when a sorts before b, zero
// when they are equivalent and positive when a sorts after b. The algorithms
// that accept a Comparator assume it is a consistent strict weak ordering.
type Comparator[T any] func(a, b T) int

// Natural returns the comparator for the natural ordering of an ordered type.
// NaN values sort before all other floats, as with cmp.Compare.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Less reports whether a sorts strictly before b.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}

// Equal reports whether a and b are equivalent under this ordering.
func (c Comparator[T]) Equal(a, b T) bool {
	return c(a, b) == 0
}

// Reverse returns the comparator with the opposite ordering.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then returns a comparator which breaks ties of c using next.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}

		return next(a, b)
	}
}

// Reverse returns a comparator with the opposite ordering of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return c.Reverse()
}

// By orders values of T by a key extracted with key, compared with keyCmp.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age }, compare.Natural[int]())
func By[T, K any](key func(T) K, keyCmp Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return keyCmp(key(a), key(b))
	}
}

// Lexicographic lifts an element comparator to slices: slices are compared
// element by element, and when one is a prefix of the other the shorter one
// sorts first.
func Lexicographic[T any](elem Comparator[T]) Comparator[[]T] {
	return func(a, b []T) int {
		n := min(len(a), len(b))

		for i := range n {
			if r := elem(a[i], b[i]); r != 0 {
				return r
			}
		}

		return cmp.Compare(len(a), len(b))
	}
}

// EqualFunc adapts a comparator into an equality predicate.
func EqualFunc[T any](c Comparator[T]) func(a, b T) bool {
	return c.Equal
}
