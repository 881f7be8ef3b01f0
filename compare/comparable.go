// Package compare provides the equality and ordering abstractions that the
// container algorithms are written against.
//
// Equality is expressed with the Comparable interface (a type that knows how to
// compare itself for equality), and ordering with Comparator, a plain
// three-way comparison function supplied by the caller. Comparators are never
// validated: an inconsistent comparator silently produces an incorrectly
// ordered result.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
