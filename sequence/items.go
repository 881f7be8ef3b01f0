package sequence

import (
	"fmt"

	"github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/optional"
)

// First returns the first element of r, if any.
func First[T any](r Reader[T]) optional.Value[T] {
	if r.Len() == 0 {
		return optional.None[T]()
	}

	return optional.Some(r.Get(0))
}

// Last returns the last element of r, if any.
func Last[T any](r Reader[T]) optional.Value[T] {
	if r.Len() == 0 {
		return optional.None[T]()
	}

	return optional.Some(r.Get(r.Len() - 1))
}

// Only returns the single element of r. It is empty when r has zero or more
// than one element.
func Only[T any](r Reader[T]) optional.Value[T] {
	if r.Len() != 1 {
		return optional.None[T]()
	}

	return optional.Some(r.Get(0))
}

// FirstN returns a window over at most n leading elements of r. Unlike Sub it
// does not fail when n exceeds the length; it fails only for a negative n.
func FirstN[T any](r Reader[T], n int) (Range[T], error) {
	if n < 0 {
		return Range[T]{}, fmt.Errorf("%w: expected non-negative count, got %d", errors.ErrInvalidArgument, n)
	}

	return Range[T]{base: r, from: 0, to: min(n, r.Len())}, nil
}

// StartsWith reports whether the leading elements of r equal prefix under eq.
func StartsWith[T any](r Reader[T], prefix Reader[T], eq func(a, b T) bool) bool {
	if prefix.Len() > r.Len() {
		return false
	}

	for i := range prefix.Len() {
		if !eq(r.Get(i), prefix.Get(i)) {
			return false
		}
	}

	return true
}
