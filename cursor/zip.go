package cursor

import (
	"github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/tuple"
)

// Zip pairs the elements of a and b by position. It ends as soon as either
// side is exhausted; the longer side is left with its remaining elements
// unread.
func Zip[A, B any](a Cursor[A], b Cursor[B]) Cursor[tuple.Tuple2[A, B]] { //nolint:ireturn
	return &zip[A, B]{a: a, b: b}
}

type zip[A, B any] struct {
	a Cursor[A]
	b Cursor[B]
}

func (z *zip[A, B]) HasNext() bool {
	return z.a.HasNext() && z.b.HasNext()
}

func (z *zip[A, B]) Next() (tuple.Tuple2[A, B], error) {
	if !z.HasNext() {
		return exhausted[tuple.Tuple2[A, B]]()
	}

	va, err := z.a.Next()
	if err != nil {
		return tuple.Tuple2[A, B]{}, err
	}

	vb, err := z.b.Next()
	if err != nil {
		return tuple.Tuple2[A, B]{}, err
	}

	return tuple.NewTuple2(va, vb), nil
}

// ZipIterables pairs two iterables. Each call of the result opens fresh
// cursors on both sides.
func ZipIterables[A, B any](a Iterable[A], b Iterable[B]) Iterable[tuple.Tuple2[A, B]] {
	return func() Cursor[tuple.Tuple2[A, B]] {
		return Zip(a(), b())
	}
}

// ZipRemovable is Zip over removable cursors. Remove deletes the last pair's
// elements from both sources.
func ZipRemovable[A, B any](a Removable[A], b Removable[B]) Removable[tuple.Tuple2[A, B]] { //nolint:ireturn
	return &zipRemovable[A, B]{zip: zip[A, B]{a: a, b: b}, ra: a, rb: b}
}

type zipRemovable[A, B any] struct {
	zip[A, B]

	ra Removable[A]
	rb Removable[B]
}

func (z *zipRemovable[A, B]) Remove() error {
	var errs errors.Collection

	errs.Add(z.ra.Remove())
	errs.Add(z.rb.Remove())

	return errs.GetError()
}
