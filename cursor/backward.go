package cursor

import "github.com/amp-labs/amp-containers/sequence"

// Backward walks r from its last element to its first without copying.
func Backward[T any](r sequence.Reader[T]) Cursor[T] { //nolint:ireturn
	return &backward[T]{r: r, i: r.Len() - 1}
}

type backward[T any] struct {
	r sequence.Reader[T]
	i int
}

func (b *backward[T]) HasNext() bool {
	return b.i >= 0
}

func (b *backward[T]) Next() (T, error) { //nolint:ireturn
	if b.i < 0 {
		return exhausted[T]()
	}

	v := b.r.Get(b.i)
	b.i--

	return v, nil
}

// BackwardRemovable walks l from last to first. Remove deletes the element
// most recently returned by Next from l.
func BackwardRemovable[T any](l sequence.Removable[T]) Removable[T] { //nolint:ireturn
	return &backwardRemovable[T]{l: l, i: l.Len() - 1, last: -1}
}

type backwardRemovable[T any] struct {
	l    sequence.Removable[T]
	i    int
	last int
}

func (b *backwardRemovable[T]) HasNext() bool {
	return b.i >= 0
}

func (b *backwardRemovable[T]) Next() (T, error) { //nolint:ireturn
	if b.i < 0 {
		return exhausted[T]()
	}

	v := b.l.Get(b.i)
	b.last = b.i
	b.i--

	return v, nil
}

func (b *backwardRemovable[T]) Remove() error {
	if b.last < 0 {
		return nothingToRemove()
	}

	// Elements below last keep their indices.
	b.l.RemoveAt(b.last)
	b.last = -1

	return nil
}

// Reversed returns an Iterable that walks r backwards.
func Reversed[T any](r sequence.Reader[T]) Iterable[T] {
	return func() Cursor[T] {
		return Backward(r)
	}
}
