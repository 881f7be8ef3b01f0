package cursor

import "github.com/amp-labs/amp-containers/sequence"

// FromSlice returns a cursor over the elements of s.
func FromSlice[T any](s []T) Cursor[T] { //nolint:ireturn
	return FromSequence[T](sequence.Slice[T](s))
}

// FromSequence returns a cursor over r from first to last. It does not copy r.
func FromSequence[T any](r sequence.Reader[T]) Cursor[T] { //nolint:ireturn
	return &forward[T]{r: r}
}

type forward[T any] struct {
	r sequence.Reader[T]
	i int
}

func (f *forward[T]) HasNext() bool {
	return f.i < f.r.Len()
}

func (f *forward[T]) Next() (T, error) { //nolint:ireturn
	if !f.HasNext() {
		return exhausted[T]()
	}

	v := f.r.Get(f.i)
	f.i++

	return v, nil
}

// FromList returns a removable cursor over l from first to last. Remove
// deletes the last returned element from l.
func FromList[T any](l sequence.Removable[T]) Removable[T] { //nolint:ireturn
	return &forwardRemovable[T]{l: l, last: -1}
}

type forwardRemovable[T any] struct {
	l    sequence.Removable[T]
	i    int
	last int
}

func (f *forwardRemovable[T]) HasNext() bool {
	return f.i < f.l.Len()
}

func (f *forwardRemovable[T]) Next() (T, error) { //nolint:ireturn
	if !f.HasNext() {
		return exhausted[T]()
	}

	v := f.l.Get(f.i)
	f.last = f.i
	f.i++

	return v, nil
}

func (f *forwardRemovable[T]) Remove() error {
	if f.last < 0 {
		return nothingToRemove()
	}

	f.l.RemoveAt(f.last)
	f.i = f.last
	f.last = -1

	return nil
}

// Slice returns an Iterable over s.
func Slice[T any](s []T) Iterable[T] {
	return func() Cursor[T] {
		return FromSlice(s)
	}
}

// Sequence returns an Iterable over r.
func Sequence[T any](r sequence.Reader[T]) Iterable[T] {
	return func() Cursor[T] {
		return FromSequence(r)
	}
}
