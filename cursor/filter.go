package cursor

// Filter yields the elements of c that satisfy pred, in order. It keeps one
// matching element buffered so HasNext has no side effects; the buffer is
// filled when the filter is created and after every Next.
//
// There is no removable variant: by the time an element is returned the
// source has already moved past it.
func Filter[T any](c Cursor[T], pred func(T) bool) Cursor[T] { //nolint:ireturn
	f := &filter[T]{c: c, pred: pred}
	f.advance()

	return f
}

type filter[T any] struct {
	c    Cursor[T]
	pred func(T) bool

	head     T
	err      error
	buffered bool
}

func (f *filter[T]) advance() {
	var zero T

	f.head, f.err, f.buffered = zero, nil, false

	for f.c.HasNext() {
		v, err := f.c.Next()
		if err != nil {
			f.err, f.buffered = err, true

			return
		}

		if f.pred(v) {
			f.head, f.buffered = v, true

			return
		}
	}
}

func (f *filter[T]) HasNext() bool {
	return f.buffered
}

func (f *filter[T]) Next() (T, error) { //nolint:ireturn
	if !f.buffered {
		return exhausted[T]()
	}

	v, err := f.head, f.err
	f.advance()

	return v, err
}

// FilterIterable filters every cursor opened from it.
func FilterIterable[T any](it Iterable[T], pred func(T) bool) Iterable[T] {
	return func() Cursor[T] {
		return Filter(it(), pred)
	}
}
