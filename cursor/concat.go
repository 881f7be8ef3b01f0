package cursor

// Concat yields the elements of each cursor in turn. HasNext skips past
// exhausted cursors but never reads an element.
func Concat[T any](cursors ...Cursor[T]) Cursor[T] { //nolint:ireturn
	return &concat[T]{cursors: cursors, last: -1}
}

type concat[T any] struct {
	cursors []Cursor[T]
	cur     int

	// index of the cursor that produced the last element, or -1
	last int
}

func (c *concat[T]) HasNext() bool {
	for c.cur < len(c.cursors) {
		if c.cursors[c.cur].HasNext() {
			return true
		}

		c.cur++
	}

	return false
}

func (c *concat[T]) Next() (T, error) { //nolint:ireturn
	if !c.HasNext() {
		return exhausted[T]()
	}

	v, err := c.cursors[c.cur].Next()
	if err != nil {
		return v, err
	}

	c.last = c.cur

	return v, nil
}

// ConcatRemovable is Concat over removable cursors. Remove is forwarded to the
// cursor that produced the last element, even when HasNext has since moved on
// to a later cursor.
func ConcatRemovable[T any](cursors ...Removable[T]) Removable[T] { //nolint:ireturn
	plain := make([]Cursor[T], len(cursors))
	for i, c := range cursors {
		plain[i] = c
	}

	return &concatRemovable[T]{
		concat:   concat[T]{cursors: plain, last: -1},
		removers: cursors,
	}
}

type concatRemovable[T any] struct {
	concat[T]

	removers []Removable[T]
}

func (c *concatRemovable[T]) Remove() error {
	if c.last < 0 {
		return nothingToRemove()
	}

	err := c.removers[c.last].Remove()
	c.last = -1

	return err
}

// ConcatIterables chains iterables. Each call of the result opens fresh
// cursors on every part. With no parts the result is empty; a single part is
// returned as is.
func ConcatIterables[T any](its ...Iterable[T]) Iterable[T] {
	switch len(its) {
	case 0:
		return func() Cursor[T] {
			return Empty[T]()
		}
	case 1:
		return its[0]
	}

	return func() Cursor[T] {
		cursors := make([]Cursor[T], len(its))
		for i, it := range its {
			cursors[i] = it()
		}

		return Concat(cursors...)
	}
}
