package cursor

// Map yields f applied to each element of c. f is called once per element,
// when Next is called.
func Map[A, B any](c Cursor[A], f func(A) B) Cursor[B] { //nolint:ireturn
	return &mapped[A, B]{c: c, f: f}
}

type mapped[A, B any] struct {
	c Cursor[A]
	f func(A) B
}

func (m *mapped[A, B]) HasNext() bool {
	return m.c.HasNext()
}

func (m *mapped[A, B]) Next() (B, error) { //nolint:ireturn
	v, err := m.c.Next()
	if err != nil {
		var zero B

		return zero, err
	}

	return m.f(v), nil
}

// MapRemovable is Map over a removable cursor; Remove is forwarded to c.
func MapRemovable[A, B any](c Removable[A], f func(A) B) Removable[B] { //nolint:ireturn
	return &mappedRemovable[A, B]{mapped: mapped[A, B]{c: c, f: f}, r: c}
}

type mappedRemovable[A, B any] struct {
	mapped[A, B]

	r Removable[A]
}

func (m *mappedRemovable[A, B]) Remove() error {
	return m.r.Remove()
}
