package sequence

import (
	"fmt"
	"sort"

	"github.com/amp-labs/amp-containers/errors"
)

// Range is a non-owning window [From, To) over a Reader. It reflects writes
// made to the underlying sequence but never changes its own bounds.
type Range[T any] struct {
	base Reader[T]
	from int
	to   int
}

var _ Reader[int] = Range[int]{}

// Sub returns the window [from, to) over r.
func Sub[T any](r Reader[T], from, to int) (Range[T], error) {
	if from < 0 || to > r.Len() || from > to {
		return Range[T]{}, fmt.Errorf("%w: range [%d, %d) out of bounds for length %d",
			errors.ErrInvalidArgument, from, to, r.Len())
	}

	return Range[T]{base: r, from: from, to: to}, nil
}

// Bounds returns the half-open index range of the window in the underlying sequence.
func (r Range[T]) Bounds() (int, int) {
	return r.from, r.to
}

func (r Range[T]) Len() int {
	return r.to - r.from
}

func (r Range[T]) Get(i int) T { //nolint:ireturn
	if i < 0 || i >= r.Len() {
		panic(fmt.Sprintf("sequence: index %d out of range [0, %d)", i, r.Len()))
	}

	return r.base.Get(r.from + i)
}

// Values copies the window into a new slice.
func (r Range[T]) Values() []T {
	return ToSlice[T](r)
}

type reversed[T any] struct {
	base Reader[T]
}

// Reversed returns a read-only view of r in reverse order. No elements are copied.
func Reversed[T any](r Reader[T]) Reader[T] { //nolint:ireturn
	if rev, ok := r.(reversed[T]); ok {
		return rev.base
	}

	return reversed[T]{base: r}
}

func (r reversed[T]) Len() int {
	return r.base.Len()
}

func (r reversed[T]) Get(i int) T { //nolint:ireturn
	return r.base.Get(r.base.Len() - 1 - i)
}

type concatenated[T any] struct {
	parts []Reader[T]
	// ends[k] is the exclusive end offset of parts[k] in the combined view.
	ends []int
}

// Concat returns a read-only view of the readers placed end to end. Part
// lengths are captured when the view is built; changing the length of a part
// afterwards makes the view inconsistent.
func Concat[T any](readers ...Reader[T]) Reader[T] { //nolint:ireturn
	parts := make([]Reader[T], 0, len(readers))
	ends := make([]int, 0, len(readers))
	total := 0

	for _, r := range readers {
		if r.Len() == 0 {
			continue
		}

		total += r.Len()
		parts = append(parts, r)
		ends = append(ends, total)
	}

	if len(parts) == 1 {
		return parts[0]
	}

	return concatenated[T]{parts: parts, ends: ends}
}

func (c concatenated[T]) Len() int {
	if len(c.ends) == 0 {
		return 0
	}

	return c.ends[len(c.ends)-1]
}

func (c concatenated[T]) Get(i int) T { //nolint:ireturn
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("sequence: index %d out of range [0, %d)", i, c.Len()))
	}

	part := sort.SearchInts(c.ends, i+1)
	start := 0

	if part > 0 {
		start = c.ends[part-1]
	}

	return c.parts[part].Get(i - start)
}
