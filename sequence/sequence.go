// Package sequence defines the index-addressable sequence abstractions the
// sorting, merging and cursor packages operate on, together with adapters for
// native slices, a growable list, and non-owning views (ranges, chunks,
// reversed and concatenated sequences).
//
// The algorithms are written once against these small capability interfaces:
//
//   - Reader: length-known, read-only, index-addressable.
//   - Indexed: a Reader that can also overwrite elements in place.
//   - Removable: an Indexed sequence that can also delete elements.
//
// None of the types here are safe for concurrent mutation. Callers own the
// data and must arrange exclusive access while an algorithm is running.
package sequence

import (
	"iter"
)

// Reader is a finite, read-only, index-addressable sequence.
// Get panics when i is outside [0, Len()), as slice indexing does.
type Reader[T any] interface {
	Len() int
	Get(i int) T
}

// Indexed is a Reader whose elements can be overwritten in place.
type Indexed[T any] interface {
	Reader[T]

	Set(i int, value T)
}

// Removable is an Indexed sequence that supports deleting an element,
// shifting the following elements down by one.
type Removable[T any] interface {
	Indexed[T]

	RemoveAt(i int)
}

// Swap exchanges the elements at i and j.
func Swap[T any](s Indexed[T], i, j int) {
	a := s.Get(i)
	s.Set(i, s.Get(j))
	s.Set(j, a)
}

// All iterates the elements of r in index order.
func All[T any](r Reader[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.Len() {
			if !yield(r.Get(i)) {
				return
			}
		}
	}
}

// ToSlice copies the elements of r into a new slice.
func ToSlice[T any](r Reader[T]) []T {
	out := make([]T, r.Len())

	for i := range out {
		out[i] = r.Get(i)
	}

	return out
}

// Slice adapts a native slice to Indexed without copying. Writes through
// Set are visible in the original slice.
type Slice[T any] []T

var _ Indexed[int] = Slice[int](nil)

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Get(i int) T { //nolint:ireturn
	return s[i]
}

func (s Slice[T]) Set(i int, value T) {
	s[i] = value
}

// List is a growable sequence supporting removal. The zero value is an empty
// list ready to use.
type List[T any] struct {
	items []T
}

var _ Removable[int] = (*List[int])(nil)

// NewList returns a list holding a copy of values.
func NewList[T any](values ...T) *List[T] {
	items := make([]T, len(values))
	copy(items, values)

	return &List[T]{items: items}
}

// NewListWithCapacity returns an empty list with room for n elements.
func NewListWithCapacity[T any](n int) *List[T] {
	return &List[T]{items: make([]T, 0, n)}
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) Get(i int) T { //nolint:ireturn
	return l.items[i]
}

func (l *List[T]) Set(i int, value T) {
	l.items[i] = value
}

// Append adds values to the end of the list.
func (l *List[T]) Append(values ...T) {
	l.items = append(l.items, values...)
}

// AppendAll adds every element of r to the end of the list.
func (l *List[T]) AppendAll(r Reader[T]) {
	for i := range r.Len() {
		l.items = append(l.items, r.Get(i))
	}
}

// Insert places value at index i, shifting later elements up.
func (l *List[T]) Insert(i int, value T) {
	var zero T

	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = value
}

// RemoveAt deletes the element at index i.
func (l *List[T]) RemoveAt(i int) {
	var zero T

	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
}

// Values returns a copy of the list contents.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)

	return out
}
