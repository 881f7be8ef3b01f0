// Package cursor provides single-pass, pull-based cursors and lazy
// combinators over them.
//
// A Cursor is consumed with HasNext and Next. Combinators (Concat, Zip,
// Filter, Map, Backward) drive their sources exactly once, in order, and never
// read more than one element ahead of what HasNext needs to answer. Cursors
// are not safe for concurrent use and cannot be restarted; an Iterable opens
// a fresh cursor each time it is called.
//
// Removal is an optional capability expressed by the Removable interface.
package cursor

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/optional"
)

// Cursor is a single-pass source of elements.
type Cursor[T any] interface {
	// HasNext reports whether Next will yield an element.
	HasNext() bool

	// Next yields the next element, or errors.ErrNoSuchElement once the
	// cursor is exhausted.
	Next() (T, error)
}

// Removable is a cursor that can delete the element most recently returned by
// Next from its source. Remove returns errors.ErrIllegalState when called
// before Next or twice for the same element.
type Removable[T any] interface {
	Cursor[T]

	Remove() error
}

// Iterable opens a new cursor over a source on each call.
type Iterable[T any] func() Cursor[T]

// All adapts a fresh cursor from it to a range-over-func sequence.
func (it Iterable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range All(it()) {
			if !yield(v) {
				return
			}
		}
	}
}

func exhausted[T any]() (T, error) {
	var zero T

	return zero, errors.ErrNoSuchElement
}

func nothingToRemove() error {
	return fmt.Errorf("%w: remove called without a preceding next", errors.ErrIllegalState)
}

// Empty returns a cursor with no elements.
func Empty[T any]() Cursor[T] { //nolint:ireturn
	return FromSlice[T](nil)
}

// All adapts c to a range-over-func sequence. Iteration stops at the end of
// the cursor or at the first error from Next.
func All[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c.HasNext() {
			v, err := c.Next()
			if err != nil {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains c into a slice.
func Collect[T any](c Cursor[T]) ([]T, error) {
	var out []T

	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// Find advances c until an element satisfies pred and returns it. The cursor
// is left positioned just after the match.
func Find[T any](c Cursor[T], pred func(T) bool) optional.Value[T] {
	for v := range All(c) {
		if pred(v) {
			return optional.Some(v)
		}
	}

	return optional.None[T]()
}

// Last drains c and returns its final element.
func Last[T any](c Cursor[T]) optional.Value[T] {
	last := optional.None[T]()

	for v := range All(c) {
		last = optional.Some(v)
	}

	return last
}

// Pull turns a push-style sequence into a cursor. The returned stop function
// releases the sequence and must be called if the cursor is not drained.
func Pull[T any](seq iter.Seq[T]) (Cursor[T], func()) { //nolint:ireturn
	next, stop := iter.Pull(seq)

	return &pulled[T]{next: next}, stop
}

type pulled[T any] struct {
	next     func() (T, bool)
	head     T
	buffered bool
	done     bool
}

func (p *pulled[T]) HasNext() bool {
	if p.buffered {
		return true
	}

	if p.done {
		return false
	}

	v, ok := p.next()
	if !ok {
		p.done = true

		return false
	}

	p.head, p.buffered = v, true

	return true
}

func (p *pulled[T]) Next() (T, error) { //nolint:ireturn
	if !p.HasNext() {
		return exhausted[T]()
	}

	v := p.head

	var zero T

	p.head, p.buffered = zero, false

	return v, nil
}
