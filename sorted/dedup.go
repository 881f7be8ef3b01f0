package sorted

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/sequence"
)

// Dedup removes adjacent duplicates (elements comparing equal under cmp) from
// s, which must be sorted by cmp. The first element of every run of equals is
// kept.
//
// If s holds no duplicates, s itself is returned and nothing is allocated.
// Otherwise a new list is built, starting at the first duplicate found.
//
// Errors: errors.ErrMissingElement for a nil element, errors.ErrNotSorted when
// an element is smaller than its predecessor. No partial result is returned.
func Dedup[T any](s sequence.Reader[T], cmp compare.Comparator[T]) (sequence.Reader[T], error) { //nolint:ireturn
	n := s.Len()
	if n == 0 {
		return s, nil
	}

	var result *sequence.List[T]

	prev := s.Get(0)
	if isMissing(prev) {
		return nil, missingElement(0)
	}

	for i := 1; i < n; i++ {
		cur := s.Get(i)
		if isMissing(cur) {
			return nil, missingElement(i)
		}

		c := cmp(prev, cur)
		if c > 0 {
			return nil, notSorted(i, prev, cur)
		}

		if c == 0 {
			if result == nil {
				result = sequence.NewListWithCapacity[T](n - 1)

				for j := range i {
					result.Append(s.Get(j))
				}
			}

			continue
		}

		if result != nil {
			result.Append(cur)
		}

		prev = cur
	}

	if result == nil {
		return s, nil
	}

	return result, nil
}

// DedupSlice is Dedup for native slices. The returned slice shares memory
// with s when s has no duplicates.
func DedupSlice[T any](s []T, cmp compare.Comparator[T]) ([]T, error) {
	out, err := Dedup[T](sequence.Slice[T](s), cmp)
	if err != nil {
		return nil, err
	}

	if same, ok := out.(sequence.Slice[T]); ok {
		return same, nil
	}

	return sequence.ToSlice(out), nil
}

// IsSorted reports whether s is in non-decreasing order under cmp.
func IsSorted[T any](s sequence.Reader[T], cmp compare.Comparator[T]) bool {
	return CheckSorted(s, cmp) == nil
}

// CheckSorted returns errors.ErrNotSorted for the first adjacent pair of s
// that is out of order.
func CheckSorted[T any](s sequence.Reader[T], cmp compare.Comparator[T]) error {
	for i := 1; i < s.Len(); i++ {
		prev, cur := s.Get(i-1), s.Get(i)
		if cmp(prev, cur) > 0 {
			return notSorted(i, prev, cur)
		}
	}

	return nil
}

func notSorted[T any](index int, prev, cur T) error {
	return logger.AnnotateError(
		fmt.Errorf("%w: element %d is smaller than element %d", errors.ErrNotSorted, index, index-1),
		"index", index,
		"previous", prev,
		"current", cur,
	)
}

func missingElement(index int) error {
	return fmt.Errorf("%w: element %d is nil", errors.ErrMissingElement, index)
}

// isMissing is true for a nil interface value or a nil pointer, map, slice,
// func or chan.
func isMissing[T any](v T) bool {
	val := any(v)
	if val == nil {
		return true
	}

	rv := reflect.ValueOf(val)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}

	return false
}
