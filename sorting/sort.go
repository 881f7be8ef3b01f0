// Package sorting sorts index-addressable sequences in place with a
// caller-supplied comparator.
//
// Sort works through sequence.Indexed (Get, Set and Len) and never copies the
// input: every reordering is a swap. Tiny inputs take fast paths (a single
// compare-and-swap for two elements, insertion sort below ten), larger inputs
// use a three-way partitioning quicksort that collects elements equal to the
// pivot so duplicate-heavy, sorted and reverse-sorted inputs all stay
// O(n log n).
//
// Neither path is stable. The comparator is trusted: an inconsistent
// comparator yields an incorrectly ordered result without any error.
package sorting

import (
	"cmp"
	"iter"

	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/sequence"
)

// insertionSortThreshold is the length below which Sort uses insertion sort
// instead of quicksort.
const insertionSortThreshold = 10

// Sort orders s in place so that for every i < j, cmp(s[j], s[i]) is not negative.
func Sort[T any](s sequence.Indexed[T], cmp compare.Comparator[T]) {
	size := s.Len()

	switch {
	case size < 2:
		return
	case size == 2:
		if cmp(s.Get(0), s.Get(1)) > 0 {
			sequence.Swap(s, 0, 1)
		}
	case size < insertionSortThreshold:
		insertionSort(s, cmp, 0, size)
	default:
		quickSort(s, cmp, 0, size)
	}

	record(size)
}

// QuickSort runs the three-way quicksort directly, without the small-input
// dispatch done by Sort. Ranges shorter than seven are still finished with
// insertion sort.
func QuickSort[T any](s sequence.Indexed[T], cmp compare.Comparator[T]) {
	quickSort(s, cmp, 0, s.Len())
}

// SortSlice sorts a native slice in place. It is Sort over sequence.Slice.
func SortSlice[T any](s []T, cmp compare.Comparator[T]) {
	Sort[T](sequence.Slice[T](s), cmp)
}

// SortOrdered sorts a slice of an ordered type by its natural order.
func SortOrdered[T cmp.Ordered](s []T) {
	SortSlice(s, compare.Natural[T]())
}

// Sorted collects values into a new slice and sorts it. The source is read
// exactly once and is not modified.
func Sorted[T any](values iter.Seq[T], cmp compare.Comparator[T]) []T {
	var out []T

	for v := range values {
		out = append(out, v)
	}

	SortSlice(out, cmp)

	return out
}

// IsSorted reports whether s is in non-decreasing order under cmp.
func IsSorted[T any](s sequence.Reader[T], cmp compare.Comparator[T]) bool {
	for i := 1; i < s.Len(); i++ {
		if cmp(s.Get(i-1), s.Get(i)) > 0 {
			return false
		}
	}

	return true
}
