package sorted

import (
	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/sequence"
)

// Visitor receives each element of a merge, together with whether it came
// from the first list.
type Visitor[T any] func(element T, fromFirst bool)

// Process walks list1 and list2, both sorted by cmp, and calls visit for each
// element of the merged order.
//
// When the heads of the two lists compare equal and mergeEqualItems is true,
// only the element of list1 is visited and both lists advance. When
// mergeEqualItems is false both are visited, always the element of list1 first.
// Elements of each list keep their relative order.
func Process[T any](
	list1, list2 sequence.Reader[T],
	cmp compare.Comparator[T],
	mergeEqualItems bool,
	visit Visitor[T],
) {
	i1, i2 := 0, 0
	n1, n2 := list1.Len(), list2.Len()

	for i1 < n1 || i2 < n2 {
		switch {
		case i1 >= n1:
			visit(list2.Get(i2), false)
			i2++
		case i2 >= n2:
			visit(list1.Get(i1), true)
			i1++
		default:
			e1, e2 := list1.Get(i1), list2.Get(i2)

			switch c := cmp(e1, e2); {
			case c < 0:
				visit(e1, true)
				i1++
			case c > 0:
				visit(e2, false)
				i2++
			default:
				i1++
				i2++

				visit(e1, true)

				if !mergeEqualItems {
					visit(e2, false)
				}
			}
		}
	}
}

// Merge returns the merged contents of list1 and list2, both sorted by cmp.
// With mergeEqualItems the result holds one element per pair of heads that
// compared equal; without it the result has exactly list1.Len()+list2.Len()
// elements.
func Merge[T any](list1, list2 sequence.Reader[T], cmp compare.Comparator[T], mergeEqualItems bool) []T {
	out := make([]T, 0, list1.Len()+list2.Len())

	Process(list1, list2, cmp, mergeEqualItems, func(element T, _ bool) {
		out = append(out, element)
	})

	return out
}

// MergeSlices is Merge for native slices.
func MergeSlices[T any](list1, list2 []T, cmp compare.Comparator[T], mergeEqualItems bool) []T {
	return Merge[T](sequence.Slice[T](list1), sequence.Slice[T](list2), cmp, mergeEqualItems)
}

// MergeAll merges any number of sorted lists by merging neighbours pairwise
// until one list remains. Ties are resolved in favour of the earlier list, so
// with mergeEqualItems the surviving element of an equal run is the one from
// the leftmost list that held it.
func MergeAll[T any](cmp compare.Comparator[T], mergeEqualItems bool, lists ...sequence.Reader[T]) []T {
	if len(lists) == 0 {
		return nil
	}

	runs := lists

	for len(runs) > 1 {
		next := make([]sequence.Reader[T], 0, (len(runs)+1)/2)

		for i := 0; i < len(runs); i += 2 {
			if i+1 == len(runs) {
				next = append(next, runs[i])

				continue
			}

			next = append(next, sequence.Slice[T](Merge(runs[i], runs[i+1], cmp, mergeEqualItems)))
		}

		runs = next
	}

	return sequence.ToSlice(runs[0])
}
