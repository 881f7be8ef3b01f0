package sortable

import (
	"github.com/amp-labs/amp-containers/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is the three-way comparison induced by LessThan.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Comparator returns Compare as a compare.Comparator, ready to hand to the
// sorting and sorted packages.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return Compare[T]
}
