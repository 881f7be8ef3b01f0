package sorting

import (
	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/sequence"
)

const (
	// Ranges shorter than this are insertion sorted inside quickSort.
	quickSortSmall = 7

	// Ranges longer than this pick the pivot as a pseudo-median of nine.
	quickSortMedianOfNine = 40
)

// insertionSort sorts s[off:off+n] with adjacent swaps.
func insertionSort[T any](s sequence.Indexed[T], cmp compare.Comparator[T], off, n int) {
	for i := off + 1; i < off+n; i++ {
		for j := i; j > off && cmp(s.Get(j), s.Get(j-1)) < 0; j-- {
			sequence.Swap(s, j, j-1)
		}
	}
}

// quickSort sorts s[off:off+n].
func quickSort[T any](s sequence.Indexed[T], cmp compare.Comparator[T], off, n int) {
	for n >= quickSortSmall {
		pivot := s.Get(choosePivot(s, cmp, off, n))

		// Establish the invariant: v* (<v)* (>v)* v*
		// [off, a) equal, [a, b) less, (c, d] greater, (d, off+n) equal.
		a, b := off, off
		c := off + n - 1
		d := c

		for {
			for b <= c {
				r := cmp(s.Get(b), pivot)
				if r > 0 {
					break
				}

				if r == 0 {
					sequence.Swap(s, a, b)
					a++
				}

				b++
			}

			for c >= b {
				r := cmp(s.Get(c), pivot)
				if r < 0 {
					break
				}

				if r == 0 {
					sequence.Swap(s, c, d)
					d--
				}

				c--
			}

			if b > c {
				break
			}

			sequence.Swap(s, b, c)
			b++
			c--
		}

		// Swap the equal zones back to the middle.
		end := off + n

		k := min(a-off, b-a)
		vecSwap(s, off, b-k, k)

		k = min(d-c, end-d-1)
		vecSwap(s, b, end-k, k)

		less := b - a
		greater := d - c

		// Recurse into the smaller side and loop on the larger one to bound
		// the stack depth at O(log n).
		if less < greater {
			if less > 1 {
				quickSort(s, cmp, off, less)
			}

			off, n = end-greater, greater
		} else {
			if greater > 1 {
				quickSort(s, cmp, end-greater, greater)
			}

			n = less
		}
	}

	if n > 1 {
		insertionSort(s, cmp, off, n)
	}
}

// choosePivot returns the index of the pivot for s[off:off+n]: the middle
// element for the smallest ranges, the median of three for mid-sized ones and
// a pseudo-median of nine samples for large ones.
func choosePivot[T any](s sequence.Indexed[T], cmp compare.Comparator[T], off, n int) int {
	m := off + n/2

	if n > quickSortSmall {
		l := off
		h := off + n - 1

		if n > quickSortMedianOfNine {
			step := n / 8
			l = median3(s, cmp, l, l+step, l+2*step)
			m = median3(s, cmp, m-step, m, m+step)
			h = median3(s, cmp, h-2*step, h-step, h)
		}

		m = median3(s, cmp, l, m, h)
	}

	return m
}

// median3 returns the index of the median of s[a], s[b] and s[c].
func median3[T any](s sequence.Indexed[T], cmp compare.Comparator[T], a, b, c int) int {
	va, vb, vc := s.Get(a), s.Get(b), s.Get(c)

	if cmp(va, vb) < 0 {
		switch {
		case cmp(vb, vc) < 0:
			return b
		case cmp(va, vc) < 0:
			return c
		default:
			return a
		}
	}

	switch {
	case cmp(vc, vb) < 0:
		return b
	case cmp(vc, va) < 0:
		return c
	default:
		return a
	}
}

// vecSwap swaps s[a:a+n] with s[b:b+n].
func vecSwap[T any](s sequence.Indexed[T], a, b, n int) {
	for range n {
		sequence.Swap(s, a, b)
		a++
		b++
	}
}
