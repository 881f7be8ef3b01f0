package sorting

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/sequence"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sizes = []int{0, 1, 2, 3, 6, 7, 8, 9, 10, 11, 39, 40, 41, 42, 100, 257, 1000} //nolint:gochecknoglobals

type shape struct {
	name string
	gen  func(rng *rand.Rand, n int) []int
}

var shapes = []shape{ //nolint:gochecknoglobals
	{"random", func(rng *rand.Rand, n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = rng.IntN(n + 1)
		}

		return out
	}},
	{"sorted", func(_ *rand.Rand, n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}

		return out
	}},
	{"reversed", func(_ *rand.Rand, n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = n - i
		}

		return out
	}},
	{"all equal", func(_ *rand.Rand, n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = 42
		}

		return out
	}},
	{"few distinct", func(rng *rand.Rand, n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = rng.IntN(3)
		}

		return out
	}},
	{"organ pipe", func(_ *rand.Rand, n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = min(i, n-i)
		}

		return out
	}},
}

func TestSortScenario(t *testing.T) {
	t.Parallel()

	s := []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}
	SortSlice(s, compare.Natural[int]())

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, s)
}

func TestSortPermutationAndOrder(t *testing.T) {
	t.Parallel()

	for _, sh := range shapes {
		t.Run(sh.name, func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(1, uint64(len(sh.name)))) //nolint:gosec

			for _, n := range sizes {
				input := sh.gen(rng, n)

				want := slices.Clone(input)
				slices.Sort(want)

				got := slices.Clone(input)
				SortSlice(got, compare.Natural[int]())
				assert.Equal(t, want, got, "Sort, n=%d", n)

				got = slices.Clone(input)
				QuickSort[int](sequence.Slice[int](got), compare.Natural[int]())
				assert.Equal(t, want, got, "QuickSort, n=%d", n)
			}
		})
	}
}

func TestSortComparisonBound(t *testing.T) {
	t.Parallel()

	const n = 2000

	bound := int64(3 * n * math.Ceil(math.Log2(n)))

	for _, sh := range shapes {
		t.Run(sh.name, func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(2, 9)) //nolint:gosec
			input := sh.gen(rng, n)

			cmp, calls := compare.Counting(compare.Natural[int]())
			SortSlice(input, cmp)

			assert.True(t, slices.IsSorted(input))
			assert.LessOrEqual(t, calls.Load(), bound)
		})
	}
}

func TestSortSmallInputs(t *testing.T) {
	t.Parallel()

	t.Run("two elements use one comparison", func(t *testing.T) {
		t.Parallel()

		cmp, calls := compare.Counting(compare.Natural[int]())

		s := []int{2, 1}
		SortSlice(s, cmp)

		assert.Equal(t, []int{1, 2}, s)
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("empty and single are untouched", func(t *testing.T) {
		t.Parallel()

		cmp, calls := compare.Counting(compare.Natural[int]())

		SortSlice([]int{}, cmp)
		SortSlice([]int{7}, cmp)
		SortSlice[int](nil, cmp)

		assert.Zero(t, calls.Load())
	})
}

func TestSortThroughList(t *testing.T) {
	t.Parallel()

	l := sequence.NewList("pear", "Apple", "fig", "banana", "cherry", "date", "kiwi", "lime", "mango", "nectarine", "olive")
	Sort[string](l, compare.By(strings.ToLower, compare.Natural[string]()))

	assert.Equal(t, []string{
		"Apple", "banana", "cherry", "date", "fig", "kiwi", "lime", "mango", "nectarine", "olive", "pear",
	}, l.Values())
}

func TestSortWithReverseComparator(t *testing.T) {
	t.Parallel()

	s := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	SortSlice(s, compare.Reverse(compare.Natural[int]()))

	assert.Equal(t, []int{9, 6, 5, 5, 5, 4, 3, 3, 2, 1, 1}, s)
}

func TestSortOrdered(t *testing.T) {
	t.Parallel()

	words := []string{"b", "c", "a"}
	SortOrdered(words)
	assert.Equal(t, []string{"a", "b", "c"}, words)

	floats := []float64{2.5, -1, 0}
	SortOrdered(floats)
	assert.Equal(t, []float64{-1, 0, 2.5}, floats)
}

func TestSorted(t *testing.T) {
	t.Parallel()

	input := []int{4, 2, 3, 1}

	got := Sorted(slices.Values(input), compare.Natural[int]())
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, []int{4, 2, 3, 1}, input)

	assert.Empty(t, Sorted(slices.Values([]int(nil)), compare.Natural[int]()))
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	cmp := compare.Natural[int]()

	assert.True(t, IsSorted[int](sequence.Slice[int]{}, cmp))
	assert.True(t, IsSorted[int](sequence.Slice[int]{1, 1, 2}, cmp))
	assert.False(t, IsSorted[int](sequence.Slice[int]{1, 3, 2}, cmp))
}

func TestSortRecordsMetrics(t *testing.T) { //nolint:paralleltest
	before := map[string]float64{
		"swap":      testutil.ToFloat64(swapOps),
		"insertion": testutil.ToFloat64(insertionOps),
		"quicksort": testutil.ToFloat64(quickSortOps),
	}
	elementsBefore := testutil.ToFloat64(quickSortElements)

	SortOrdered([]int{2, 1})
	SortOrdered([]int{3, 2, 1})
	SortOrdered(make([]int, 50))
	SortOrdered([]int{1})

	assert.InDelta(t, before["swap"]+1, testutil.ToFloat64(swapOps), 0)
	assert.InDelta(t, before["insertion"]+1, testutil.ToFloat64(insertionOps), 0)
	assert.InDelta(t, before["quicksort"]+1, testutil.ToFloat64(quickSortOps), 0)
	assert.InDelta(t, elementsBefore+50, testutil.ToFloat64(quickSortElements), 0)

	require.NotPanics(t, func() { QuickSort[int](sequence.Slice[int]{2, 1}, compare.Natural[int]()) })
}
