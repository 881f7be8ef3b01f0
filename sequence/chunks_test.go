package sequence

import (
	"testing"

	"github.com/amp-labs/amp-containers/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectChunks[T any](t *testing.T, r Reader[T], size int) [][]T {
	t.Helper()

	chunks, err := Chunks(r, size)
	require.NoError(t, err)

	var out [][]T

	for chunk := range chunks {
		out = append(out, chunk.Values())
	}

	return out
}

func TestChunks(t *testing.T) {
	t.Parallel()

	t.Run("last chunk is shorter", func(t *testing.T) {
		t.Parallel()

		letters := Slice[string]{"a", "b", "c", "d", "e", "f", "g"}

		assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}, {"g"}}, collectChunks[string](t, letters, 3))
	})

	t.Run("exact multiple", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, [][]int{{1, 2}, {3, 4}}, collectChunks[int](t, Slice[int]{1, 2, 3, 4}, 2))
	})

	t.Run("chunk larger than input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, [][]int{{1, 2}}, collectChunks[int](t, Slice[int]{1, 2}, 10))
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, collectChunks[int](t, Slice[int]{}, 3))
	})

	t.Run("non-positive size fails immediately", func(t *testing.T) {
		t.Parallel()

		for _, size := range []int{0, -1} {
			chunks, err := Chunks[int](Slice[int]{1}, size)
			require.ErrorIs(t, err, errors.ErrInvalidArgument)
			assert.Nil(t, chunks)
		}
	})
}

func TestChunksCoverInput(t *testing.T) {
	t.Parallel()

	for n := range 25 {
		input := make(Slice[int], n)
		for i := range input {
			input[i] = i
		}

		for size := 1; size <= 7; size++ {
			chunks := collectChunks[int](t, input, size)

			var joined []int

			for i, chunk := range chunks {
				if i < len(chunks)-1 {
					assert.Len(t, chunk, size)
				}

				joined = append(joined, chunk...)
			}

			assert.Len(t, chunks, ChunkCount(n, size))
			assert.Equal(t, []int(input), append([]int{}, joined...), "n=%d size=%d", n, size)
		}
	}
}
