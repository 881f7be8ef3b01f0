package sequence

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-containers/errors"
)

// Chunks splits r into consecutive windows of exactly size elements, except
// for the last one which may be shorter. The windows are produced lazily and
// share storage with r. An empty r yields no chunks.
//
// A non-positive size is rejected before anything is produced.
func Chunks[T any](r Reader[T], size int) (iter.Seq[Range[T]], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", errors.ErrInvalidArgument, size)
	}

	return func(yield func(Range[T]) bool) {
		n := r.Len()

		for from := 0; from < n; from += size {
			if !yield(Range[T]{base: r, from: from, to: min(n, from+size)}) {
				return
			}
		}
	}, nil
}

// ChunkCount returns how many chunks Chunks would produce for n elements.
func ChunkCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}

	return (n + size - 1) / size
}
