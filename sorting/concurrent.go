package sorting

import (
	"context"
	"fmt"
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/sequence"
	"github.com/amp-labs/amp-containers/sorted"
)

const defaultChunkSize = 1 << 14

type concurrentOptions struct {
	chunkSize      int
	maxConcurrency int
}

// ConcurrentOption configures SortConcurrently.
type ConcurrentOption func(*concurrentOptions)

// WithChunkSize sets how many elements each worker sorts on its own.
func WithChunkSize(size int) ConcurrentOption {
	return func(o *concurrentOptions) {
		o.chunkSize = size
	}
}

// WithMaxConcurrency bounds the number of workers. It defaults to GOMAXPROCS.
func WithMaxConcurrency(n int) ConcurrentOption {
	return func(o *concurrentOptions) {
		o.maxConcurrency = n
	}
}

// SortConcurrently sorts s in place by splitting it into chunks, sorting the
// chunks on a worker pool and merging the sorted runs pairwise. Each task owns
// a disjoint part of s or a private buffer, so no locking is involved. Inputs
// no longer than one chunk are sorted on the calling goroutine.
//
// The context is checked between phases. If it is cancelled, the contents of
// s are a permutation of the input in no particular order and ctx.Err() is
// returned. Unlike Sort, the merge phase allocates a buffer the size of s.
func SortConcurrently[T any](
	ctx context.Context,
	s []T,
	cmp compare.Comparator[T],
	opts ...ConcurrentOption,
) error {
	options := concurrentOptions{
		chunkSize:      defaultChunkSize,
		maxConcurrency: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.maxConcurrency <= 0 {
		return fmt.Errorf("%w: max concurrency must be positive, got %d",
			errors.ErrInvalidArgument, options.maxConcurrency)
	}

	chunks, err := sequence.Chunks[T](sequence.Slice[T](s), options.chunkSize)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if len(s) <= options.chunkSize {
		SortSlice(s, cmp)

		return nil
	}

	log := logger.Get(ctx)
	log.Debug("sorting concurrently",
		"elements", len(s),
		"chunks", sequence.ChunkCount(len(s), options.chunkSize),
		"workers", options.maxConcurrency)

	pool := pond.NewPool(options.maxConcurrency, pond.WithContext(ctx))
	defer pool.StopAndWait()

	var runs [][]T

	tasks := make([]pond.Task, 0, sequence.ChunkCount(len(s), options.chunkSize))

	for chunk := range chunks {
		from, to := chunk.Bounds()
		run := s[from:to:to]
		runs = append(runs, run)

		tasks = append(tasks, pool.Submit(func() {
			SortSlice(run, cmp)
		}))
	}

	if err := wait(ctx, tasks); err != nil {
		return err
	}

	concurrentChunks.Add(float64(len(runs)))

	for round := 1; len(runs) > 1; round++ {
		next := make([][]T, (len(runs)+1)/2)
		tasks = tasks[:0]

		for i := 0; i < len(runs); i += 2 {
			if i+1 == len(runs) {
				next[i/2] = runs[i]

				continue
			}

			left, right, slot := runs[i], runs[i+1], i/2

			tasks = append(tasks, pool.Submit(func() {
				next[slot] = sorted.MergeSlices(left, right, cmp, false)
			}))
		}

		if err := wait(ctx, tasks); err != nil {
			return err
		}

		log.Debug("merged sorted runs", "round", round, "runs", len(next))

		runs = next
	}

	copy(s, runs[0])

	return nil
}

func wait(ctx context.Context, tasks []pond.Task) error {
	var errs errors.Collection

	for _, task := range tasks {
		errs.Add(task.Wait())
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return errs.GetError()
}
