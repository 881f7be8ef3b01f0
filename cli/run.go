package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/cursor"
	"github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/hashing"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/sequence"
	"github.com/amp-labs/amp-containers/sorted"
	"github.com/amp-labs/amp-containers/sorting"
	"github.com/amp-labs/amp-containers/unique"
)

// Comparator builds the line ordering selected by cfg. For numeric order the
// lines are checked up front, so the returned comparator never sees a line
// that does not parse.
func Comparator(cfg Config, inputs [][]string) (compare.Comparator[string], error) {
	var cmp compare.Comparator[string]

	switch cfg.Order {
	case OrderLexical:
		cmp = compare.Natural[string]()
	case OrderNatural:
		cmp = compare.NaturalStrings
	case OrderNumeric:
		for i, lines := range inputs {
			for j, line := range lines {
				if _, err := strconv.ParseInt(line, 10, 64); err != nil {
					return nil, fmt.Errorf("%w: input %d line %d is not an integer: %q",
						errors.ErrInvalidArgument, i+1, j+1, line)
				}
			}
		}

		cmp = compare.By(parseInt, compare.Natural[int64]())
	default:
		return nil, fmt.Errorf("%w: unknown order %q", errors.ErrInvalidArgument, cfg.Order)
	}

	if cfg.Reverse {
		cmp = compare.Reverse(cmp)
	}

	return compare.Instrumented("seqtool_"+cfg.Order, cmp), nil
}

func parseInt(line string) int64 {
	n, _ := strconv.ParseInt(line, 10, 64)

	return n
}

func hashFunc(name string) (hashing.Hash64Func, error) {
	switch name {
	case HashXxh3:
		return hashing.Xxh3, nil
	case HashXxHash64:
		return hashing.XxHash64, nil
	default:
		return nil, fmt.Errorf("%w: unknown hash %q", errors.ErrInvalidArgument, name)
	}
}

func readers(inputs [][]string) []sequence.Reader[string] {
	out := make([]sequence.Reader[string], len(inputs))
	for i, lines := range inputs {
		out[i] = sequence.Slice[string](lines)
	}

	return out
}

// Run applies op to the inputs and writes the result to out, one element per
// line. Chunks are separated by an empty line.
func Run(ctx context.Context, cfg Config, op string, inputs [][]string, out io.Writer) error {
	cmp, err := Comparator(cfg, inputs)
	if err != nil {
		return err
	}

	log := logger.Get(ctx)
	w := bufio.NewWriter(out)

	written, err := run(ctx, cfg, op, inputs, cmp, w)
	if err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return err
	}

	log.Info("done", "op", op, "inputs", len(inputs), "lines", written)

	return nil
}

func run(
	ctx context.Context,
	cfg Config,
	op string,
	inputs [][]string,
	cmp compare.Comparator[string],
	w *bufio.Writer,
) (int, error) {
	switch op {
	case OpSort:
		all := slices.Concat(inputs...)
		if err := sorting.SortConcurrently(ctx, all, cmp, sorting.WithChunkSize(cfg.ParallelThreshold)); err != nil {
			return 0, err
		}

		return writeLines(w, slices.Values(all))
	case OpMerge:
		merged, err := mergeSorted(inputs, cmp, cfg.MergeEqual)
		if err != nil {
			return 0, err
		}

		return writeLines(w, slices.Values(merged))
	case OpDedup:
		merged, err := mergeSorted(inputs, cmp, false)
		if err != nil {
			return 0, err
		}

		deduped, err := sorted.Dedup[string](sequence.Slice[string](merged), cmp)
		if err != nil {
			return 0, err
		}

		return writeLines(w, sequence.All(deduped))
	case OpChunk:
		return writeChunks(w, sequence.Concat(readers(inputs)...), cfg.ChunkSize)
	case OpReverse:
		return writeLines(w, cursor.All(cursor.Backward(sequence.Concat(readers(inputs)...))))
	case OpUnique:
		return writeUnique(w, inputs, cfg.Hash)
	default:
		return 0, fmt.Errorf("%w: unknown operation %q", errors.ErrInvalidArgument, op)
	}
}

// mergeSorted merges the inputs after checking that each is sorted.
func mergeSorted(inputs [][]string, cmp compare.Comparator[string], mergeEqual bool) ([]string, error) {
	rs := readers(inputs)

	for i, r := range rs {
		if err := sorted.CheckSorted(r, cmp); err != nil {
			return nil, fmt.Errorf("input %d: %w", i+1, err)
		}
	}

	return sorted.MergeAll(cmp, mergeEqual, rs...), nil
}

func writeChunks(w *bufio.Writer, all sequence.Reader[string], size int) (int, error) {
	chunks, err := sequence.Chunks(all, size)
	if err != nil {
		return 0, err
	}

	total := 0

	for chunk := range chunks {
		if total > 0 {
			if err := w.WriteByte('\n'); err != nil {
				return total, err
			}
		}

		n, err := writeLines(w, sequence.All[string](chunk))
		total += n

		if err != nil {
			return total, err
		}
	}

	return total, nil
}

func writeUnique(w *bufio.Writer, inputs [][]string, hashName string) (int, error) {
	hash, err := hashFunc(hashName)
	if err != nil {
		return 0, err
	}

	var values []hashing.HashableString

	for _, lines := range inputs {
		for _, line := range lines {
			values = append(values, hashing.HashableString(line))
		}
	}

	distinct, err := unique.Collectables(values, hash)
	if err != nil {
		return 0, err
	}

	return writeLines(w, func(yield func(string) bool) {
		for _, v := range distinct {
			if !yield(v.String()) {
				return
			}
		}
	})
}

func writeLines(w *bufio.Writer, lines iter.Seq[string]) (int, error) {
	n := 0

	for line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return n, err
		}

		if err := w.WriteByte('\n'); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}
