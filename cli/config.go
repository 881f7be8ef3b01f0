// Package cli implements seqtool, a command line front end for the sorting,
// merging, deduplication and chunking algorithms of this module.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/amp-labs/amp-containers/envutil"
	"github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/xform"
)

const (
	OpSort    = "sort"
	OpMerge   = "merge"
	OpDedup   = "dedup"
	OpChunk   = "chunk"
	OpReverse = "reverse"
	OpUnique  = "unique"
)

// Operations lists the supported operations in the order they are offered.
var Operations = []string{OpSort, OpMerge, OpDedup, OpChunk, OpReverse, OpUnique} //nolint:gochecknoglobals

const (
	OrderLexical = "lexical"
	OrderNatural = "natural"
	OrderNumeric = "numeric"

	HashXxh3     = "xxh3"
	HashXxHash64 = "xxhash64"
)

// Config holds the settings of one seqtool run.
type Config struct {
	Order      string
	Reverse    bool
	MergeEqual bool
	Normalize  bool
	ChunkSize  int
	Hash       string

	// Sorts with more lines than this are split across workers.
	ParallelThreshold int
}

// LoadConfig reads the configuration from the environment. If SEQTOOL_CONFIG
// names a .env, .json or .yaml file its values are used for variables the
// environment leaves unset. The returned context carries those values.
func LoadConfig(ctx context.Context) (context.Context, Config, error) {
	if path, err := envutil.FilePath(ctx, "SEQTOOL_CONFIG").Value(); err == nil {
		values, err := envutil.LoadEnvFile(path)
		if err != nil {
			return ctx, Config{}, fmt.Errorf("loading %s: %w", path, err)
		}

		ctx = envutil.WithEnvDefaults(ctx, values)
	} else if envutil.String(ctx, "SEQTOOL_CONFIG").HasValue() {
		return ctx, Config{}, err
	}

	positive := envutil.Validate(func(n int) error {
		_, err := xform.Positive(n)

		return err
	})

	order := envutil.Map(envutil.Map(envutil.String(ctx, "SEQTOOL_ORDER"), xform.ToLower),
		xform.OneOf(OrderLexical, OrderNatural, OrderNumeric))
	hash := envutil.Map(envutil.Map(envutil.String(ctx, "SEQTOOL_HASH"), xform.ToLower),
		xform.OneOf(HashXxh3, HashXxHash64))

	var (
		cfg  Config
		errs errors.Collection
	)

	cfg.Order = collect(&errs, order.WithDefault(OrderLexical))
	cfg.Hash = collect(&errs, hash.WithDefault(HashXxh3))
	cfg.Reverse = collect(&errs, envutil.Bool(ctx, "SEQTOOL_REVERSE", envutil.Default(false)))
	cfg.MergeEqual = collect(&errs, envutil.Bool(ctx, "SEQTOOL_MERGE_EQUAL", envutil.Default(false)))
	cfg.Normalize = collect(&errs, envutil.Bool(ctx, "SEQTOOL_NORMALIZE", envutil.Default(true)))
	cfg.ChunkSize = collect(&errs, envutil.Int(ctx, "SEQTOOL_CHUNK_SIZE", envutil.Default(100), positive))
	cfg.ParallelThreshold = collect(&errs, envutil.Int(ctx, "SEQTOOL_PARALLEL_THRESHOLD",
		envutil.Default(1<<16), positive))

	if errs.HasError() {
		return ctx, Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidArgument, errs.GetError())
	}

	return ctx, cfg, nil
}

func collect[T any](errs *errors.Collection, rdr envutil.Reader[T]) T { //nolint:ireturn
	v, err := rdr.Value()
	errs.Add(err)

	return v
}

// ValidOperation reports whether op names a supported operation.
func ValidOperation(op string) bool {
	return slices.Contains(Operations, op)
}
