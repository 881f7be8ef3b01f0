package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	return Config{
		Order:             OrderLexical,
		Hash:              HashXxh3,
		Normalize:         true,
		ChunkSize:         2,
		ParallelThreshold: 4,
	}
}

func runOp(t *testing.T, cfg Config, op string, inputs ...[]string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	ctx := logger.WithLogger(t.Context(), slogt.New(t))
	err := Run(ctx, cfg, op, inputs, &out)

	return out.String(), err
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func TestRunOperations(t *testing.T) {
	t.Parallel()

	natural := defaultConfig()
	natural.Order = OrderNatural

	numeric := defaultConfig()
	numeric.Order = OrderNumeric

	reversed := defaultConfig()
	reversed.Reverse = true

	mergeEqual := defaultConfig()
	mergeEqual.MergeEqual = true

	xxhash := defaultConfig()
	xxhash.Hash = HashXxHash64

	tests := []struct {
		name   string
		cfg    Config
		op     string
		inputs [][]string
		want   string
	}{
		{
			name:   "sort across workers",
			cfg:    defaultConfig(),
			op:     OpSort,
			inputs: [][]string{{"f", "c", "a", "e"}, {"d", "b", "g"}},
			want:   lines("a", "b", "c", "d", "e", "f", "g"),
		},
		{
			name:   "natural sort",
			cfg:    natural,
			op:     OpSort,
			inputs: [][]string{{"file10", "file2", "file1"}},
			want:   lines("file1", "file2", "file10"),
		},
		{
			name:   "numeric sort",
			cfg:    numeric,
			op:     OpSort,
			inputs: [][]string{{"10", "-3", "2"}},
			want:   lines("-3", "2", "10"),
		},
		{
			name:   "reverse sort",
			cfg:    reversed,
			op:     OpSort,
			inputs: [][]string{{"a", "c", "b"}},
			want:   lines("c", "b", "a"),
		},
		{
			name:   "merge keeps ties",
			cfg:    defaultConfig(),
			op:     OpMerge,
			inputs: [][]string{{"a", "b", "b"}, {"b", "c"}},
			want:   lines("a", "b", "b", "b", "c"),
		},
		{
			name:   "merge collapses ties",
			cfg:    mergeEqual,
			op:     OpMerge,
			inputs: [][]string{{"a", "c"}, {"b", "c"}},
			want:   lines("a", "b", "c"),
		},
		{
			name:   "dedup",
			cfg:    defaultConfig(),
			op:     OpDedup,
			inputs: [][]string{{"a", "a", "b"}, {"b", "c"}},
			want:   lines("a", "b", "c"),
		},
		{
			name:   "chunk",
			cfg:    defaultConfig(),
			op:     OpChunk,
			inputs: [][]string{{"a", "b", "c"}, {"d", "e"}},
			want:   "a\nb\n\nc\nd\n\ne\n",
		},
		{
			name:   "reverse",
			cfg:    defaultConfig(),
			op:     OpReverse,
			inputs: [][]string{{"a", "b"}, {"c"}},
			want:   lines("c", "b", "a"),
		},
		{
			name:   "unique",
			cfg:    defaultConfig(),
			op:     OpUnique,
			inputs: [][]string{{"b", "a", "b"}, {"c", "a"}},
			want:   lines("b", "a", "c"),
		},
		{
			name:   "unique with xxhash64",
			cfg:    xxhash,
			op:     OpUnique,
			inputs: [][]string{{"x", "x"}},
			want:   lines("x"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := runOp(t, tt.cfg, tt.op, tt.inputs...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunEmptyInput(t *testing.T) {
	t.Parallel()

	for _, op := range Operations {
		got, err := runOp(t, defaultConfig(), op, []string{})
		require.NoError(t, err, op)
		assert.Empty(t, got, op)
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	numeric := defaultConfig()
	numeric.Order = OrderNumeric

	_, err := runOp(t, numeric, OpSort, []string{"1", "two"})
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = runOp(t, defaultConfig(), OpMerge, []string{"a", "b"}, []string{"d", "c"})
	require.ErrorIs(t, err, errors.ErrNotSorted)
	assert.Contains(t, err.Error(), "input 2")

	_, err = runOp(t, defaultConfig(), OpDedup, []string{"b", "a"})
	require.ErrorIs(t, err, errors.ErrNotSorted)

	_, err = runOp(t, defaultConfig(), "shuffle", []string{"a"})
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	badHash := defaultConfig()
	badHash.Hash = "md5"

	_, err = runOp(t, badHash, OpUnique, []string{"a"})
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
}
