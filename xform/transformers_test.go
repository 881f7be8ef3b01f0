package xform

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringTransformers(t *testing.T) {
	t.Parallel()

	s, err := TrimString("  natural \n")
	require.NoError(t, err)
	assert.Equal(t, "natural", s)

	s, err = ToLower("NUMERIC")
	require.NoError(t, err)
	assert.Equal(t, "numeric", s)
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	pick := OneOf("lexical", "natural")

	v, err := pick("natural")
	require.NoError(t, err)
	assert.Equal(t, "natural", v)

	_, err = pick("random")
	require.ErrorIs(t, err, ErrInvalidChoice)
}

func TestNumbers(t *testing.T) {
	t.Parallel()

	n, err := Int64("-42")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), n)

	_, err = Int64("4x")
	require.Error(t, err)

	b, err := Bool("true")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = Positive(0)
	require.ErrorIs(t, err, ErrNonPositive)

	p, err := Positive(3)
	require.NoError(t, err)
	assert.Equal(t, 3, p)

	i, err := CastNumeric[int64, int](7)
	require.NoError(t, err)
	assert.Equal(t, 7, i)
}

func TestPathIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("a\n"), 0o600))

	got, err := PathIsFile(file)
	require.NoError(t, err)
	assert.Equal(t, file, got)

	_, err = PathIsFile(dir)
	require.ErrorIs(t, err, ErrNotAFile)

	_, err = PathIsFile(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := SlogLevel(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := SlogLevel("DEBUG")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}
