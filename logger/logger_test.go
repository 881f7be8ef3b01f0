package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-containers/envutil"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captured(t *testing.T) (*slog.Logger, func() map[string]any) {
	t.Helper()

	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, nil)), func() map[string]any {
		t.Helper()

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		buf.Reset()

		return line
	}
}

func TestGetCarriesContextValues(t *testing.T) {
	t.Parallel()

	base, last := captured(t)

	ctx := WithLogger(t.Context(), base)
	ctx = WithSubsystem(ctx, "sorting")
	ctx = WithRunId(ctx, "run-1")
	ctx = With(ctx, "op", "merge")
	ctx = With(ctx, "files", 2)

	Get(ctx).Info("merged")

	line := last()
	assert.Equal(t, "merged", line["msg"])
	assert.Equal(t, "sorting", line["subsystem"])
	assert.Equal(t, "run-1", line["run_id"])
	assert.Equal(t, "merge", line["op"])
	assert.InDelta(t, 2, line["files"], 0)
}

func TestWithDoesNotLeakIntoParent(t *testing.T) {
	t.Parallel()

	parent := With(t.Context(), "a", 1)
	child := With(parent, "b", 2)

	assert.Equal(t, []any{"a", 1}, getValues(parent))
	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(child))
	assert.Equal(t, parent, With(parent))
}

func TestMuted(t *testing.T) {
	t.Parallel()

	ctx := WithMuted(WithLogger(t.Context(), slogt.New(t)), true)

	assert.Same(t, nullLogger, Get(ctx))
	assert.False(t, Get(ctx).Enabled(ctx, slog.LevelError))

	unmuted := WithMuted(ctx, false)
	assert.NotSame(t, nullLogger, Get(unmuted))
	Get(unmuted).Debug("visible in test output")
}

func TestGetWithoutContext(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, Get())
	assert.NotNil(t, Get(nil)) //nolint:staticcheck

	_, ok := GetRunId(t.Context())
	assert.False(t, ok)
}

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "debug")

	ConfigureLogging(ctx, "seqtool-test", WithOutput(&buf))

	t.Cleanup(func() {
		ConfigureLoggingWithOptions(Options{Subsystem: "test"})
	})

	Get(ctx).Debug("configured", "error", AnnotateError(errBoom, "index", 1))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "seqtool-test", line["subsystem"])
	assert.Equal(t, "DEBUG", line["level"])
	assert.InDelta(t, 1, line["index"], 0)
	assert.Equal(t, "seqtool-test", GetSubsystem(t.Context()))

	buf.Reset()
	log.Println("legacy")
	assert.Contains(t, buf.String(), "legacy")
}
