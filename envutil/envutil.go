// Package envutil reads typed configuration from environment variables.
//
// Lookups go through a context: overrides set with WithEnvOverride win, then
// the process environment, then defaults set with WithEnvDefaults.
package envutil

import (
	"context"
	"log/slog"
	"os"

	"github.com/amp-labs/amp-containers/xform"
)

func lookup(ctx context.Context, key string) (string, bool) {
	if val, ok := lookupMap(ctx, overridesKey)[key]; ok {
		return val, true
	}

	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}

	val, ok := lookupMap(ctx, defaultsKey)[key]

	return val, ok
}

func get(ctx context.Context, key string) Reader[string] {
	val, ok := lookup(ctx, key)

	return Reader[string]{
		key:   key,
		found: ok,
		value: val,
	}
}

func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), xform.Bool), opts)
}

func Int[I xform.Intish](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(get(ctx, key), xform.Int64), xform.CastNumeric[int64, I]), opts)
}

func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), xform.SlogLevel), opts)
}

// FilePath reads a path that must name an existing regular file.
func FilePath(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(ctx, key), xform.PathIsFile), opts)
}
