package envutil

import "context"

type contextKey string

const (
	overridesKey contextKey = "overrides"
	defaultsKey  contextKey = "defaults"
)

// WithEnvOverride makes key read as value for every lookup through ctx,
// ignoring the process environment.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return context.WithValue(ctx, overridesKey, extend(lookupMap(ctx, overridesKey), map[string]string{key: value}))
}

// WithEnvDefaults supplies values for keys the process environment does not
// set. Typically these come from LoadEnvFile.
func WithEnvDefaults(ctx context.Context, values map[string]string) context.Context {
	return context.WithValue(ctx, defaultsKey, extend(lookupMap(ctx, defaultsKey), values))
}

func lookupMap(ctx context.Context, key contextKey) map[string]string {
	if ctx == nil {
		return nil
	}

	m, _ := ctx.Value(key).(map[string]string)

	return m
}

func extend(base, more map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(more))

	for k, v := range base {
		out[k] = v
	}

	for k, v := range more {
		out[k] = v
	}

	return out
}
