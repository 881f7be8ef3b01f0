//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader carries the outcome of looking up one setting: its parsed value, or
// the reason there is none. Readers are values; Map and the options derive
// new ones.
type Reader[A any] struct {
	key   string
	found bool
	err   error
	value A
}

// Value returns the setting. A parse or validation failure is wrapped in
// ErrBadEnvVar, an unset key without a default in ErrEnvVarMissing.
func (r Reader[A]) Value() (A, error) {
	switch {
	case r.err != nil:
		return r.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, r.key, r.err)
	case !r.found:
		return r.value, fmt.Errorf("%w %s", ErrEnvVarMissing, r.key)
	default:
		return r.value, nil
	}
}

// ValueOrFatal is Value for settings the process cannot start without.
func (r Reader[A]) ValueOrFatal() A {
	v, err := r.Value()
	if err != nil {
		slog.Error("invalid configuration", "key", r.key, "error", err)
		os.Exit(1)
	}

	return v
}

// HasValue reports whether the key is set and parsed cleanly.
func (r Reader[A]) HasValue() bool {
	return r.found && r.err == nil
}

// WithDefault uses v for an unset key. A set but invalid key keeps its error.
func (r Reader[A]) WithDefault(v A) Reader[A] {
	if r.found {
		return r
	}

	r.found, r.value = true, v

	return r
}

// Map applies f to a parsed value. Unset and failed readers carry over
// without calling f.
func Map[A any, B any](r Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{key: r.key, found: r.found, err: r.err}
	if !r.found || r.err != nil {
		return out
	}

	out.value, out.err = f(r.value)

	return out
}
