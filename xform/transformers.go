// Package xform holds small value transformers of the shape
// func(A) (B, error). They are chained by envutil.Map to parse and validate
// configuration values.
package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrNonPositive     = errors.New("value must be positive")
	ErrNotAFile        = errors.New("not a file")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// TrimString removes leading and trailing whitespace.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// OneOf returns a transformer that accepts only the given choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrInvalidChoice, value, choices)
	}
}

// Bool parses a string with strconv.ParseBool.
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Int64 parses a base-10 int64.
func Int64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// Positive rejects zero and negative values with ErrNonPositive.
func Positive[A Numeric](value A) (A, error) { //nolint:ireturn
	if value <= 0 {
		return value, ErrNonPositive
	}

	return value, nil
}

// CastNumeric converts between numeric types. It may truncate.
func CastNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

// PathIsFile checks that value names an existing regular file.
func PathIsFile(value string) (string, error) {
	info, err := os.Stat(value)
	if err != nil {
		return value, err
	}

	if info.IsDir() {
		return value, fmt.Errorf("%w: %s", ErrNotAFile, value)
	}

	return value, nil
}

// SlogLevel parses "debug", "info", "warn" or "error".
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
