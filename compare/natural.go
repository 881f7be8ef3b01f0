package compare

import (
	"facette.io/natsort"
	"golang.org/x/text/unicode/norm"
)

// NaturalStrings orders strings so that embedded numbers compare numerically
// ("file2" sorts before "file10").
func NaturalStrings(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}

// Normalized wraps a string comparator so both operands are brought to Unicode
// NFC before comparison. Precomposed and decomposed spellings of the same text
// then compare equal.
func Normalized(c Comparator[string]) Comparator[string] {
	return func(a, b string) int {
		return c(norm.NFC.String(a), norm.NFC.String(b))
	}
}
