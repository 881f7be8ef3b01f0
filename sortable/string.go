package sortable

import "github.com/amp-labs/amp-containers/compare"

// String orders strings bytewise. For file names and similar human-facing
// text see NaturalString.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString orders strings with embedded numbers compared numerically,
// so "v2" sorts before "v10".
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	return compare.NaturalStrings(string(s), string(other)) < 0
}
