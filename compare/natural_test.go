package compare

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalStrings(t *testing.T) {
	t.Parallel()

	assert.Negative(t, NaturalStrings("file2", "file10"))
	assert.Positive(t, NaturalStrings("file10", "file2"))
	assert.Zero(t, NaturalStrings("file7", "file7"))

	names := []string{"img12.png", "img10.png", "img2.png", "img1.png"}
	slices.SortFunc(names, NaturalStrings)

	assert.Equal(t, []string{"img1.png", "img2.png", "img10.png", "img12.png"}, names)
}

func TestNormalized(t *testing.T) {
	t.Parallel()

	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	assert.NotZero(t, Natural[string]()(composed, decomposed))
	assert.Zero(t, Normalized(Natural[string]())(composed, decomposed))
}
