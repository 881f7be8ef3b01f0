package compare

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrumented(t *testing.T) {
	t.Parallel()

	const name = "compare_test_instrumented"

	before := testutil.ToFloat64(comparatorCalls.WithLabelValues(name))

	c := Instrumented(name, Natural[int]())
	c(1, 2)
	c(2, 1)
	c(3, 3)

	after := testutil.ToFloat64(comparatorCalls.WithLabelValues(name))

	assert.InDelta(t, 3, after-before, 0.0001)
}

func TestCounting(t *testing.T) {
	t.Parallel()

	c, calls := Counting(Natural[string]())

	assert.Negative(t, c("a", "b"))
	assert.Positive(t, c("b", "a"))
	assert.Equal(t, int64(2), calls.Load())
}
