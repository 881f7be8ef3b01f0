package compare

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"
)

var comparatorCalls = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "comparator_calls_total",
	Help: "The total number of comparisons performed by instrumented comparators",
}, []string{"comparator"})

// Instrumented wraps c so that every comparison increments the
// comparator_calls_total counter for the given name.
func Instrumented[T any](name string, c Comparator[T]) Comparator[T] {
	counter := comparatorCalls.WithLabelValues(name)

	return func(a, b T) int {
		counter.Inc()

		return c(a, b)
	}
}

// Counting wraps c with a local comparison counter. Unlike Instrumented the
// count is not exported; it is meant for measuring a single run.
func Counting[T any](c Comparator[T]) (Comparator[T], *atomic.Int64) {
	calls := atomic.NewInt64(0)

	return func(a, b T) int {
		calls.Inc()

		return c(a, b)
	}, calls
}
