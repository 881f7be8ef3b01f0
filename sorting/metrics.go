package sorting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sortOperations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_operations_total",
		Help: "The total number of in-place sorts, by the algorithm that handled them",
	}, []string{"algorithm"})

	sortElements = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_elements_total",
		Help: "The total number of elements sorted, by the algorithm that handled them",
	}, []string{"algorithm"})

	concurrentChunks = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_concurrent_chunks_total",
		Help: "The total number of chunks sorted by SortConcurrently",
	})
)

// The label lookups are resolved once so that sorting a two-element slice
// doesn't pay for a hash of the label values.
var (
	swapOps           = sortOperations.WithLabelValues("swap")      //nolint:gochecknoglobals
	swapElements      = sortElements.WithLabelValues("swap")        //nolint:gochecknoglobals
	insertionOps      = sortOperations.WithLabelValues("insertion") //nolint:gochecknoglobals
	insertionElements = sortElements.WithLabelValues("insertion")   //nolint:gochecknoglobals
	quickSortOps      = sortOperations.WithLabelValues("quicksort") //nolint:gochecknoglobals
	quickSortElements = sortElements.WithLabelValues("quicksort")   //nolint:gochecknoglobals
)

func record(size int) {
	switch {
	case size == 2:
		swapOps.Inc()
		swapElements.Add(float64(size))
	case size < insertionSortThreshold:
		insertionOps.Inc()
		insertionElements.Add(float64(size))
	default:
		quickSortOps.Inc()
		quickSortElements.Add(float64(size))
	}
}
