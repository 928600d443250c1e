package search

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	dispatchedLookups = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "heroes",
		Subsystem: "search",
		Name:      "lookups_dispatched_total",
		Help:      "lookups handed to the search collaborator",
	})
	suppressedDuplicates = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "heroes",
		Subsystem: "search",
		Name:      "duplicates_suppressed_total",
		Help:      "terms dropped because they repeat the lookup in flight",
	})
	staleDiscarded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "heroes",
		Subsystem: "search",
		Name:      "stale_discarded_total",
		Help:      "lookup completions dropped after being superseded",
	})
	failedLookups = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "heroes",
		Subsystem: "search",
		Name:      "lookups_failed_total",
		Help:      "lookups that failed and were replaced by an empty batch",
	})
	emptyShortCircuits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "heroes",
		Subsystem: "search",
		Name:      "empty_terms_total",
		Help:      "empty terms answered without a lookup",
	})
)

// Collectors returns the coordinator metrics for registration
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		dispatchedLookups,
		suppressedDuplicates,
		staleDiscarded,
		failedLookups,
		emptyShortCircuits,
	}
}
