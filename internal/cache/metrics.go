package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

var (
	fetchCounter *prometheus.CounterVec //nolint:gochecknoglobals
	initMetrics  sync.Once              //nolint:gochecknoglobals
)

// fetches returns the counter of cache reads by tag and result, registering it on first use.
func fetches() *prometheus.CounterVec {
	initMetrics.Do(func() {
		fetchCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "entity_cache_fetch_total",
				Help: "Number of entity cache reads, differentiated by tag and result.",
			},
			[]string{"tag", "result"},
		)
	})

	return fetchCounter
}
