package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	logStatements     *prometheus.CounterVec //nolint:gochecknoglobals
	logStatementsOnce sync.Once              //nolint:gochecknoglobals
)

// PrometheusHook counts the log statements of the service per level.
type PrometheusHook struct {
	counter *prometheus.CounterVec
}

// Run implements zerolog.Hook.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.NoLevel || h.counter == nil {
		return
	}

	h.counter.WithLabelValues(level.String()).Inc()
}

// NewPrometheusHook returns the hook behind log_statements_total. The counter is
// registered once per process with Log.ServiceName as its service label; later
// calls share it.
func NewPrometheusHook(serviceName string) PrometheusHook {
	logStatementsOnce.Do(func() {
		logStatements = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "log_statements_total",
				Help:        "Log statements written by the entity settings service, by level.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"level"},
		)
	})

	return PrometheusHook{counter: logStatements}
}
