package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "launchdash"

// Collectors groups every dashboard metric so that tests can register them on
// a private registry.
type Collectors struct {
	callbackInvocations *prometheus.CounterVec
	callbackDuration    *prometheus.HistogramVec
	httpRequests        *prometheus.CounterVec
	datasetRows         prometheus.Gauge
}

func NewCollectors(registerer prometheus.Registerer) *Collectors {
	factory := promauto.With(registerer)

	return &Collectors{
		callbackInvocations: factory.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "callback_invocations_total",
			Help:      "Callback invocations by output and result.",
		}, []string{"output", "result"}),
		callbackDuration: factory.NewHistogramVec(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "callback_duration_seconds",
			Help:      "Time spent computing a figure.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), //nolint:mnd
		}, []string{"output"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		datasetRows: factory.NewGauge(prometheus.GaugeOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Launch records loaded at startup.",
		}),
	}
}

func (c *Collectors) ObserveCallback(output string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	c.callbackInvocations.WithLabelValues(output, result).Inc()
	c.callbackDuration.WithLabelValues(output).Observe(time.Since(started).Seconds())
}

func (c *Collectors) ObserveHTTPRequest(route, method, status string) {
	c.httpRequests.WithLabelValues(route, method, status).Inc()
}

func (c *Collectors) SetDatasetRows(rows int) {
	c.datasetRows.Set(float64(rows))
}
