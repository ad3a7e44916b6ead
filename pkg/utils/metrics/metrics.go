// Package metrics exposes Prometheus metrics of the inbound HTTP API and the upstream
// search API. A nil *Recorder is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reposcore"

type Recorder struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	upstreamRequests *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
}

func New() *Recorder {
	x := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of inbound HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of inbound HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Number of repository search requests sent to the upstream API",
		}, []string{"result"}),
		upstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of upstream repository search requests",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	x.registry.MustRegister(
		x.httpRequests,
		x.httpDuration,
		x.upstreamRequests,
		x.upstreamDuration,
	)

	return x
}

// Handler serves the metrics in Prometheus exposition format
func (x *Recorder) Handler() http.Handler {
	if x == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(x.registry, promhttp.HandlerOpts{})
}

func (x *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if x == nil {
		return
	}
	x.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	x.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (x *Recorder) ObserveUpstream(err error, elapsed time.Duration) {
	if x == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	x.upstreamRequests.WithLabelValues(result).Inc()
	x.upstreamDuration.Observe(elapsed.Seconds())
}
