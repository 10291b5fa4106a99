// Package metrics exposes Prometheus counters for the cache policy, the
// upstream feed and the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "boxscore"

// Recorder owns its registry so several instances can coexist in tests.
// All methods are safe on a nil *Recorder.
type Recorder struct {
	registry *prometheus.Registry

	cacheHits        *prometheus.CounterVec
	cacheRefreshes   *prometheus.CounterVec
	upstreamFailures *prometheus.CounterVec
	primeResults     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	auto := promauto.With(reg)

	return &Recorder{
		registry: reg,
		cacheHits: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Requests served from a cached record inside the freshness window.",
		}, []string{"sport"}),
		cacheRefreshes: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "refreshes_total",
			Help:      "Stale records replaced by a fresh upstream document.",
		}, []string{"sport"}),
		upstreamFailures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "failures_total",
			Help:      "Failed upstream fetches by sport and error kind.",
		}, []string{"sport", "kind"}),
		primeResults: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "primer",
			Name:      "results_total",
			Help:      "Startup priming attempts by sport and outcome.",
		}, []string{"sport", "result"}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status_code"}),
		httpDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

func (r *Recorder) CacheHit(sport string) {
	if r == nil {
		return
	}
	r.cacheHits.WithLabelValues(sport).Inc()
}

func (r *Recorder) CacheRefreshed(sport string) {
	if r == nil {
		return
	}
	r.cacheRefreshes.WithLabelValues(sport).Inc()
}

func (r *Recorder) UpstreamFailed(sport, kind string) {
	if r == nil {
		return
	}
	r.upstreamFailures.WithLabelValues(sport, kind).Inc()
}

func (r *Recorder) Primed(sport string, ok bool) {
	if r == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	r.primeResults.WithLabelValues(sport, result).Inc()
}

func (r *Recorder) ObserveHTTP(route, method string, status int, took time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(took.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
