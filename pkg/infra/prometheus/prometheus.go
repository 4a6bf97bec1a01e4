package prometheus

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

const (
	OutcomeInjected      = "injected"
	OutcomeSkipped       = "skipped"
	OutcomeDisabled      = "disabled"
	OutcomeNoHead        = "no_head"
	OutcomeDecodeError   = "decode_error"
	OutcomeComposeError  = "compose_error"
	OutcomeInternalError = "internal_error"
)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	InjectionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontendscanner_injections_total",
			Help: "Responses seen by the scanner listener, by outcome",
		},
		[]string{"outcome"},
	)

	InjectionLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "frontendscanner_injection_latency_ms",
			Help:    "Time spent rewriting an eligible response in milliseconds",
			Buckets: latencyBuckets,
		},
	)

	FindingsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontendscanner_findings_total",
			Help: "Callbacks received from injected scripts, by result",
		},
		[]string{"result"},
	)

	ProxyRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontendscanner_proxy_requests_total",
			Help: "Requests forwarded through the proxy",
		},
		[]string{"method", "status"},
	)

	UpstreamLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "frontendscanner_upstream_latency_ms",
			Help:    "Upstream latency in milliseconds",
			Buckets: latencyBuckets,
		},
	)
)

var initOnce sync.Once

// Initialize registers the process collector and makes the custom registry the
// default gatherer so the metrics endpoint only exposes scanner metrics.
func Initialize() {
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func Registry() *prometheus.Registry {
	return registry
}

// SinceMillis returns the time elapsed since start in fractional milliseconds.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
