// Package metrics wires decode/compose counters into a Prometheus registry,
// following the registration pattern of blocky's own metrics package.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nodarii/hnsresource/config"
	"github.com/nodarii/hnsresource/evt"
	"github.com/nodarii/hnsresource/hnslog"
)

// nolint
var reg = prometheus.NewRegistry()

// nolint
var enabled bool

var (
	decodedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hnsresource_decoded_total",
		Help: "Number of resource blobs successfully decoded.",
	})
	decodeFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hnsresource_decode_failed_total",
		Help: "Number of resource blobs that failed to decode.",
	})
	composedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hnsresource_composed_total",
		Help: "Number of to_dns invocations that produced a message.",
	})
	cacheHitTotal  = prometheus.NewCounter(prometheus.CounterOpts{Name: "hnsresource_cache_hit_total"})
	cacheMissTotal = prometheus.NewCounter(prometheus.CounterOpts{Name: "hnsresource_cache_miss_total"})
)

func init() {
	RegisterMetric(decodedTotal)
	RegisterMetric(decodeFailedTotal)
	RegisterMetric(composedTotal)
	RegisterMetric(cacheHitTotal)
	RegisterMetric(cacheMissTotal)

	bindEvents()
}

func bindEvents() {
	_ = evt.Bus().Subscribe(evt.ResourceDecoded, func(int) { decodedTotal.Inc() })
	_ = evt.Bus().Subscribe(evt.ResourceDecodeFailed, func(error) { decodeFailedTotal.Inc() })
	_ = evt.Bus().Subscribe(evt.ResourceComposed, func(string, uint16) { composedTotal.Inc() })
	_ = evt.Bus().Subscribe(evt.CacheHit, func(string) { cacheHitTotal.Inc() })
	_ = evt.Bus().Subscribe(evt.CacheMiss, func(string) { cacheMissTotal.Inc() })
}

// RegisterMetric adds a collector to the package-level registry.
func RegisterMetric(c prometheus.Collector) {
	_ = reg.Register(c)
}

// Start exposes the registry over HTTP if metrics are enabled in cfg.
func Start(cfg config.Metrics) {
	enabled = cfg.IsEnabled()

	if enabled {
		cfg.LogConfig(hnslog.PrefixedLog("metrics"))

		reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
		reg.MustRegister(prometheus.NewGoCollector())
		http.Handle(cfg.Path, promhttp.InstrumentMetricHandler(reg,
			promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
}

// IsEnabled reports whether metrics collection is active.
func IsEnabled() bool {
	return enabled
}
