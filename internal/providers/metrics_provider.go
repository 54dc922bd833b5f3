package providers

import (
	"dsatrack/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncCacheInvalidations()
	ObservePersistenceDuration(duration time.Duration)
	SetDocumentsTotal(collection string, count int)
	IncRevisionsRecorded(source string)
	AddSweptProblems(count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	cacheInvalidations  prometheus.Counter
	persistenceDuration prometheus.Histogram
	documentsTotal      *prometheus.GaugeVec
	revisionsRecorded   *prometheus.CounterVec
	sweptProblems       prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncCacheInvalidations() {
	m.cacheInvalidations.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetDocumentsTotal(collection string, count int) {
	m.documentsTotal.WithLabelValues(collection).Set(float64(count))
}

func (m *MetricsProvider) IncRevisionsRecorded(source string) {
	m.revisionsRecorded.WithLabelValues(source).Inc()
}

func (m *MetricsProvider) AddSweptProblems(count int) {
	if count <= 0 {
		return
	}
	m.sweptProblems.Add(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dsatrack_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dsatrack_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dsatrack_cache_hits_total",
			Help: "Total number of cache hits",
		}),
		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dsatrack_cache_misses_total",
			Help: "Total number of cache misses",
		}),
		cacheInvalidations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dsatrack_cache_invalidations_total",
			Help: "Total number of cache entries dropped after writes",
		}),
		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dsatrack_persistence_duration_seconds",
			Help:    "Duration of snapshot writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		documentsTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dsatrack_documents_total",
			Help: "Number of stored documents per collection",
		}, []string{"collection"}),
		revisionsRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dsatrack_revisions_recorded_total",
			Help: "Revisions recorded, by source",
		}, []string{"source"}),
		sweptProblems: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dsatrack_swept_problems_total",
			Help: "Problems whose revision status was advanced by the daily sweep",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncCacheInvalidations()                           {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) SetDocumentsTotal(_ string, _ int)                {}
func (n *noopMetrics) IncRevisionsRecorded(_ string)                    {}
func (n *noopMetrics) AddSweptProblems(_ int)                           {}
