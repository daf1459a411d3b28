package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP API
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Запросы к FleetService (data port)
	PortRequestsTotal   *prometheus.CounterVec
	PortRequestDuration *prometheus.HistogramVec

	// Кэш запросов
	CacheHitsTotal          *prometheus.CounterVec
	CacheMissesTotal        *prometheus.CounterVec
	CacheInvalidationsTotal *prometheus.CounterVec

	// Realtime-канал
	PushMessagesTotal   *prometheus.CounterVec
	PushReconnectsTotal prometheus.Counter

	// Календарная сетка
	GridFetchesTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(service string) *Metrics {
	constLabels := prometheus.Labels{"service": service}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		PortRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "fleet_port_requests_total",
			Help:        "Total number of requests to the fleet data port",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		PortRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "fleet_port_request_duration_seconds",
			Help:        "Fleet data port request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		CacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_hits_total",
			Help:        "Total number of query cache hits",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		CacheMissesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_misses_total",
			Help:        "Total number of query cache misses",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		CacheInvalidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_invalidations_total",
			Help:        "Total number of query cache invalidations by tag prefix",
			ConstLabels: constLabels,
		}, []string{"prefix"}),

		PushMessagesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "push_messages_total",
			Help:        "Total number of realtime push messages by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		PushReconnectsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "push_reconnects_total",
			Help:        "Total number of realtime channel reconnects",
			ConstLabels: constLabels,
		}),

		GridFetchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "grid_range_fetches_total",
			Help:        "Total number of schedule grid range fetches by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}
