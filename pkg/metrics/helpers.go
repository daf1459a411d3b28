package metrics

import (
	"strconv"
	"time"
)

// IncHTTPRequest учитывает завершённый HTTP запрос
func (m *Metrics) IncHTTPRequest(method, path string, status int) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// ObserveHTTPDuration учитывает длительность HTTP запроса
func (m *Metrics) ObserveHTTPDuration(method, path string, d time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// IncPortRequest учитывает запрос к data port
func (m *Metrics) IncPortRequest(operation, result string) {
	m.PortRequestsTotal.WithLabelValues(operation, result).Inc()
}

// ObservePortDuration учитывает длительность запроса к data port
func (m *Metrics) ObservePortDuration(operation string, d time.Duration) {
	m.PortRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncCacheHit учитывает попадание в кэш запросов
func (m *Metrics) IncCacheHit(kind string) {
	m.CacheHitsTotal.WithLabelValues(kind).Inc()
}

// IncCacheMiss учитывает промах кэша запросов
func (m *Metrics) IncCacheMiss(kind string) {
	m.CacheMissesTotal.WithLabelValues(kind).Inc()
}

// IncCacheInvalidation учитывает инвалидацию кэша по префиксу тега
func (m *Metrics) IncCacheInvalidation(prefix string) {
	m.CacheInvalidationsTotal.WithLabelValues(prefix).Inc()
}

// IncPushMessage учитывает сообщение realtime-канала
func (m *Metrics) IncPushMessage(outcome string) {
	m.PushMessagesTotal.WithLabelValues(outcome).Inc()
}

// IncPushReconnect учитывает переподключение realtime-канала
func (m *Metrics) IncPushReconnect() {
	m.PushReconnectsTotal.Inc()
}

// IncGridFetch учитывает загрузку диапазона календарной сеткой
func (m *Metrics) IncGridFetch(result string) {
	m.GridFetchesTotal.WithLabelValues(result).Inc()
}
