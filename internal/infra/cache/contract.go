package cache

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
}

// Metrics интерфейс метрик кэша
type Metrics interface {
	IncCacheHit(kind string)
	IncCacheMiss(kind string)
	IncCacheInvalidation(prefix string)
}
