package push

import "context"

// Invalidator интерфейс инвалидации кэша запросов по префиксу тега
type Invalidator interface {
	Invalidate(prefix string) int
}

// Refresher интерфейс перезагрузки текущего диапазона сетки
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик realtime-канала
type Metrics interface {
	IncPushMessage(outcome string)
	IncPushReconnect()
}
