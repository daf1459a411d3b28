package fleetservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик запросов к data port
type Metrics interface {
	IncPortRequest(operation, result string)
	ObservePortDuration(operation string, d time.Duration)
}
