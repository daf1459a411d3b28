package grid

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/calendar"
)

// AgendaFetcher источник броней для календарного диапазона
// (кэширующая обёртка над FleetService)
type AgendaFetcher interface {
	Agenda(ctx context.Context, r domain.TimeRange, filter domain.EventFilter) ([]*domain.Booking, error)
}

// LookupProvider источник справочников для заголовков и подписей форм
type LookupProvider interface {
	CalendarLookups() calendar.Lookups
	ResolveLabel(kind domain.LookupKind, id string) string
}

// Clock интерфейс для получения текущего времени (для тестирования)
type Clock interface {
	Now() time.Time
}

// Metrics интерфейс метрик календарной сетки
type Metrics interface {
	IncGridFetch(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// realClock реальные часы для production
type realClock struct{}

// Now возвращает текущее время
func (realClock) Now() time.Time {
	return time.Now()
}
