package get_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// AgendaFetcher интерфейс выборки броней за период
type AgendaFetcher interface {
	Agenda(ctx context.Context, rng domain.TimeRange, filter domain.EventFilter) ([]*domain.Booking, error)
}

// BayProvider интерфейс справочника боксов
type BayProvider interface {
	Bays() []*domain.Bay
}

// Clock интерфейс текущего времени
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
