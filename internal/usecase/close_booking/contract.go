package close_booking

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// FleetClient интерфейс клиента FleetService
type FleetClient interface {
	CloseBooking(ctx context.Context, id string) (*domain.Booking, error)
}

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
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
