package reschedule_booking

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/integrations/fleetservice"
)

// BookingSource источник полных снимков броней текущего диапазона
// (календарная сетка). Backend принимает только whole-record replace,
// поэтому перенос обязан располагать полной копией записи.
type BookingSource interface {
	FindBooking(id string) (*domain.Booking, bool)
}

// FleetClient интерфейс клиента FleetService
type FleetClient interface {
	UpdateBooking(ctx context.Context, id string, input fleetservice.BookingInput) (*domain.Booking, error)
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
