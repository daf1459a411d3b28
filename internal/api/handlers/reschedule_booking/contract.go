package reschedule_booking

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	rescheduleBooking "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/reschedule_booking"
)

// RescheduleBookingUseCase интерфейс use case переноса брони
type RescheduleBookingUseCase interface {
	Execute(ctx context.Context, req *rescheduleBooking.Request) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
