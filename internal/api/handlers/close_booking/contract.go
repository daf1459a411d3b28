package close_booking

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// CloseBookingUseCase интерфейс use case закрытия брони
type CloseBookingUseCase interface {
	Execute(ctx context.Context, bookingID string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
