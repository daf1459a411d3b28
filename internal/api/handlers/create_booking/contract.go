package create_booking

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	createBooking "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/create_booking"
)

// CreateBookingUseCase интерфейс use case создания брони
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*domain.Booking, error)
}

// DraftCloser закрывает активную форму после успешного сохранения
type DraftCloser interface {
	ClearDraft()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
