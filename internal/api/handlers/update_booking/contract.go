package update_booking

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	updateBooking "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/update_booking"
)

// UpdateBookingUseCase интерфейс use case сохранения формы редактирования
type UpdateBookingUseCase interface {
	Execute(ctx context.Context, req *updateBooking.Request) (*domain.Booking, error)
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
