package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cache"
	"github.com/m04kA/SMC-SchedulingConsole/internal/integrations/fleetservice"
)

// UseCase use case переноса брони перетаскиванием или растягиванием
type UseCase struct {
	source      BookingSource
	client      FleetClient
	invalidator Invalidator
	refresher   Refresher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source BookingSource, client FleetClient, invalidator Invalidator, refresher Refresher, logger Logger) *UseCase {
	return &UseCase{
		source:      source,
		client:      client,
		invalidator: invalidator,
		refresher:   refresher,
		logger:      logger,
	}
}

// Execute переносит бронь на новый интервал. Запись отправляется целиком:
// берём полный снимок из текущего диапазона сетки и заменяем в нём только
// start и end. Событие не двигается локально, новое положение приходит
// только с перечитанным диапазоном.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("RescheduleBooking: id=%s, start=%s", req.BookingID, req.Start)

	// 1. Валидация нового интервала
	if req.End != nil && !req.End.After(req.Start) {
		uc.logger.Warn("RescheduleBooking: invalid span for id=%s", req.BookingID)
		return nil, ErrInvalidSpan
	}

	// 2. Полный снимок записи из текущего диапазона
	current, ok := uc.source.FindBooking(req.BookingID)
	if !ok {
		uc.logger.Warn("RescheduleBooking: booking id=%s not in current range", req.BookingID)
		return nil, ErrBookingNotFound
	}

	// 3. Заменяем только интервал, остальные поля переносим как есть
	input := fleetservice.InputFromBooking(current)
	input.Start = req.Start
	input.End = req.End

	booking, err := uc.client.UpdateBooking(ctx, req.BookingID, input)
	if err != nil {
		if errors.Is(err, fleetservice.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: fleet service rejected move id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	// 4. Гасим кэш и перечитываем текущий диапазон один раз
	uc.invalidator.Invalidate(cache.KindAgenda)
	uc.invalidator.Invalidate(cache.KindBookings)
	if err := uc.refresher.Refresh(ctx); err != nil {
		uc.logger.Warn("RescheduleBooking: post-move refresh failed: %v", err)
	}

	uc.logger.Info("RescheduleBooking: booking moved, id=%s", booking.ID)
	return booking, nil
}
