package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cache"
	"github.com/m04kA/SMC-SchedulingConsole/internal/integrations/fleetservice"
)

// UseCase use case сохранения формы редактирования брони
type UseCase struct {
	client      FleetClient
	invalidator Invalidator
	refresher   Refresher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client FleetClient, invalidator Invalidator, refresher Refresher, logger Logger) *UseCase {
	return &UseCase{
		client:      client,
		invalidator: invalidator,
		refresher:   refresher,
		logger:      logger,
	}
}

// Execute сохраняет бронь целиком (whole-record replace) и перечитывает
// текущий диапазон сетки. При ошибке записи кэш и сетка не трогаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("UpdateBooking: id=%s, vehicle=%s, bay=%s", req.BookingID, req.VehicleID, req.BayID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Отправляем полную запись в FleetService
	booking, err := uc.client.UpdateBooking(ctx, req.BookingID, req.toInput())
	if err != nil {
		if errors.Is(err, fleetservice.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: fleet service rejected update id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	// 3. Гасим кэш и перечитываем текущий диапазон
	uc.invalidator.Invalidate(cache.KindAgenda)
	uc.invalidator.Invalidate(cache.KindBookings)
	if err := uc.refresher.Refresh(ctx); err != nil {
		uc.logger.Warn("UpdateBooking: post-update refresh failed: %v", err)
	}

	uc.logger.Info("UpdateBooking: booking updated, id=%s", booking.ID)
	return booking, nil
}

func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if req.VehicleID == "" {
		return fmt.Errorf("%w: vehicle_id is required", ErrInvalidInput)
	}
	if req.BayID == "" {
		return fmt.Errorf("%w: bay_id is required", ErrInvalidInput)
	}
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}
	if req.End != nil && !req.End.After(req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}
	return nil
}
