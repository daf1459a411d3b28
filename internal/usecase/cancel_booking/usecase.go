package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cache"
	"github.com/m04kA/SMC-SchedulingConsole/internal/integrations/fleetservice"
)

// UseCase use case отмены брони
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

// Execute отменяет бронь и перечитывает текущий диапазон сетки
func (uc *UseCase) Execute(ctx context.Context, bookingID string) (*domain.Booking, error) {
	uc.logger.Info("CancelBooking: id=%s", bookingID)

	booking, err := uc.client.CancelBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, fleetservice.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: fleet service rejected cancel id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	uc.invalidator.Invalidate(cache.KindAgenda)
	uc.invalidator.Invalidate(cache.KindBookings)
	if err := uc.refresher.Refresh(ctx); err != nil {
		uc.logger.Warn("CancelBooking: post-cancel refresh failed: %v", err)
	}

	uc.logger.Info("CancelBooking: booking canceled, id=%s", booking.ID)
	return booking, nil
}
