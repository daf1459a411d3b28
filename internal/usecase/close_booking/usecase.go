package close_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cache"
	"github.com/m04kA/SMC-SchedulingConsole/internal/integrations/fleetservice"
)

// UseCase use case закрытия брони (работа выполнена)
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

// Execute закрывает бронь и перечитывает текущий диапазон сетки
func (uc *UseCase) Execute(ctx context.Context, bookingID string) (*domain.Booking, error) {
	uc.logger.Info("CloseBooking: id=%s", bookingID)

	booking, err := uc.client.CloseBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, fleetservice.ErrBookingNotFound) {
			uc.logger.Warn("CloseBooking: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CloseBooking: fleet service rejected close id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	uc.invalidator.Invalidate(cache.KindAgenda)
	uc.invalidator.Invalidate(cache.KindBookings)
	if err := uc.refresher.Refresh(ctx); err != nil {
		uc.logger.Warn("CloseBooking: post-close refresh failed: %v", err)
	}

	uc.logger.Info("CloseBooking: booking closed, id=%s", booking.ID)
	return booking, nil
}
