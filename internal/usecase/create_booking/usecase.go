package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cache"
)

// UseCase use case создания брони из формы выбора слота
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

// Execute создает бронь и перечитывает текущий диапазон сетки.
// При ошибке записи кэш не трогается и сетка не перечитывается:
// форма остаётся открытой с введёнными данными.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: vehicle=%s, bay=%s, start=%s", req.VehicleID, req.BayID, req.Start)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаём запись в FleetService
	booking, err := uc.client.CreateBooking(ctx, req.toInput())
	if err != nil {
		uc.logger.Error("CreateBooking: fleet service rejected create: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	// 3. Гасим кэшированные выборки, которых коснулась новая запись
	uc.invalidator.Invalidate(cache.KindAgenda)
	uc.invalidator.Invalidate(cache.KindBookings)

	// 4. Одна перезагрузка текущего диапазона: представление отражает
	// только подтверждённое сервером состояние
	if err := uc.refresher.Refresh(ctx); err != nil {
		uc.logger.Warn("CreateBooking: post-create refresh failed: %v", err)
	}

	uc.logger.Info("CreateBooking: booking created, id=%s", booking.ID)
	return booking, nil
}
