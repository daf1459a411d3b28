package get_summary

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/calendar"
)

// UseCase use case сводных счётчиков консоли
type UseCase struct {
	fetcher AgendaFetcher
	bays    BayProvider
	clock   Clock
	logger  Logger
	loc     *time.Location
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fetcher AgendaFetcher, bays BayProvider, clock Clock, logger Logger, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		fetcher: fetcher,
		bays:    bays,
		clock:   clock,
		logger:  logger,
		loc:     loc,
	}
}

// Execute считает открытые брони и брони на сегодня по агендному окну
// (неделя назад, месяц вперёд) и добавляет размер справочника боксов
func (uc *UseCase) Execute(ctx context.Context) (*Summary, error) {
	now := uc.clock.Now().In(uc.loc)

	// 1. Выборка броней за агендное окно
	rng, err := calendar.ComputeRange(now, domain.ViewAgenda, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	bookings, err := uc.fetcher.Agenda(ctx, rng, domain.EventFilter{})
	if err != nil {
		uc.logger.Error("GetSummary: agenda fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	// 2. Подсчёт счётчиков
	dayStart := calendar.StartOfDay(now, uc.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	summary := &Summary{Bays: len(uc.bays.Bays())}
	for _, b := range bookings {
		if b.Status == domain.StatusOpen {
			summary.OpenBookings++
		}
		if !b.Start.Before(dayStart) && b.Start.Before(dayEnd) {
			summary.TodayBookings++
		}
	}

	uc.logger.Info("GetSummary: open=%d, today=%d, bays=%d", summary.OpenBookings, summary.TodayBookings, summary.Bays)
	return summary, nil
}
