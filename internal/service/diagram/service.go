package diagram

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/diagram/models"
)

// Service план-схема занятости боксов. Держит последний успешный снимок
// занятости; Refresh зовётся по расписанию из main (robfig/cron).
// Раскладку строит чистая функция Layout, поэтому inline и fullscreen
// представления гарантированно совпадают.
type Service struct {
	client FleetClient
	bays   BayProvider
	plan   domain.LanePlan
	log    Logger

	mu          sync.RWMutex
	occupancy   map[string]domain.OccupancyEntry
	refreshedAt time.Time
	lastErr     error
}

// NewService создает новый сервис план-схемы
func NewService(client FleetClient, bays BayProvider, plan domain.LanePlan, log Logger) *Service {
	return &Service{
		client:    client,
		bays:      bays,
		plan:      plan,
		log:       log,
		occupancy: make(map[string]domain.OccupancyEntry),
	}
}

// Refresh загружает свежий снимок занятости из FleetService.
// При ошибке предыдущий снимок сохраняется: диаграмма продолжает
// показывать последнее известное состояние.
func (s *Service) Refresh(ctx context.Context) error {
	occupancy, err := s.client.BayOccupancy(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.log.Error("diagram: failed to refresh occupancy snapshot: %v", err)
		return fmt.Errorf("%w: %v", ErrSnapshotUnavailable, err)
	}

	s.mu.Lock()
	s.occupancy = occupancy
	s.refreshedAt = time.Now()
	s.lastErr = nil
	s.mu.Unlock()

	s.log.Info("diagram: occupancy snapshot refreshed, %d occupied bays", len(occupancy))
	return nil
}

// Render строит текущую раскладку план-схемы.
// Возвращает момент снимка занятости, по которому она построена.
func (s *Service) Render() ([]models.RenderedLane, time.Time, error) {
	s.mu.RLock()
	occupancy := s.occupancy
	refreshedAt := s.refreshedAt
	lastErr := s.lastErr
	s.mu.RUnlock()

	if refreshedAt.IsZero() && lastErr != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %v", ErrSnapshotUnavailable, lastErr)
	}

	return Layout(s.bays.Bays(), occupancy, s.plan), refreshedAt, nil
}
