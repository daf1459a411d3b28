package diagram

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// FleetClient интерфейс клиента FleetService для снимков занятости
type FleetClient interface {
	BayOccupancy(ctx context.Context) (map[string]domain.OccupancyEntry, error)
}

// BayProvider источник справочника боксов (кэш справочников)
type BayProvider interface {
	Bays() []*domain.Bay
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
