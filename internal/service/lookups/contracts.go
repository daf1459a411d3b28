package lookups

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// FleetClient интерфейс клиента FleetService для справочников
type FleetClient interface {
	ListBays(ctx context.Context) ([]*domain.Bay, error)
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	ListTechnicians(ctx context.Context) ([]*domain.Technician, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
	SearchLookup(ctx context.Context, kind domain.LookupKind, query string) ([]domain.LookupOption, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
