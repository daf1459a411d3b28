package search_lookup

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// LookupService интерфейс сервиса справочников
type LookupService interface {
	Search(ctx context.Context, kind domain.LookupKind, query string) ([]domain.LookupOption, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
