package get_summary

import (
	"context"

	getSummary "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/get_summary"
)

// GetSummaryUseCase интерфейс use case сводных счётчиков
type GetSummaryUseCase interface {
	Execute(ctx context.Context) (*getSummary.Summary, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
