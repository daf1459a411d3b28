package refresh_schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
)

// ScheduleGrid интерфейс календарной сетки
type ScheduleGrid interface {
	Refresh(ctx context.Context) error
	Snapshot() models.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
