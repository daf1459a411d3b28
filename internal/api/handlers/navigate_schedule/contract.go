package navigate_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
)

// ScheduleGrid интерфейс календарной сетки
type ScheduleGrid interface {
	Navigate(ctx context.Context, reference time.Time) error
	Snapshot() models.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
