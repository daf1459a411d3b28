package update_schedule_view

import (
	"context"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
)

// ScheduleGrid интерфейс календарной сетки
type ScheduleGrid interface {
	SetView(ctx context.Context, view domain.ViewMode) error
	Snapshot() models.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
