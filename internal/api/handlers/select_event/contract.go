package select_event

import (
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
)

// ScheduleGrid интерфейс календарной сетки
type ScheduleGrid interface {
	SelectEvent(bookingID string) (models.Draft, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
