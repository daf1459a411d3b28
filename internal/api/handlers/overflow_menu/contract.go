package overflow_menu

import (
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
)

// ScheduleGrid интерфейс календарной сетки
type ScheduleGrid interface {
	OpenOverflow(date time.Time, anchor models.Rect, viewport models.Size) (models.MenuState, error)
	CloseOverflow()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
