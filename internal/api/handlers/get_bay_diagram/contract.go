package get_bay_diagram

import (
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/service/diagram/models"
)

// DiagramService интерфейс сервиса план-схемы цеха
type DiagramService interface {
	Render() ([]models.RenderedLane, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
