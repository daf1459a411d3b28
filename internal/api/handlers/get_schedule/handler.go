package get_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
)

type Handler struct {
	grid   ScheduleGrid
	logger Logger
}

func NewHandler(grid ScheduleGrid, logger Logger) *Handler {
	return &Handler{
		grid:   grid,
		logger: logger,
	}
}

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot := h.grid.Snapshot()
	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
