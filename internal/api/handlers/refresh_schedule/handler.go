package refresh_schedule

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

// Handle POST /api/v1/schedule/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.grid.Refresh(r.Context()); err != nil {
		h.logger.Warn("POST /schedule/refresh - Range fetch failed: %v", err)
	}
	handlers.RespondJSON(w, http.StatusOK, h.grid.Snapshot())
}
