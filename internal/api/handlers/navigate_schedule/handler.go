package navigate_schedule

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// NavigateRequest HTTP request model
type NavigateRequest struct {
	Date string `json:"date"` // "2026-01-02"
}

type Handler struct {
	grid   ScheduleGrid
	logger Logger
	loc    *time.Location
}

func NewHandler(grid ScheduleGrid, logger Logger, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		grid:   grid,
		logger: logger,
		loc:    loc,
	}
}

// Handle PUT /api/v1/schedule/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reference, err := time.ParseInLocation(domain.DateFormat, req.Date, h.loc)
	if err != nil {
		h.logger.Warn("PUT /schedule/date - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.grid.Navigate(r.Context(), reference); err != nil {
		h.logger.Warn("PUT /schedule/date - Range fetch failed: date=%s, error=%v", req.Date, err)
	}

	h.logger.Info("PUT /schedule/date - Navigated: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusOK, h.grid.Snapshot())
}
