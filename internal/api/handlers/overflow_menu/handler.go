package overflow_menu

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// OpenOverflowRequest HTTP request model
type OpenOverflowRequest struct {
	Date     string      `json:"date"` // "2026-01-02"
	Anchor   models.Rect `json:"anchor"`
	Viewport models.Size `json:"viewport"`
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

// HandleOpen POST /api/v1/schedule/overflow
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var req OpenOverflowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/overflow - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, h.loc)
	if err != nil {
		h.logger.Warn("POST /schedule/overflow - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	menu, err := h.grid.OpenOverflow(date, req.Anchor, req.Viewport)
	if err != nil {
		h.logger.Error("POST /schedule/overflow - Failed to open menu: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /schedule/overflow - Menu opened: date=%s, items=%d", req.Date, len(menu.Items))
	handlers.RespondJSON(w, http.StatusOK, menu)
}

// HandleClose DELETE /api/v1/schedule/overflow
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	h.grid.CloseOverflow()
	handlers.RespondJSON(w, http.StatusOK, nil)
}
