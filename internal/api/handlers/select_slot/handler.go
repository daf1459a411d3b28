package select_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSpan        = "конец интервала должен быть позже начала"
)

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

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

// Handle POST /api/v1/schedule/slots/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/slots/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.grid.SelectSlot(req.Start, req.End)
	if err != nil {
		switch {
		case errors.Is(err, grid.ErrInvalidSpan):
			h.logger.Warn("POST /schedule/slots/select - Invalid span: start=%s, end=%s", req.Start, req.End)
			handlers.RespondBadRequest(w, msgInvalidSpan)

		default:
			h.logger.Error("POST /schedule/slots/select - Failed to open draft: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/slots/select - Create draft opened: start=%s", req.Start)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
