package select_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid"
)

const (
	msgInvalidBookingID = "некорректный ID брони"
	msgNotFound         = "бронь не найдена в текущем диапазоне"
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

// Handle POST /api/v1/schedule/events/{bookingId}/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	draft, err := h.grid.SelectEvent(bookingID)
	if err != nil {
		switch {
		case errors.Is(err, grid.ErrEventNotFound):
			h.logger.Warn("POST /schedule/events/{id}/select - Not in range: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /schedule/events/{id}/select - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/events/{id}/select - Edit draft opened: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
