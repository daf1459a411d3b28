package reschedule_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	rescheduleBooking "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID брони"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSpan        = "конец интервала должен быть позже начала"
	msgNotFound           = "бронь не найдена"
	msgWriteFailed        = "не удалось перенести бронь"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), &rescheduleBooking.Request{
		BookingID: bookingID,
		Start:     req.Start,
		End:       req.End,
	})
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrInvalidSpan):
			h.logger.Warn("POST /bookings/{id}/reschedule - Invalid span: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgInvalidSpan)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrWriteFailed):
			h.logger.Error("POST /bookings/{id}/reschedule - Write failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgWriteFailed)

		default:
			h.logger.Error("POST /bookings/{id}/reschedule - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reschedule - Booking moved: booking_id=%s, start=%s", bookingID, req.Start)
	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":    booking.ID,
		"start": booking.Start,
		"end":   booking.End,
	})
}
