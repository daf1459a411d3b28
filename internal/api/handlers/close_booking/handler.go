package close_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	closeBooking "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/close_booking"
)

const (
	msgInvalidBookingID = "некорректный ID брони"
	msgNotFound         = "бронь не найдена"
	msgWriteFailed      = "не удалось закрыть бронь"
)

type Handler struct {
	useCase CloseBookingUseCase
	logger  Logger
}

func NewHandler(useCase CloseBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, closeBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/close - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, closeBooking.ErrWriteFailed):
			h.logger.Error("PATCH /bookings/{id}/close - Write failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgWriteFailed)

		default:
			h.logger.Error("PATCH /bookings/{id}/close - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/close - Booking closed: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"id":           booking.ID,
		"status":       string(booking.Status),
		"status_label": booking.Status.DisplayLabel(),
	})
}
