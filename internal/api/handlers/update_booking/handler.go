package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID брони"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные формы"
	msgNotFound           = "бронь не найдена"
	msgWriteFailed        = "не удалось сохранить бронь"
)

type Handler struct {
	useCase UpdateBookingUseCase
	drafts  DraftCloser
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, drafts DraftCloser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		drafts:  drafts,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrWriteFailed):
			h.logger.Error("PUT /bookings/{id} - Write failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgWriteFailed)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.drafts.ClearDraft()

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
