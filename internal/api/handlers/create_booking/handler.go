package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные формы"
	msgWriteFailed        = "не удалось сохранить бронь"
)

type Handler struct {
	useCase CreateBookingUseCase
	drafts  DraftCloser
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, drafts DraftCloser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		drafts:  drafts,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Форма остаётся открытой: черновик не сбрасываем
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrWriteFailed):
			h.logger.Error("POST /bookings - Write failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgWriteFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.drafts.ClearDraft()

	h.logger.Info("POST /bookings - Booking created: booking_id=%s", booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(booking))
}
