package get_summary

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	getSummary "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/get_summary"
)

const msgFetchFailed = "не удалось собрать сводку"

// SummaryResponse HTTP response model
type SummaryResponse struct {
	OpenBookings  int `json:"open_bookings"`
	TodayBookings int `json:"today_bookings"`
	Bays          int `json:"bays"`
}

type Handler struct {
	useCase GetSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summary, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /summary - Failed: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgFetchFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCase(summary))
}

// FromUseCase конвертирует сводку use case в HTTP response
func FromUseCase(s *getSummary.Summary) *SummaryResponse {
	return &SummaryResponse{
		OpenBookings:  s.OpenBookings,
		TodayBookings: s.TodayBookings,
		Bays:          s.Bays,
	}
}
