package get_bay_diagram

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/diagram"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/diagram/models"
)

const msgSnapshotUnavailable = "снимок занятости ещё не загружен"

// DiagramResponse HTTP response model
type DiagramResponse struct {
	Lanes       []models.RenderedLane `json:"lanes"`
	RefreshedAt time.Time             `json:"refreshed_at"`
}

type Handler struct {
	service DiagramService
	logger  Logger
}

func NewHandler(service DiagramService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/diagram
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lanes, refreshedAt, err := h.service.Render()
	if err != nil {
		switch {
		case errors.Is(err, diagram.ErrSnapshotUnavailable):
			h.logger.Warn("GET /diagram - Snapshot unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSnapshotUnavailable)

		default:
			h.logger.Error("GET /diagram - Failed to render: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DiagramResponse{
		Lanes:       lanes,
		RefreshedAt: refreshedAt,
	})
}
