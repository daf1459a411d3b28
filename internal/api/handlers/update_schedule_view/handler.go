package update_schedule_view

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownView        = "неизвестное представление календаря"
)

// UpdateViewRequest HTTP request model
type UpdateViewRequest struct {
	View string `json:"view"` // day | week | month | agenda
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

// Handle PUT /api/v1/schedule/view
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateViewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/view - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, ok := domain.ParseViewMode(req.View)
	if !ok {
		h.logger.Warn("PUT /schedule/view - Unknown view: %q", req.View)
		handlers.RespondBadRequest(w, msgUnknownView)
		return
	}

	// Смена представления пересчитывает диапазон и перечитывает его.
	// Ошибка загрузки отражена в снимке, HTTP статус остаётся 200.
	if err := h.grid.SetView(r.Context(), view); err != nil {
		h.logger.Warn("PUT /schedule/view - Range fetch failed: view=%s, error=%v", view, err)
	}

	h.logger.Info("PUT /schedule/view - View changed: view=%s", view)
	handlers.RespondJSON(w, http.StatusOK, h.grid.Snapshot())
}
