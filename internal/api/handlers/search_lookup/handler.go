package search_lookup

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/lookups"
)

const msgUnknownKind = "неизвестный вид справочника"

// OptionsResponse HTTP response model
type OptionsResponse struct {
	Options []domain.LookupOption `json:"options"`
}

type Handler struct {
	service LookupService
	logger  Logger
}

func NewHandler(service LookupService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lookups/{kind}?query=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kindStr := mux.Vars(r)["kind"]
	kind, ok := domain.ParseLookupKind(kindStr)
	if !ok {
		h.logger.Warn("GET /lookups/{kind} - Unknown kind: %q", kindStr)
		handlers.RespondBadRequest(w, msgUnknownKind)
		return
	}

	query := r.URL.Query().Get("query")
	options, err := h.service.Search(r.Context(), kind, query)
	if err != nil {
		switch {
		case errors.Is(err, lookups.ErrUnknownKind):
			handlers.RespondBadRequest(w, msgUnknownKind)

		default:
			h.logger.Error("GET /lookups/{kind} - Failed: kind=%s, error=%v", kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, OptionsResponse{Options: options})
}
