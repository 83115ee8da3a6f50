package get_policy_preview

import (
	"net/http"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/policies/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Preview(r.Context())
	if err != nil {
		h.logger.Error("GET /policies/preview - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
