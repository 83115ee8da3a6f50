package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers"
	slotsService "github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots/models"
)

const (
	msgInvalidPeriod = "некорректный период, ожидаются параметры from и to в формате YYYY-MM-DD"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?from=2025-10-01&to=2025-10-07&onlyAvailable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListSlotsRequest{
		From:          query.Get("from"),
		To:            query.Get("to"),
		OnlyAvailable: query.Get("onlyAvailable") == "true",
	}

	if req.From == "" || req.To == "" {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid period: from=%s, to=%s", req.From, req.To)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /slots - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
