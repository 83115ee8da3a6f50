package run_sweep

import (
	"net/http"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers"
)

type Handler struct {
	useCase ExpandScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ExpandScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SweepResponse HTTP response model
type SweepResponse struct {
	PatternsProcessed int `json:"patternsProcessed"`
	SlotsCreated      int `json:"slotsCreated"`
}

// Handle POST /api/v1/admin/schedule/sweep
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Sweep(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/schedule/sweep - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/schedule/sweep - Done: patterns=%d, slots created=%d",
		result.PatternsProcessed, result.SlotsCreated)
	handlers.RespondJSON(w, http.StatusOK, SweepResponse{
		PatternsProcessed: result.PatternsProcessed,
		SlotsCreated:      result.SlotsCreated,
	})
}
