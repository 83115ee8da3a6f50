package create_slot

import (
	"errors"
	"net/http"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers"
	slotsService "github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "некорректные параметры слота"
	msgDuplicateSlot      = "слот с такими датой и временем уже существует"
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

// Handle POST /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Invalid slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, slotsService.ErrDuplicateSlot):
			h.logger.Warn("POST /admin/slots - Duplicate slot: %s %s-%s", req.Date, req.StartTime, req.EndTime)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		default:
			h.logger.Error("POST /admin/slots - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
