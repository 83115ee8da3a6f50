package duplicate_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers"
	slotsService "github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidTargetDate  = "некорректная целевая дата, ожидается YYYY-MM-DD"
	msgSlotNotFound       = "слот не найден"
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

// Handle POST /api/v1/admin/slots/{slotId}/duplicate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req models.DuplicateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots/%d/duplicate - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Duplicate(r.Context(), slotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("POST /admin/slots/%d/duplicate - Not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots/%d/duplicate - Invalid target date: %s", slotID, req.TargetDate)
			handlers.RespondBadRequest(w, msgInvalidTargetDate)

		case errors.Is(err, slotsService.ErrDuplicateSlot):
			h.logger.Warn("POST /admin/slots/%d/duplicate - Target slot already exists", slotID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		default:
			h.logger.Error("POST /admin/slots/%d/duplicate - Failed: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots/%d/duplicate - Created slot id=%d", slotID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
