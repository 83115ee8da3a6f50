package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers"
	slotsService "github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots"
)

const (
	msgInvalidSlotID     = "некорректный ID слота"
	msgSlotNotFound      = "слот не найден"
	msgHasActiveBookings = "в слоте есть активные бронирования, для удаления требуется параметр force=true"
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

// Handle DELETE /api/v1/admin/slots/{slotId}?force=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	force := r.URL.Query().Get("force") == "true"

	if err := h.service.Delete(r.Context(), slotID, force); err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("DELETE /admin/slots/%d - Not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrHasActiveBookings):
			h.logger.Warn("DELETE /admin/slots/%d - Has active bookings, force required", slotID)
			handlers.RespondError(w, http.StatusConflict, msgHasActiveBookings)

		default:
			h.logger.Error("DELETE /admin/slots/%d - Failed: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/slots/%d - Deleted (force=%t)", slotID, force)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
