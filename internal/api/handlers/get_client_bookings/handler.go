package get_client_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/middleware"
	bookingsService "github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/bookings"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/bookings/models"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgAccessDenied    = "нет доступа к чужой истории бронирований"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/bookings?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authClientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil || clientID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	// Историю бронирований можно смотреть только свою
	if clientID != authClientID {
		h.logger.Warn("GET /clients/%d/bookings - Access denied for client=%d", clientID, authClientID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetClientBookingsRequest{ClientID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetClientBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/%d/bookings - Failed: %v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
