package create_booking

import (
	"time"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	createBooking "github.com/Peguy24/paola-s-glam-studio-sub000/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID      int64  `json:"slotId"`
	ServiceID   int64  `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	PriceCents  int64  `json:"priceCents"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	SlotID      int64  `json:"slotId"`
	ClientID    int64  `json:"clientId"`
	ServiceID   int64  `json:"serviceId"`
	SlotDate    string `json:"slotDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	ServiceName string `json:"serviceName"`
	PriceCents  int64  `json:"priceCents"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) *createBooking.Request {
	return &createBooking.Request{
		ClientID:    clientID,
		SlotID:      r.SlotID,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		PriceCents:  r.PriceCents,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		SlotID:      resp.SlotID,
		ClientID:    resp.ClientID,
		ServiceID:   resp.ServiceID,
		SlotDate:    resp.SlotDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		ServiceName: resp.ServiceName,
		PriceCents:  resp.PriceCents,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
