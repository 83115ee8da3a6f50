package cancel_booking

import (
	cancelBooking "github.com/Peguy24/paola-s-glam-studio-sub000/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID         int64   `json:"bookingId"`
	Status            string  `json:"status"`
	HoursNotice       float64 `json:"hoursNotice"`
	RefundPercent     int     `json:"refundPercent"`
	RefundAmountCents int64   `json:"refundAmountCents"`
	RefundStatus      string  `json:"refundStatus"`
	RefundID          *string `json:"refundId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID:         resp.BookingID,
		Status:            resp.Status,
		HoursNotice:       resp.HoursNotice,
		RefundPercent:     resp.RefundPercent,
		RefundAmountCents: resp.RefundAmountCents,
		RefundStatus:      resp.RefundStatus,
		RefundID:          resp.RefundID,
	}
}
