package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// RefundStatus represents the outcome of a refund attempt
type RefundStatus string

const (
	RefundNone RefundStatus = "none"
	// RefundPending записывается при отмене до обращения к платежному шлюзу.
	// Зависшее pending после сбоя процесса — сигнал для ручного разбора.
	RefundPending   RefundStatus = "pending"
	RefundSucceeded RefundStatus = "succeeded"
	RefundFailed    RefundStatus = "failed"
)

// Booking represents a client's claim on a slot
type Booking struct {
	ID        int64
	SlotID    int64
	ClientID  int64
	ServiceID int64
	Status    BookingStatus

	PaymentStatus    PaymentStatus
	PaymentReference *string

	// Denormalized data for history
	ServiceName string
	// PriceCents is the service price snapshot at booking time, in cents
	PriceCents int64

	// Refund outcome, set on cancellation
	RefundAmountCents *int64
	RefundStatus      RefundStatus
	RefundID          *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts against slot capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsPaid returns true if money has been collected for the booking
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentPaid
}

// CanBeCancelled returns true if the booking can still be cancelled.
// Completed and cancelled are terminal states.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status transition is allowed:
// pending -> confirmed -> completed, cancelled reachable from pending or confirmed.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		// completed и cancelled — терминальные статусы
		return false
	}
}
