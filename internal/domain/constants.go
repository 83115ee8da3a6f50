package domain

// Business validation constants
const (
	MinSlotCapacity = 1
	MaxSlotCapacity = 50

	MinRefundPercent = 0
	MaxRefundPercent = 100

	MinHorizonWeeks = 1
	MaxHorizonWeeks = 52
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, учитываемых при подсчёте занятости слота
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// Notification template keys known to the engine
const (
	TemplateBookingCreated       = "booking-created"
	TemplateAppointmentCancelled = "appointment-cancelled"
	TemplateSlotChanged          = "slot-changed"
)
