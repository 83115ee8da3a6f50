package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
)

func TestBookingCanTransitionTo(t *testing.T) {
	tests := []struct {
		from domain.BookingStatus
		to   domain.BookingStatus
		want bool
	}{
		{domain.StatusPending, domain.StatusConfirmed, true},
		{domain.StatusPending, domain.StatusCancelled, true},
		{domain.StatusPending, domain.StatusCompleted, false},
		{domain.StatusPending, domain.StatusPending, false},

		{domain.StatusConfirmed, domain.StatusCompleted, true},
		{domain.StatusConfirmed, domain.StatusCancelled, true},
		{domain.StatusConfirmed, domain.StatusPending, false},

		{domain.StatusCompleted, domain.StatusCancelled, false},
		{domain.StatusCompleted, domain.StatusConfirmed, false},

		{domain.StatusCancelled, domain.StatusPending, false},
		{domain.StatusCancelled, domain.StatusConfirmed, false},
		{domain.StatusCancelled, domain.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			b := &domain.Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingCanBeCancelled(t *testing.T) {
	assert.True(t, (&domain.Booking{Status: domain.StatusPending}).CanBeCancelled())
	assert.True(t, (&domain.Booking{Status: domain.StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&domain.Booking{Status: domain.StatusCompleted}).CanBeCancelled())
	assert.False(t, (&domain.Booking{Status: domain.StatusCancelled}).CanBeCancelled())
}

func TestBookingIsActive(t *testing.T) {
	// Только отмененные бронирования освобождают место в слоте
	assert.True(t, (&domain.Booking{Status: domain.StatusPending}).IsActive())
	assert.True(t, (&domain.Booking{Status: domain.StatusConfirmed}).IsActive())
	assert.True(t, (&domain.Booking{Status: domain.StatusCompleted}).IsActive())
	assert.False(t, (&domain.Booking{Status: domain.StatusCancelled}).IsActive())
}

func TestSlotHasSpotFor(t *testing.T) {
	slot := &domain.Slot{Capacity: 3}
	assert.True(t, slot.HasSpotFor(0))
	assert.True(t, slot.HasSpotFor(2))
	assert.False(t, slot.HasSpotFor(3))
	assert.False(t, slot.HasSpotFor(4))
}
