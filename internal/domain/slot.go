package domain

import (
	"fmt"
	"time"

	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

// Slot represents a bookable time window on a specific date
type Slot struct {
	ID        int64
	Date      time.Time // calendar date, time part is zero
	StartTime types.TimeString
	EndTime   types.TimeString
	// Capacity is the maximum number of active bookings the slot can hold
	Capacity int
	// Available is an admin-controlled flag, independent of capacity
	Available bool
	// PatternID references the recurring pattern that generated the slot, nil for manual slots
	PatternID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the slot creation invariants
func (s *Slot) Validate() error {
	if s.Capacity < MinSlotCapacity || s.Capacity > MaxSlotCapacity {
		return fmt.Errorf("slot capacity must be between %d and %d, got %d",
			MinSlotCapacity, MaxSlotCapacity, s.Capacity)
	}
	if err := s.StartTime.Validate(); err != nil {
		return err
	}
	if err := s.EndTime.Validate(); err != nil {
		return err
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("slot start time %s must be before end time %s", s.StartTime, s.EndTime)
	}
	return nil
}

// ScheduledStart returns the full start timestamp of the slot
func (s *Slot) ScheduledStart() (time.Time, error) {
	return s.StartTime.OnDate(s.Date)
}

// HasSpotFor reports whether a new active booking fits under capacity
// given the authoritative active booking count
func (s *Slot) HasSpotFor(activeCount int) bool {
	return activeCount < s.Capacity
}
