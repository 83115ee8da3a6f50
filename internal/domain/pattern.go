package domain

import (
	"fmt"
	"time"

	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

// RecurringPattern is a weekly template that generates slots over a future horizon
type RecurringPattern struct {
	ID   int64
	Name string
	// Weekdays is the non-empty set of weekdays the pattern covers
	Weekdays  []time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	Capacity  int
	Active    bool
	// HorizonWeeks is how far ahead slots are generated
	HorizonWeeks int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the pattern invariants
func (p *RecurringPattern) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("pattern name is required")
	}
	if len(p.Weekdays) == 0 {
		return fmt.Errorf("pattern weekday set must not be empty")
	}
	for _, wd := range p.Weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("pattern contains invalid weekday %d", wd)
		}
	}
	if p.HorizonWeeks < MinHorizonWeeks || p.HorizonWeeks > MaxHorizonWeeks {
		return fmt.Errorf("pattern horizon must be between %d and %d weeks, got %d",
			MinHorizonWeeks, MaxHorizonWeeks, p.HorizonWeeks)
	}

	// Слоты, порождаемые паттерном, должны проходить те же проверки, что и ручные
	slot := Slot{Capacity: p.Capacity, StartTime: p.StartTime, EndTime: p.EndTime}
	return slot.Validate()
}

// AppliesTo reports whether the pattern covers the given date's weekday
func (p *RecurringPattern) AppliesTo(date time.Time) bool {
	for _, wd := range p.Weekdays {
		if date.Weekday() == wd {
			return true
		}
	}
	return false
}
