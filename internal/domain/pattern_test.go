package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

func validPattern() domain.RecurringPattern {
	return domain.RecurringPattern{
		Name:         "Weekday mornings",
		Weekdays:     []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		StartTime:    types.TimeString("10:00"),
		EndTime:      types.TimeString("11:00"),
		Capacity:     2,
		Active:       true,
		HorizonWeeks: 4,
	}
}

func TestRecurringPatternValidate(t *testing.T) {
	t.Run("valid pattern", func(t *testing.T) {
		p := validPattern()
		assert.NoError(t, p.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*domain.RecurringPattern)
	}{
		{name: "empty name", mutate: func(p *domain.RecurringPattern) { p.Name = "" }},
		{name: "empty weekday set", mutate: func(p *domain.RecurringPattern) { p.Weekdays = nil }},
		{name: "invalid weekday", mutate: func(p *domain.RecurringPattern) { p.Weekdays = []time.Weekday{7} }},
		{name: "zero horizon", mutate: func(p *domain.RecurringPattern) { p.HorizonWeeks = 0 }},
		{name: "horizon too far", mutate: func(p *domain.RecurringPattern) { p.HorizonWeeks = 53 }},
		{name: "zero capacity", mutate: func(p *domain.RecurringPattern) { p.Capacity = 0 }},
		{name: "start after end", mutate: func(p *domain.RecurringPattern) {
			p.StartTime = types.TimeString("12:00")
			p.EndTime = types.TimeString("11:00")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPattern()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestRecurringPatternAppliesTo(t *testing.T) {
	p := validPattern()

	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, monday.Weekday())

	assert.True(t, p.AppliesTo(monday))
	assert.False(t, p.AppliesTo(monday.AddDate(0, 0, 1))) // вторник
	assert.True(t, p.AppliesTo(monday.AddDate(0, 0, 2)))  // среда
	assert.False(t, p.AppliesTo(monday.AddDate(0, 0, 5))) // суббота
}
