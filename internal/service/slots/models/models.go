package models

import (
	"errors"
	"time"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidTime возвращается при некорректном времени
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")
)

// Request модели

// CreateSlotRequest запрос на ручное создание слота
type CreateSlotRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Capacity  int    `json:"capacity"`
	Available *bool  `json:"available,omitempty"` // По умолчанию true
}

// UpdateSlotRequest запрос на изменение слота
// Передаются только изменяемые поля
type UpdateSlotRequest struct {
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Capacity  *int    `json:"capacity,omitempty"`
	Available *bool   `json:"available,omitempty"`
}

// DuplicateSlotRequest запрос на копирование слота на другую дату
type DuplicateSlotRequest struct {
	TargetDate string `json:"targetDate"` // "2025-10-22"
}

// ListSlotsRequest запрос на получение слотов за период
type ListSlotsRequest struct {
	From          string `json:"from"`
	To            string `json:"to"`
	OnlyAvailable bool   `json:"onlyAvailable"`
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
	PatternID *int64 `json:"patternId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// ToDomainSlot конвертирует запрос в domain модель
func (r *CreateSlotRequest) ToDomainSlot() (*domain.Slot, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	available := true
	if r.Available != nil {
		available = *r.Available
	}

	return &domain.Slot{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Capacity:  r.Capacity,
		Available: available,
	}, nil
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:        s.ID,
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Capacity:  s.Capacity,
		Available: s.Available,
		PatternID: s.PatternID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	if slots == nil {
		return &SlotListResponse{Slots: []SlotResponse{}}
	}

	resp := &SlotListResponse{
		Slots: make([]SlotResponse, len(slots)),
	}

	for i, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots[i] = *slotResp
		}
	}

	return resp
}

// ParseDate парсит дату формата YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
