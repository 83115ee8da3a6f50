package models

import (
	"fmt"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
)

// TierRangeResponse человекочитаемый диапазон политики возврата
type TierRangeResponse struct {
	HoursFrom     int    `json:"hoursFrom"`
	HoursTo       *int   `json:"hoursTo,omitempty"` // nil для верхнего диапазона
	RefundPercent int    `json:"refundPercent"`
	Description   string `json:"description"`
}

// PolicyPreviewResponse ответ с описанием действующей политики возврата
type PolicyPreviewResponse struct {
	Ranges []TierRangeResponse `json:"ranges"`
}

// FromDomainTierRanges конвертирует диапазоны политики в DTO
func FromDomainTierRanges(ranges []domain.TierRange) *PolicyPreviewResponse {
	resp := &PolicyPreviewResponse{
		Ranges: make([]TierRangeResponse, len(ranges)),
	}

	for i, r := range ranges {
		resp.Ranges[i] = TierRangeResponse{
			HoursFrom:     r.HoursFrom,
			HoursTo:       r.HoursTo,
			RefundPercent: r.RefundPercent,
			Description:   describe(r),
		}
	}

	return resp
}

func describe(r domain.TierRange) string {
	if r.HoursTo == nil {
		return fmt.Sprintf("%d+ hours notice", r.HoursFrom)
	}
	if r.HoursFrom == 0 {
		return fmt.Sprintf("less than %d hours notice", *r.HoursTo)
	}
	return fmt.Sprintf("%d-%d hours notice", r.HoursFrom, *r.HoursTo)
}
