package domain

import (
	"fmt"
	"sort"
	"time"
)

// PolicyTier is one rung of the cancellation refund ladder:
// a booking cancelled with at least HoursBefore hours of notice
// qualifies for RefundPercent of the price.
type PolicyTier struct {
	ID int64
	// HoursBefore is the minimum hours of notice required for the tier to apply
	HoursBefore int
	// RefundPercent is the refunded share of the price, 0-100
	RefundPercent int
	Active        bool
	// DisplayOrder is used only for presentation, never for evaluation
	DisplayOrder int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the tier invariants
func (t *PolicyTier) Validate() error {
	if t.HoursBefore < 0 {
		return fmt.Errorf("policy tier hoursBefore must be non-negative, got %d", t.HoursBefore)
	}
	if t.RefundPercent < MinRefundPercent || t.RefundPercent > MaxRefundPercent {
		return fmt.Errorf("policy tier refund percent must be between %d and %d, got %d",
			MinRefundPercent, MaxRefundPercent, t.RefundPercent)
	}
	return nil
}

// RefundDecision is the outcome of a refund calculation
type RefundDecision struct {
	// Percent is the selected refund percentage
	Percent int
	// AmountCents is the refund amount in cents, rounded half-up
	AmountCents int64
	// HoursNotice is the notice the client gave, in hours, never negative
	HoursNotice float64
}

// HoursNotice returns the notice between now and the scheduled start, in hours.
// Floored at 0 when the appointment time has already passed.
func HoursNotice(scheduledAt, now time.Time) float64 {
	hours := scheduledAt.Sub(now).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// SortTiersForEvaluation returns a copy of tiers sorted descending by HoursBefore.
// This is the single canonical ordering: both refund calculation and the
// policy preview derive from it, so the displayed policy and the actual
// refund can never disagree.
func SortTiersForEvaluation(tiers []PolicyTier) []PolicyTier {
	sorted := make([]PolicyTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].HoursBefore > sorted[j].HoursBefore
	})
	return sorted
}

// SelectRefundPercent picks the refund percentage for the given notice:
// among active tiers with HoursBefore <= hoursNotice, the one with the
// largest HoursBefore wins (the most generous tier the client still
// qualifies for). No qualifying tier means no refund.
//
// An empty tier set also yields 0. This is a deliberate conservative
// default: no configured policy means no refund, not a full refund.
func SelectRefundPercent(tiers []PolicyTier, hoursNotice float64) int {
	for _, tier := range SortTiersForEvaluation(tiers) {
		if !tier.Active {
			continue
		}
		if float64(tier.HoursBefore) <= hoursNotice {
			return tier.RefundPercent
		}
	}
	return 0
}

// RefundAmountCents computes percent of priceCents with half-up rounding to a cent.
// Integer arithmetic, no floating point involved.
func RefundAmountCents(priceCents int64, percent int) int64 {
	if priceCents <= 0 || percent <= 0 {
		return 0
	}
	return (priceCents*int64(percent) + 50) / 100
}

// CalculateRefund computes the full refund decision for a cancellation.
// Pure function: same inputs always yield the same decision.
func CalculateRefund(priceCents int64, scheduledAt, now time.Time, tiers []PolicyTier) RefundDecision {
	notice := HoursNotice(scheduledAt, now)
	percent := SelectRefundPercent(tiers, notice)

	return RefundDecision{
		Percent:     percent,
		AmountCents: RefundAmountCents(priceCents, percent),
		HoursNotice: notice,
	}
}

// TierRange is one row of the client-facing policy description,
// e.g. "100% refund with 48+ hours of notice, 50% between 24 and 48 hours".
type TierRange struct {
	// HoursFrom is the inclusive lower bound of the notice range
	HoursFrom int
	// HoursTo is the exclusive upper bound, nil for the topmost range
	HoursTo       *int
	RefundPercent int
}

// TierRanges derives the displayed policy from active tiers.
// Tiers are paired with the next-lower threshold using the same canonical
// sort as SelectRefundPercent. If the smallest threshold is above zero, a
// trailing 0% range covers the remaining notice values.
func TierRanges(tiers []PolicyTier) []TierRange {
	active := make([]PolicyTier, 0, len(tiers))
	for _, tier := range SortTiersForEvaluation(tiers) {
		if tier.Active {
			active = append(active, tier)
		}
	}

	ranges := make([]TierRange, 0, len(active)+1)
	var upper *int

	for i := range active {
		tier := active[i]
		ranges = append(ranges, TierRange{
			HoursFrom:     tier.HoursBefore,
			HoursTo:       upper,
			RefundPercent: tier.RefundPercent,
		})
		bound := tier.HoursBefore
		upper = &bound
	}

	// Остаток ниже самого маленького порога — без возврата
	if len(active) > 0 && active[len(active)-1].HoursBefore > 0 {
		bound := active[len(active)-1].HoursBefore
		ranges = append(ranges, TierRange{HoursFrom: 0, HoursTo: &bound, RefundPercent: 0})
	}

	return ranges
}
