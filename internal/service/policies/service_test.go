package policies

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
)

type fakePolicyRepo struct {
	tiers []domain.PolicyTier
	err   error
}

func (f *fakePolicyRepo) ListActive(_ context.Context) ([]domain.PolicyTier, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tiers, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestPreview(t *testing.T) {
	tiers := []domain.PolicyTier{
		{HoursBefore: 24, RefundPercent: 50, Active: true},
		{HoursBefore: 48, RefundPercent: 100, Active: true},
	}
	svc := NewService(&fakePolicyRepo{tiers: tiers}, nopLogger{})

	resp, err := svc.Preview(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Ranges, 3)

	assert.Equal(t, "48+ hours notice", resp.Ranges[0].Description)
	assert.Equal(t, 100, resp.Ranges[0].RefundPercent)

	assert.Equal(t, "24-48 hours notice", resp.Ranges[1].Description)
	assert.Equal(t, 50, resp.Ranges[1].RefundPercent)

	assert.Equal(t, "less than 24 hours notice", resp.Ranges[2].Description)
	assert.Equal(t, 0, resp.Ranges[2].RefundPercent)
}

// Показанная политика обязана совпадать с фактическим расчётом возврата
func TestPreviewMatchesRefundCalculation(t *testing.T) {
	tiers := []domain.PolicyTier{
		{HoursBefore: 72, RefundPercent: 100, Active: true},
		{HoursBefore: 24, RefundPercent: 30, Active: true},
		{HoursBefore: 48, RefundPercent: 60, Active: false},
	}
	svc := NewService(&fakePolicyRepo{tiers: tiers}, nopLogger{})

	resp, err := svc.Preview(context.Background())
	require.NoError(t, err)

	for _, r := range resp.Ranges {
		got := domain.SelectRefundPercent(tiers, float64(r.HoursFrom))
		assert.Equal(t, r.RefundPercent, got, "hoursFrom=%d", r.HoursFrom)
	}
}

func TestPreviewEmptyPolicy(t *testing.T) {
	svc := NewService(&fakePolicyRepo{}, nopLogger{})

	resp, err := svc.Preview(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Ranges)
}

func TestPreviewRepositoryError(t *testing.T) {
	svc := NewService(&fakePolicyRepo{err: errors.New("db down")}, nopLogger{})

	_, err := svc.Preview(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
