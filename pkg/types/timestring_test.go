package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "10:00"},
		{input: "00:00"},
		{input: "23:59"},
		{input: "24:00", wantErr: true},
		{input: "10:60", wantErr: true},
		{input: "10:00:00", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := types.NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidTimeString)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, ts.String())
			}
		})
	}
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, types.TimeString("09:00").IsBefore("10:00"))
	assert.True(t, types.TimeString("10:30").IsAfter("10:00"))
	assert.False(t, types.TimeString("10:00").IsBefore("10:00"))

	// Лексикографическое сравнение корректно и через границу 09/10
	assert.True(t, types.TimeString("09:59").IsBefore("10:00"))
}

func TestTimeStringMinutes(t *testing.T) {
	minutes, err := types.TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = types.TimeString("bad").Minutes()
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestTimeStringOnDate(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	got, err := types.TimeString("10:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), got)
}

func TestTimeStringScan(t *testing.T) {
	t.Run("postgres TIME with seconds", func(t *testing.T) {
		var ts types.TimeString
		require.NoError(t, ts.Scan("10:30:00"))
		assert.Equal(t, types.TimeString("10:30"), ts)
	})

	t.Run("time.Time value", func(t *testing.T) {
		var ts types.TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 9, 15, 0, 0, time.UTC)))
		assert.Equal(t, types.TimeString("09:15"), ts)
	})

	t.Run("nil resets the value", func(t *testing.T) {
		ts := types.TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}

func TestTimeStringValue(t *testing.T) {
	v, err := types.TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = types.TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = types.TimeString("bad").Value()
	assert.Error(t, err)
}
