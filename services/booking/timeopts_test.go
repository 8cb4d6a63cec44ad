package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeOptionsWindow(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	opts := GenerateTimeOptions(testWindow, "2025-01-15", now)
	require.Len(t, opts, 13)
	assert.Equal(t, "08:00", opts[0].Value)
	assert.Equal(t, "08:00 AM", opts[0].Display)
	assert.Equal(t, "20:00", opts[12].Value)
	assert.Equal(t, "08:00 PM", opts[12].Display)

	// Hours at or before 10:30 are marked past for today.
	assert.True(t, opts[0].Past)
	assert.True(t, opts[2].Past)  // 10:00
	assert.False(t, opts[3].Past) // 11:00
}

func TestGenerateTimeOptionsFutureDateNeverPast(t *testing.T) {
	now := time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)

	opts := GenerateTimeOptions(testWindow, "2025-01-20", now)
	for _, o := range opts {
		assert.False(t, o.Past, o.Value)
	}
}

func TestEndTimeOptionsAfterStart(t *testing.T) {
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	opts := GenerateTimeOptions(testWindow, "2025-01-15", now)

	ends := EndTimeOptions(opts, "18:00")
	require.Len(t, ends, 2)
	assert.Equal(t, "19:00", ends[0].Value)
	assert.Equal(t, "20:00", ends[1].Value)
}

func TestFormat24HourTo12Hour(t *testing.T) {
	assert.Equal(t, "12:00 AM", Format24HourTo12Hour("00:00"))
	assert.Equal(t, "09:30 AM", Format24HourTo12Hour("09:30"))
	assert.Equal(t, "12:00 PM", Format24HourTo12Hour("12:00"))
	assert.Equal(t, "02:00 PM", Format24HourTo12Hour("14:00"))
	assert.Equal(t, "11:59 PM", Format24HourTo12Hour("23:59"))
	assert.Equal(t, "garbage", Format24HourTo12Hour("garbage"))
}

func TestDefaultHourlyTimes(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{"mid morning", time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), "11:00", "12:00"},
		{"on the hour", time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC), "10:00", "11:00"},
		{"before opening", time.Date(2025, 1, 15, 6, 15, 0, 0, time.UTC), "08:00", "09:00"},
		{"near closing", time.Date(2025, 1, 15, 21, 0, 0, 0, time.UTC), "19:00", "20:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := DefaultHourlyTimes(testWindow, tt.now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
