package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vayuhu/models"
)

var testWindow = Window{OpenHour: 8, CloseHour: 20}

func TestResolveRangeMonthly(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		wantEnd   string
		wantDays  int
	}{
		{"mid month", "2025-01-15", "2025-02-14", 31},
		{"first of month", "2025-03-01", "2025-03-31", 31},
		{"day absent next month", "2025-01-31", "2025-02-28", 29},
		{"leap february", "2024-01-31", "2024-02-29", 30},
		{"december rollover", "2025-12-10", "2026-01-09", 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ResolveRange(models.PlanMonthly, tt.startDate, "", "", testWindow)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnd, rng.EndDate)
			assert.Equal(t, tt.wantDays, rng.Days)
		})
	}
}

func TestResolveRangeDailySingleDay(t *testing.T) {
	rng, err := ResolveRange(models.PlanDaily, "2025-01-15", "", "", testWindow)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", rng.EndDate)
	assert.Equal(t, 1, rng.Days)
	assert.Equal(t, 0, rng.HoursPerDay)
}

func TestResolveRangeHourly(t *testing.T) {
	rng, err := ResolveRange(models.PlanHourly, "2025-01-15", "09:00", "12:00", testWindow)
	require.NoError(t, err)
	assert.Equal(t, 1, rng.Days)
	assert.Equal(t, 3, rng.HoursPerDay)
}

func TestResolveRangeHourlyOutsideWindow(t *testing.T) {
	_, err := ResolveRange(models.PlanHourly, "2025-01-15", "07:00", "12:00", testWindow)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "time", vErr.Field)

	_, err = ResolveRange(models.PlanHourly, "2025-01-15", "09:00", "21:00", testWindow)
	require.ErrorAs(t, err, &vErr)
}

func TestResolveRangeHourlyEndNotAfterStart(t *testing.T) {
	_, err := ResolveRange(models.PlanHourly, "2025-01-15", "12:00", "12:00", testWindow)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "endTime", vErr.Field)
}

func TestResolveRangeBadDate(t *testing.T) {
	_, err := ResolveRange(models.PlanDaily, "15/01/2025", "", "", testWindow)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestResolveManualEnd(t *testing.T) {
	days, err := ResolveManualEnd("2025-01-15", "2025-01-19")
	require.NoError(t, err)
	assert.Equal(t, 5, days)

	days, err = ResolveManualEnd("2025-01-15", "2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	// End before start yields zero days, not an error.
	days, err = ResolveManualEnd("2025-01-15", "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, 0, days)
}

func TestValidateStartDateHorizon(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateStartDate("2025-01-15", now, false))
	assert.NoError(t, ValidateStartDate("2025-03-15", now, false))
	assert.Error(t, ValidateStartDate("2025-03-16", now, false))
	assert.Error(t, ValidateStartDate("2025-01-14", now, false))
	assert.NoError(t, ValidateStartDate("2025-01-14", now, true))
}

func TestSummarizeDaysMonthlyRotation(t *testing.T) {
	// 2025-01-15 is a Wednesday; a full month covers every working day,
	// listed starting from the start weekday.
	got := SummarizeDays(models.PlanMonthly, "2025-01-15", "2025-02-14", 31)
	assert.Equal(t, "Wed, Thu, Fri, Sat, Mon, Tue", got)
}

func TestSummarizeDaysMonthlyShortRange(t *testing.T) {
	// Thu through Sat only; Sunday never appears.
	got := SummarizeDays(models.PlanMonthly, "2025-01-16", "2025-01-19", 4)
	assert.Equal(t, "Thu, Fri, Sat", got)
}

func TestSummarizeDaysSingleAndMulti(t *testing.T) {
	assert.Equal(t, "Wed", SummarizeDays(models.PlanDaily, "2025-01-15", "2025-01-15", 1))
	assert.Equal(t, "5 Days Recurrence", SummarizeDays(models.PlanDaily, "2025-01-15", "2025-01-19", 5))
	assert.Equal(t, "", SummarizeDays(models.PlanDaily, "2025-01-15", "2025-01-10", 0))
}
