package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vayuhu/models"
)

func TestCalculateDaily(t *testing.T) {
	breakdown := Calculate(models.BookingDraft{
		Plan:      models.PlanDaily,
		UnitPrice: 500,
		Days:      1,
	})

	assert.Equal(t, 500.0, breakdown.BaseAmount)
	assert.Equal(t, 90.0, breakdown.TaxAmount)
	assert.Equal(t, 590.0, breakdown.PreDiscountTotal)
	assert.Equal(t, 590.0, breakdown.FinalTotal)
}

func TestCalculateDailyMultiDay(t *testing.T) {
	breakdown := Calculate(models.BookingDraft{
		Plan:      models.PlanDaily,
		UnitPrice: 500,
		Days:      5,
	})

	assert.Equal(t, 2500.0, breakdown.BaseAmount)
	assert.Equal(t, 450.0, breakdown.TaxAmount)
}

func TestCalculateMonthlyFlat(t *testing.T) {
	// Monthly is a flat rate regardless of the day count of the term.
	for _, days := range []int{29, 30, 31} {
		breakdown := Calculate(models.BookingDraft{
			Plan:      models.PlanMonthly,
			UnitPrice: 4000,
			Days:      days,
		})
		assert.Equal(t, 4000.0, breakdown.BaseAmount)
		assert.Equal(t, 720.0, breakdown.TaxAmount)
		assert.Equal(t, 4720.0, breakdown.FinalTotal)
	}
}

func TestCalculateHourly(t *testing.T) {
	breakdown := Calculate(models.BookingDraft{
		Plan:          models.PlanHourly,
		UnitPrice:     100,
		Days:          2,
		HoursPerDay:   3,
		AttendeeCount: 4,
	})

	// Attendee count does not multiply a per-space offering.
	assert.Equal(t, 600.0, breakdown.BaseAmount)
}

func TestCalculateHourlyPerAttendee(t *testing.T) {
	breakdown := Calculate(models.BookingDraft{
		Plan:          models.PlanHourly,
		Offering:      models.WorkspaceOffering{PerAttendee: true},
		UnitPrice:     100,
		Days:          1,
		HoursPerDay:   3,
		AttendeeCount: 2,
	})

	assert.Equal(t, 600.0, breakdown.BaseAmount)
	assert.Equal(t, 108.0, breakdown.TaxAmount)
}

func TestCalculateTaxRounding(t *testing.T) {
	tests := []struct {
		base    float64
		wantTax float64
	}{
		{0, 0},
		{100, 18},
		{333, 60}, // 59.94 rounds up
		{10000, 1800},
	}
	for _, tt := range tests {
		breakdown := Calculate(models.BookingDraft{
			Plan:      models.PlanDaily,
			UnitPrice: tt.base,
			Days:      1,
		})
		assert.Equal(t, tt.wantTax, breakdown.TaxAmount, "base %v", tt.base)
	}
}

func TestCalculateDiscountClampedAtZero(t *testing.T) {
	breakdown := Calculate(models.BookingDraft{
		Plan:           models.PlanDaily,
		UnitPrice:      100,
		Days:           1,
		DiscountAmount: 500,
	})

	assert.Equal(t, 118.0, breakdown.PreDiscountTotal)
	assert.Equal(t, 0.0, breakdown.FinalTotal)
}

func TestCalculateIsPure(t *testing.T) {
	draft := models.BookingDraft{
		Plan:           models.PlanDaily,
		UnitPrice:      500,
		Days:           3,
		DiscountAmount: 10,
	}

	first := Calculate(draft)
	second := Calculate(draft)
	assert.Equal(t, first, second)
}
