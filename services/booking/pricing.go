package booking

import (
	"math"

	"vayuhu/models"
)

// TaxRate is the GST applied to every booking. A business constant, not a
// configuration knob.
const TaxRate = 0.18

// Calculate derives the price breakdown for a draft. It is a pure function
// of the draft: same input, same output, no side effects.
//
// Base amount by plan:
//   - Daily:   dailyRate x days
//   - Monthly: monthlyRate flat, independent of day count
//   - Hourly:  hourlyRate x hoursPerDay x days, additionally multiplied by
//     the attendee count for per-attendee offerings
//
// The final total is clamped at zero: a discount larger than the
// pre-discount total never produces a negative payable amount.
func Calculate(d models.BookingDraft) models.PriceBreakdown {
	base := baseAmount(d)
	tax := math.Round(base * TaxRate)
	pre := base + tax

	final := pre - d.DiscountAmount
	if final < 0 {
		final = 0
	}

	return models.PriceBreakdown{
		BaseAmount:       base,
		TaxAmount:        tax,
		PreDiscountTotal: pre,
		Discount:         d.DiscountAmount,
		FinalTotal:       final,
	}
}

func baseAmount(d models.BookingDraft) float64 {
	switch d.Plan {
	case models.PlanDaily:
		return d.UnitPrice * float64(d.Days)
	case models.PlanMonthly:
		return d.UnitPrice
	case models.PlanHourly:
		amount := d.UnitPrice * float64(d.HoursPerDay) * float64(d.Days)
		if d.Offering.PerAttendee {
			amount *= float64(d.AttendeeCount)
		}
		return amount
	}
	return 0
}
