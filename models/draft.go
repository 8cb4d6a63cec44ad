package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// PlanCategory is the billing granularity of a booking.
type PlanCategory string

const (
	PlanHourly  PlanCategory = "Hourly"
	PlanDaily   PlanCategory = "Daily"
	PlanMonthly PlanCategory = "Monthly"
)

// Valid reports whether the plan category is one of the known values.
func (p PlanCategory) Valid() bool {
	switch p {
	case PlanHourly, PlanDaily, PlanMonthly:
		return true
	}
	return false
}

// PlanCategoryValidator wires PlanCategory into gin's binding validator
// under the "plancategory" tag.
func PlanCategoryValidator(fl validator.FieldLevel) bool {
	return PlanCategory(fl.Field().String()).Valid()
}

// Wizard steps. A draft in a terminal state is deleted, not kept.
const (
	StepSelectingUnit = "SelectingUnit"
	StepDateTime      = "DateTime"
	StepRecurrence    = "Recurrence"
	StepReview        = "Review"
)

// Referral sources accepted on a draft.
var ReferralSources = []string{"Instagram", "Facebook", "Google", "Friend"}

// ValidReferralSource reports whether src is empty or a known referral source.
func ValidReferralSource(src string) bool {
	if src == "" {
		return true
	}
	for _, s := range ReferralSources {
		if s == src {
			return true
		}
	}
	return false
}

// BookingDraft is the working state of one in-progress booking. It lives
// only in the draft cache (TTL-bounded) and is destroyed on cancel,
// completion or expiry; it is never partially persisted.
type BookingDraft struct {
	DraftID string `json:"draftId"`
	UserID  string `json:"userId"`

	Offering   WorkspaceOffering `json:"offering"`
	ChosenUnit *SpaceUnit        `json:"chosenUnit,omitempty"`
	Plan       PlanCategory      `json:"plan"`
	UnitPrice  float64           `json:"unitPrice"`

	// Calendar dates in "2006-01-02", wall-clock times in "15:04".
	// Times are meaningful only for hourly plans.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`

	Days          int `json:"days"`
	HoursPerDay   int `json:"hoursPerDay"`
	AttendeeCount int `json:"attendeeCount"`

	TermsAccepted  bool    `json:"termsAccepted"`
	CouponCode     string  `json:"couponCode,omitempty"`
	DiscountAmount float64 `json:"discountAmount"`
	ReferralSource string  `json:"referralSource,omitempty"`

	Step      string    `json:"step"`
	CreatedAt time.Time `json:"createdAt"`
}

// PriceBreakdown is derived from a draft on every input change; it is a
// pure function of the draft and never stored independently.
type PriceBreakdown struct {
	BaseAmount       float64 `json:"baseAmount"`
	TaxAmount        float64 `json:"taxAmount"`
	PreDiscountTotal float64 `json:"preDiscountTotal"`
	Discount         float64 `json:"discount"`
	FinalTotal       float64 `json:"finalTotal"`
}
