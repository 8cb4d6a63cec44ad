package models

import "time"

// BookingPayload is the record handed to the booking persistence
// collaborator once a draft reaches review and is submitted.
type BookingPayload struct {
	UserID         string  `json:"user_id"`
	SpaceID        string  `json:"space_id"`
	WorkspaceTitle string  `json:"workspace_title"`
	PlanType       string  `json:"plan_type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	StartTime      *string `json:"start_time"` // nil for non-hourly plans
	EndTime        *string `json:"end_time"`   // nil for non-hourly plans
	TotalDays      int     `json:"total_days"`
	TotalHours     int     `json:"total_hours"`
	NumAttendees   int     `json:"num_attendees"`
	PricePerUnit   float64 `json:"price_per_unit"`
	BaseAmount     float64 `json:"base_amount"`
	TaxAmount      float64 `json:"gst_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
	CouponCode     *string `json:"coupon_code"`
	ReferralSource *string `json:"referral_source"`
	TermsAccepted  int     `json:"terms_accepted"`
}

// BookingConfirmation is returned to the caller after a draft completes.
type BookingConfirmation struct {
	BookingID  string         `json:"bookingId"`
	Payload    BookingPayload `json:"payload"`
	DaySummary string         `json:"daySummary"`
	EmailSent  bool           `json:"emailSent"`
	Warning    string         `json:"warning,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// EmailBookingLine is one booking inside a confirmation email payload.
type EmailBookingLine struct {
	WorkspaceTitle string  `json:"workspace_title"`
	PlanType       string  `json:"plan_type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	FinalAmount    float64 `json:"final_amount"`
	CouponCode     *string `json:"coupon_code"`
	ReferralSource *string `json:"referral_source"`
}

// EmailPayload is handed to the confirmation-email collaborator.
type EmailPayload struct {
	UserID      string             `json:"user_id"`
	UserEmail   string             `json:"user_email"`
	TotalAmount float64            `json:"total_amount"`
	Bookings    []EmailBookingLine `json:"bookings"`
}

// PaymentOrder is a gateway order created ahead of checkout.
type PaymentOrder struct {
	OrderID      string  `json:"orderId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// SeatToken is one selectable unit in the seat grid. Units already booked
// for the requested window are disabled with a human-readable reason.
type SeatToken struct {
	UnitID   string `json:"unitId"`
	UnitCode string `json:"unitCode"`
	Disabled bool   `json:"disabled"`
	Reason   string `json:"reason,omitempty"`
}

// AvailabilityQuery asks the availability collaborator which units are
// free for a requested window.
type AvailabilityQuery struct {
	UnitIDs   []string `json:"unitIds"`
	Date      string   `json:"date"`
	EndDate   string   `json:"endDate,omitempty"`
	StartTime string   `json:"startTime,omitempty"`
	EndTime   string   `json:"endTime,omitempty"`
}

// UnitAvailability is the availability collaborator's verdict for one unit.
type UnitAvailability struct {
	UnitID      string `json:"unitId"`
	Available   bool   `json:"available"`
	BookedUntil string `json:"bookedUntil,omitempty"` // e.g. "5:00 PM today"
}
