package booking

import (
	"context"
	"time"

	"vayuhu/models"
	"vayuhu/services/catalog"
)

// AvailabilityClient asks the remote backend which units are free for a window.
type AvailabilityClient interface {
	CheckAvailability(ctx context.Context, q models.AvailabilityQuery) ([]models.UnitAvailability, error)
}

// BookingClient persists a completed booking remotely.
type BookingClient interface {
	SaveBooking(ctx context.Context, payload models.BookingPayload) (string, error)
}

// CouponClient validates a coupon code remotely. The remote verdict is
// authoritative; the wizard falls back to a local fixed-code check only
// when the collaborator is unreachable.
type CouponClient interface {
	ValidateCoupon(ctx context.Context, code, userID string, amount float64) (*models.CouponResult, error)
}

// Mailer enqueues a confirmation email for dispatch. Failures are
// secondary: the booking stands regardless.
type Mailer interface {
	EnqueueBookingEmail(payload models.EmailPayload) error
}

// PaymentGateway creates and verifies checkout orders.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, receipt string) (*models.PaymentOrder, error)
	VerifyPayment(ctx context.Context, orderID string) error
}

// StartDraftRequest opens a new draft for an offering and plan category.
type StartDraftRequest struct {
	OfferingTitle string              `json:"offeringTitle" binding:"required"`
	Plan          models.PlanCategory `json:"plan" binding:"required,plancategory"`
}

// DateTimeRequest carries the step-1 inputs.
type DateTimeRequest struct {
	StartDate     string `json:"startDate" binding:"required"`
	StartTime     string `json:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
	AttendeeCount int    `json:"attendeeCount,omitempty"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// RecurrenceRequest carries the step-2 inputs. EndDate may override the
// derived end date for multi-day daily recurrence only.
type RecurrenceRequest struct {
	EndDate string `json:"endDate,omitempty"`
}

// CompleteRequest carries the final submission inputs.
type CompleteRequest struct {
	ReferralSource string `json:"referralSource,omitempty"`
	UserEmail      string `json:"userEmail,omitempty"`
}

// WizardState is the draft plus everything the current step needs to render.
type WizardState struct {
	Draft       *models.BookingDraft  `json:"draft"`
	Breakdown   models.PriceBreakdown `json:"breakdown"`
	DaySummary  string                `json:"daySummary,omitempty"`
	SeatGrid    []models.SeatToken    `json:"seatGrid,omitempty"`
	TimeOptions []TimeOption          `json:"timeOptions,omitempty"`
}

// WizardService drives the linear booking flow: unit selection (when the
// offering has several), date/time entry, recurrence confirmation, review
// and final submission.
type WizardService interface {
	StartDraft(ctx context.Context, userID string, req StartDraftRequest) (*WizardState, error)
	SelectUnit(ctx context.Context, draftID, unitID string) (*WizardState, error)
	SubmitDateTime(ctx context.Context, draftID string, req DateTimeRequest) (*WizardState, error)
	ConfirmRecurrence(ctx context.Context, draftID string, req RecurrenceRequest) (*WizardState, error)
	Review(ctx context.Context, draftID string) (*WizardState, error)
	ApplyCoupon(ctx context.Context, draftID, code string) (*WizardState, error)
	Back(ctx context.Context, draftID string) (*WizardState, error)
	Complete(ctx context.Context, draftID string, req CompleteRequest) (*models.BookingConfirmation, error)
	Cancel(ctx context.Context, draftID string) error
}

// Policy is the configurable booking policy.
type Policy struct {
	Window               Window
	AllowPastStart       bool
	FallbackCouponCode   string
	FallbackCouponAmount float64
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Store        DraftStore
	Catalog      catalog.Service
	Availability AvailabilityClient
	Bookings     BookingClient
	Coupons      CouponClient
	Mail         Mailer
	Policy       Policy

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultWizardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
