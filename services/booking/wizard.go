package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vayuhu/models"
	"vayuhu/utils"
)

// StartDraft opens a new booking draft for an authenticated user. When the
// offering groups several interchangeable units the draft enters the unit
// selection step; with exactly one unit the flow goes straight to
// date/time entry with sensible defaults.
func (s *DefaultWizardService) StartDraft(ctx context.Context, userID string, req StartDraftRequest) (*WizardState, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if !req.Plan.Valid() {
		return nil, newValidationError("plan", fmt.Sprintf("unknown plan category %q", req.Plan))
	}

	offering, err := s.Catalog.FindOffering(ctx, req.OfferingTitle, req.Plan)
	if err != nil {
		return nil, err
	}

	draft := &models.BookingDraft{
		DraftID:       uuid.New().String(),
		UserID:        userID,
		Offering:      *offering,
		Plan:          req.Plan,
		UnitPrice:     offering.RateFor(req.Plan),
		AttendeeCount: 1,
		CreatedAt:     s.now(),
	}

	if len(offering.Units) > 1 {
		draft.Step = models.StepSelectingUnit
		grid, err := s.buildSeatGrid(ctx, draft)
		if err != nil {
			return nil, err
		}
		if err := s.Store.Set(ctx, draft); err != nil {
			return nil, err
		}
		return &WizardState{Draft: draft, Breakdown: Calculate(*draft), SeatGrid: grid}, nil
	}

	unit := offering.Units[0]
	draft.ChosenUnit = &unit
	s.enterDateTimeStep(draft)

	if err := s.Store.Set(ctx, draft); err != nil {
		return nil, err
	}
	return s.stateFor(draft), nil
}

// SelectUnit resolves the seat grid choice. An explicit selection is
// mandatory; confirming without one is rejected rather than silently
// falling back to the first unit.
func (s *DefaultWizardService) SelectUnit(ctx context.Context, draftID, unitID string) (*WizardState, error) {
	draft, err := s.Store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepSelectingUnit {
		return nil, ErrWrongStep
	}
	if unitID == "" {
		return nil, ErrUnitNotChosen
	}
	unit, ok := draft.Offering.UnitByID(unitID)
	if !ok {
		return nil, newValidationError("unitId", fmt.Sprintf("unit %q is not part of this offering", unitID))
	}

	draft.ChosenUnit = &unit
	s.enterDateTimeStep(draft)

	if err := s.Store.Set(ctx, draft); err != nil {
		return nil, err
	}
	return s.stateFor(draft), nil
}

// SubmitDateTime validates the step-1 gate and advances to recurrence
// confirmation. The end date is derived from the plan category here;
// multi-day daily recurrence may override it in the next step.
func (s *DefaultWizardService) SubmitDateTime(ctx context.Context, draftID string, req DateTimeRequest) (*WizardState, error) {
	draft, err := s.Store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepDateTime {
		return nil, ErrWrongStep
	}
	if !req.TermsAccepted {
		return nil, newValidationError("termsAccepted", "terms and conditions must be accepted")
	}
	if err := ValidateStartDate(req.StartDate, s.now(), s.Policy.AllowPastStart); err != nil {
		return nil, err
	}

	attendees := req.AttendeeCount
	if attendees == 0 {
		attendees = 1
	}
	if attendees < 1 {
		return nil, newValidationError("attendeeCount", "must be at least 1")
	}
	if draft.Offering.PerAttendee && attendees > draft.Offering.Capacity {
		return nil, newValidationError("attendeeCount", fmt.Sprintf("exceeds capacity of %d", draft.Offering.Capacity))
	}

	rng, err := ResolveRange(draft.Plan, req.StartDate, req.StartTime, req.EndTime, s.Policy.Window)
	if err != nil {
		return nil, err
	}

	draft.StartDate = req.StartDate
	draft.EndDate = rng.EndDate
	draft.Days = rng.Days
	draft.HoursPerDay = rng.HoursPerDay
	draft.AttendeeCount = attendees
	draft.TermsAccepted = true
	if draft.Plan == models.PlanHourly {
		draft.StartTime = req.StartTime
		draft.EndTime = req.EndTime
	}
	draft.Step = models.StepRecurrence

	if err := s.Store.Set(ctx, draft); err != nil {
		return nil, err
	}
	return s.stateFor(draft), nil
}

// ConfirmRecurrence validates the step-2 gate. Daily plans may extend the
// recurrence with a manual end date; a range of zero days blocks
// progression.
func (s *DefaultWizardService) ConfirmRecurrence(ctx context.Context, draftID string, req RecurrenceRequest) (*WizardState, error) {
	draft, err := s.Store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepRecurrence {
		return nil, ErrWrongStep
	}

	if req.EndDate != "" && req.EndDate != draft.EndDate {
		if draft.Plan != models.PlanDaily {
			return nil, newValidationError("endDate", "end date is derived from the plan and cannot be overridden")
		}
		days, err := ResolveManualEnd(draft.StartDate, req.EndDate)
		if err != nil {
			return nil, err
		}
		if days == 0 {
			return nil, newValidationError("endDate", "must not be before the start date")
		}
		draft.EndDate = req.EndDate
		draft.Days = days
	}

	if draft.EndDate == "" {
		return nil, newValidationError("endDate", "end date is not set")
	}
	draft.Step = models.StepReview

	if err := s.Store.Set(ctx, draft); err != nil {
		return nil, err
	}
	return s.stateFor(draft), nil
}

// Review returns the draft with its current price breakdown and day summary.
func (s *DefaultWizardService) Review(ctx context.Context, draftID string) (*WizardState, error) {
	draft, err := s.Store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepReview {
		return nil, ErrWrongStep
	}
	return s.stateFor(draft), nil
}

// Back steps the wizard backwards one step, preserving everything already
// entered.
func (s *DefaultWizardService) Back(ctx context.Context, draftID string) (*WizardState, error) {
	draft, err := s.Store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	switch draft.Step {
	case models.StepReview:
		draft.Step = models.StepRecurrence
	case models.StepRecurrence:
		draft.Step = models.StepDateTime
	default:
		return nil, ErrWrongStep
	}

	if err := s.Store.Set(ctx, draft); err != nil {
		return nil, err
	}
	return s.stateFor(draft), nil
}

// Complete submits the reviewed draft to the booking collaborator,
// destroys the draft and queues the confirmation email. An email failure
// does not undo the booking; it is reported as a warning only.
func (s *DefaultWizardService) Complete(ctx context.Context, draftID string, req CompleteRequest) (*models.BookingConfirmation, error) {
	draft, err := s.Store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepReview {
		return nil, ErrWrongStep
	}
	if !models.ValidReferralSource(req.ReferralSource) {
		return nil, newValidationError("referralSource", fmt.Sprintf("unknown source %q", req.ReferralSource))
	}
	draft.ReferralSource = req.ReferralSource

	payload := BuildPayload(*draft)
	bookingID, err := s.Bookings.SaveBooking(ctx, payload)
	if err != nil {
		// Draft survives so the user may retry manually.
		return nil, &CollaboratorError{Op: "save booking", Err: err}
	}

	if err := s.Store.Delete(ctx, draftID); err != nil {
		utils.GetLogger().Warn("failed to delete completed draft", zap.String("draftId", draftID), zap.Error(err))
	}

	confirmation := &models.BookingConfirmation{
		BookingID:  bookingID,
		Payload:    payload,
		DaySummary: SummarizeDays(draft.Plan, draft.StartDate, draft.EndDate, draft.Days),
		EmailSent:  true,
		CreatedAt:  s.now(),
	}

	if s.Mail != nil {
		email := models.EmailPayload{
			UserID:      draft.UserID,
			UserEmail:   req.UserEmail,
			TotalAmount: payload.FinalAmount,
			Bookings:    []models.EmailBookingLine{emailLine(payload)},
		}
		if err := s.Mail.EnqueueBookingEmail(email); err != nil {
			confirmation.EmailSent = false
			confirmation.Warning = "booking saved, but confirmation email could not be sent"
			utils.GetLogger().Warn("confirmation email enqueue failed", zap.String("bookingId", bookingID), zap.Error(err))
		}
	}
	return confirmation, nil
}

// Cancel destroys the draft unconditionally, whatever step it is in.
func (s *DefaultWizardService) Cancel(ctx context.Context, draftID string) error {
	return s.Store.Delete(ctx, draftID)
}

// ApplyCoupon validates a coupon against the collaborator and records the
// authoritative discount on the draft. When the collaborator is
// unreachable the local fixed-code fallback applies. A rejected code
// leaves the draft's discount untouched.
func (s *DefaultWizardService) ApplyCoupon(ctx context.Context, draftID, code string) (*WizardState, error) {
	draft, err := s.Store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepReview {
		return nil, ErrWrongStep
	}

	result, err := s.validateCoupon(ctx, draft, code)
	if err != nil {
		return nil, err
	}

	draft.CouponCode = result.Code
	draft.DiscountAmount = result.Discount

	if err := s.Store.Set(ctx, draft); err != nil {
		return nil, err
	}
	return s.stateFor(draft), nil
}

// enterDateTimeStep seeds the step-1 defaults: start today, and for hourly
// plans the next bookable hour pair inside the operating window.
func (s *DefaultWizardService) enterDateTimeStep(draft *models.BookingDraft) {
	now := s.now()
	draft.Step = models.StepDateTime
	draft.StartDate = now.Format(dateLayout)
	if draft.Plan == models.PlanHourly {
		draft.StartTime, draft.EndTime = DefaultHourlyTimes(s.Policy.Window, now)
	}
}

func (s *DefaultWizardService) stateFor(draft *models.BookingDraft) *WizardState {
	state := &WizardState{
		Draft:      draft,
		Breakdown:  Calculate(*draft),
		DaySummary: SummarizeDays(draft.Plan, draft.StartDate, draft.EndDate, draft.Days),
	}
	if draft.Step == models.StepDateTime && draft.Plan == models.PlanHourly {
		state.TimeOptions = GenerateTimeOptions(s.Policy.Window, draft.StartDate, s.now())
	}
	return state
}

// BuildPayload flattens a reviewed draft into the collaborator's booking
// record shape. Times are nil for non-hourly plans.
func BuildPayload(draft models.BookingDraft) models.BookingPayload {
	breakdown := Calculate(draft)

	payload := models.BookingPayload{
		UserID:         draft.UserID,
		WorkspaceTitle: draft.Offering.Title,
		PlanType:       string(draft.Plan),
		StartDate:      draft.StartDate,
		EndDate:        draft.EndDate,
		TotalDays:      draft.Days,
		TotalHours:     draft.HoursPerDay,
		NumAttendees:   draft.AttendeeCount,
		PricePerUnit:   draft.UnitPrice,
		BaseAmount:     breakdown.BaseAmount,
		TaxAmount:      breakdown.TaxAmount,
		DiscountAmount: breakdown.Discount,
		FinalAmount:    breakdown.FinalTotal,
	}
	if draft.ChosenUnit != nil {
		payload.SpaceID = draft.ChosenUnit.UnitID
	}
	if draft.Plan == models.PlanHourly {
		payload.StartTime = strPtr(draft.StartTime)
		payload.EndTime = strPtr(draft.EndTime)
	}
	if draft.CouponCode != "" {
		payload.CouponCode = strPtr(draft.CouponCode)
	}
	if draft.ReferralSource != "" {
		payload.ReferralSource = strPtr(draft.ReferralSource)
	}
	if draft.TermsAccepted {
		payload.TermsAccepted = 1
	}
	return payload
}

func emailLine(p models.BookingPayload) models.EmailBookingLine {
	return models.EmailBookingLine{
		WorkspaceTitle: p.WorkspaceTitle,
		PlanType:       p.PlanType,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		StartTime:      p.StartTime,
		EndTime:        p.EndTime,
		FinalAmount:    p.FinalAmount,
		CouponCode:     p.CouponCode,
		ReferralSource: p.ReferralSource,
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
