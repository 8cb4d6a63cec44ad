package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vayuhu/models"
)

type stubGateway struct {
	order     *models.PaymentOrder
	createErr error
	verifyErr error
}

func (s *stubGateway) CreateOrder(ctx context.Context, amount float64, receipt string) (*models.PaymentOrder, error) {
	return s.order, s.createErr
}

func (s *stubGateway) VerifyPayment(ctx context.Context, orderID string) error {
	return s.verifyErr
}

func cartPayload(title string, amount float64) models.BookingPayload {
	return models.BookingPayload{
		WorkspaceTitle: title,
		PlanType:       "Daily",
		StartDate:      "2025-01-20",
		EndDate:        "2025-01-20",
		TotalDays:      1,
		FinalAmount:    amount,
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	svc := &DefaultCheckoutService{Payments: &stubGateway{}}

	_, err := svc.CreateOrder(context.Background(), "user-1", CreateOrderRequest{Amount: 0})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	svc := &DefaultCheckoutService{Payments: &stubGateway{createErr: errors.New("gateway down")}}

	_, err := svc.CreateOrder(context.Background(), "user-1", CreateOrderRequest{Amount: 590})
	var collabErr *CollaboratorError
	assert.ErrorAs(t, err, &collabErr)
}

func TestVerifyAndBookPersistsEveryBooking(t *testing.T) {
	bookings := &stubBookings{id: "bk-1"}
	mailer := &stubMailer{}
	svc := &DefaultCheckoutService{
		Payments: &stubGateway{},
		Bookings: bookings,
		Mail:     mailer,
	}

	result, err := svc.VerifyAndBook(context.Background(), "user-1", VerifyCheckoutRequest{
		OrderID:   "pi_123",
		UserEmail: "a@b.test",
		Bookings:  []models.BookingPayload{cartPayload("Open Desk", 354), cartPayload("Executive Cabin", 590)},
	})
	require.NoError(t, err)

	assert.Len(t, result.BookingIDs, 2)
	assert.Zero(t, result.Failed)
	assert.True(t, result.EmailSent)

	// The authenticated user overrides whatever was staged.
	for _, saved := range bookings.saved {
		assert.Equal(t, "user-1", saved.UserID)
	}

	// One summary email for the whole cart.
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, 944.0, mailer.sent[0].TotalAmount)
	assert.Len(t, mailer.sent[0].Bookings, 2)
}

func TestVerifyAndBookFailedPaymentStopsEverything(t *testing.T) {
	bookings := &stubBookings{id: "bk-1"}
	svc := &DefaultCheckoutService{
		Payments: &stubGateway{verifyErr: errors.New("payment not captured")},
		Bookings: bookings,
	}

	_, err := svc.VerifyAndBook(context.Background(), "user-1", VerifyCheckoutRequest{
		OrderID:  "pi_123",
		Bookings: []models.BookingPayload{cartPayload("Open Desk", 354)},
	})
	var collabErr *CollaboratorError
	require.ErrorAs(t, err, &collabErr)
	assert.Empty(t, bookings.saved)
}

func TestVerifyAndBookEmailFailureIsWarningOnly(t *testing.T) {
	svc := &DefaultCheckoutService{
		Payments: &stubGateway{},
		Bookings: &stubBookings{id: "bk-1"},
		Mail:     &stubMailer{err: errors.New("queue down")},
	}

	result, err := svc.VerifyAndBook(context.Background(), "user-1", VerifyCheckoutRequest{
		OrderID:  "pi_123",
		Bookings: []models.BookingPayload{cartPayload("Open Desk", 354)},
	})
	require.NoError(t, err)
	assert.False(t, result.EmailSent)
	assert.NotEmpty(t, result.Warning)
}
