package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"vayuhu/models"
	"vayuhu/utils"
)

// CreateOrderRequest opens a gateway order covering one or more staged bookings.
type CreateOrderRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// VerifyCheckoutRequest finalizes a paid order: every staged booking is
// persisted once the gateway confirms payment.
type VerifyCheckoutRequest struct {
	OrderID   string                  `json:"orderId" binding:"required"`
	UserEmail string                  `json:"userEmail,omitempty"`
	Bookings  []models.BookingPayload `json:"bookings" binding:"required,min=1"`
}

// CheckoutResult reports which staged bookings were persisted. Individual
// persistence failures do not roll back the others; there is no
// partial-success reconciliation.
type CheckoutResult struct {
	BookingIDs []string `json:"bookingIds"`
	Failed     int      `json:"failed,omitempty"`
	EmailSent  bool     `json:"emailSent"`
	Warning    string   `json:"warning,omitempty"`
}

// CheckoutService is the cart flow: pay once for several bookings.
type CheckoutService interface {
	CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*models.PaymentOrder, error)
	VerifyAndBook(ctx context.Context, userID string, req VerifyCheckoutRequest) (*CheckoutResult, error)
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Payments PaymentGateway
	Bookings BookingClient
	Mail     Mailer
}

func (s *DefaultCheckoutService) CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*models.PaymentOrder, error) {
	if req.Amount <= 0 {
		return nil, newValidationError("amount", "must be positive")
	}
	order, err := s.Payments.CreateOrder(ctx, req.Amount, fmt.Sprintf("cart-%s", userID))
	if err != nil {
		return nil, &CollaboratorError{Op: "create payment order", Err: err}
	}
	return order, nil
}

// VerifyAndBook confirms payment with the gateway, then persists every
// staged booking and queues one summary email. A persistence failure on
// one booking does not stop the rest; the count is reported back.
func (s *DefaultCheckoutService) VerifyAndBook(ctx context.Context, userID string, req VerifyCheckoutRequest) (*CheckoutResult, error) {
	if err := s.Payments.VerifyPayment(ctx, req.OrderID); err != nil {
		return nil, &CollaboratorError{Op: "verify payment", Err: err}
	}

	logger := utils.GetLogger()
	result := &CheckoutResult{EmailSent: true}
	var total float64
	var lines []models.EmailBookingLine

	for _, payload := range req.Bookings {
		payload.UserID = userID
		id, err := s.Bookings.SaveBooking(ctx, payload)
		if err != nil {
			result.Failed++
			logger.Error("cart booking persistence failed",
				zap.String("title", payload.WorkspaceTitle), zap.Error(err))
			continue
		}
		result.BookingIDs = append(result.BookingIDs, id)
		total += payload.FinalAmount
		lines = append(lines, emailLine(payload))
	}

	if result.Failed > 0 {
		result.Warning = fmt.Sprintf("%d of %d bookings could not be saved", result.Failed, len(req.Bookings))
	}

	if s.Mail != nil && len(lines) > 0 {
		email := models.EmailPayload{
			UserID:      userID,
			UserEmail:   req.UserEmail,
			TotalAmount: total,
			Bookings:    lines,
		}
		if err := s.Mail.EnqueueBookingEmail(email); err != nil {
			result.EmailSent = false
			if result.Warning != "" {
				result.Warning += "; "
			}
			result.Warning += "bookings saved, but confirmation email could not be sent"
			logger.Warn("cart confirmation email enqueue failed", zap.Error(err))
		}
	}
	return result, nil
}
