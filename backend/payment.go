package backend

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"vayuhu/models"
)

// StripeGateway creates and verifies checkout orders against Stripe.
// Amounts are rupees at the API surface and paise on the wire.
type StripeGateway struct {
	logger *zap.Logger
}

func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{logger: logger}
}

// CreateOrder opens a payment intent for the given rupee amount.
func (g *StripeGateway) CreateOrder(ctx context.Context, amount float64, receipt string) (*models.PaymentOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("order amount must be positive, got %.2f", amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(amount * 100)),
		Currency:    stripe.String(string(stripe.CurrencyINR)),
		Description: stripe.String(receipt),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	g.logger.Info("payment order created",
		zap.String("orderId", intent.ID), zap.Float64("amount", amount))

	return &models.PaymentOrder{
		OrderID:      intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Currency:     string(intent.Currency),
	}, nil
}

// VerifyPayment confirms that the gateway settled the order. Anything
// other than a succeeded intent fails verification.
func (g *StripeGateway) VerifyPayment(ctx context.Context, orderID string) error {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(orderID, params)
	if err != nil {
		return fmt.Errorf("failed to look up payment order %s: %w", orderID, err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("payment order %s not settled (status %s)", orderID, intent.Status)
	}
	return nil
}
