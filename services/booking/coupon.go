package booking

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"vayuhu/models"
	"vayuhu/utils"
)

// validateCoupon resolves a coupon code to an authoritative discount.
// The remote collaborator is asked first; its rejection is final. Only
// when the collaborator itself is unreachable does the local fixed-code
// fallback apply, so offline operation degrades instead of breaking.
func (s *DefaultWizardService) validateCoupon(ctx context.Context, draft *models.BookingDraft, code string) (*models.CouponResult, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, newValidationError("coupon", "code must not be empty")
	}

	if s.Coupons != nil {
		pre := Calculate(*draft).PreDiscountTotal
		result, err := s.Coupons.ValidateCoupon(ctx, trimmed, draft.UserID, pre)
		if err == nil {
			result.Source = "remote"
			return result, nil
		}
		if errors.Is(err, models.ErrCouponRejected) {
			return nil, ErrInvalidCoupon
		}
		utils.GetLogger().Warn("coupon collaborator unreachable, using local fallback",
			zap.String("code", trimmed), zap.Error(err))
	}

	return s.localCouponCheck(trimmed)
}

// localCouponCheck is the degraded offline path: a single configured code
// yields a fixed flat discount.
func (s *DefaultWizardService) localCouponCheck(code string) (*models.CouponResult, error) {
	if s.Policy.FallbackCouponCode == "" {
		return nil, ErrInvalidCoupon
	}
	if !strings.EqualFold(code, s.Policy.FallbackCouponCode) {
		return nil, ErrInvalidCoupon
	}
	return &models.CouponResult{
		Code:     s.Policy.FallbackCouponCode,
		Discount: s.Policy.FallbackCouponAmount,
		Source:   "local",
	}, nil
}
