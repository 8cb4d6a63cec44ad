package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vayuhu/models"
)

func TestApplyCouponOnlyAtReview(t *testing.T) {
	svc, _, _, _ := newTestWizard()
	state := startDailyDraft(t, svc)

	_, err := svc.ApplyCoupon(context.Background(), state.Draft.DraftID, "VAYUHU10")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestApplyCouponRemoteVerdictWins(t *testing.T) {
	svc, _, _, _ := newTestWizard()
	svc.Coupons = &stubCoupons{result: &models.CouponResult{Code: "SUMMER50", Discount: 50}}
	reviewed := advanceToReview(t, svc)

	state, err := svc.ApplyCoupon(context.Background(), reviewed.Draft.DraftID, "SUMMER50")
	require.NoError(t, err)

	assert.Equal(t, "SUMMER50", state.Draft.CouponCode)
	assert.Equal(t, 50.0, state.Draft.DiscountAmount)
	assert.Equal(t, 304.0, state.Breakdown.FinalTotal)
}

func TestApplyCouponRemoteRejectionIsFinal(t *testing.T) {
	svc, store, _, _ := newTestWizard()
	// The collaborator is reachable and says no; the local fallback code
	// must not rescue the request.
	svc.Coupons = &stubCoupons{err: models.ErrCouponRejected}
	reviewed := advanceToReview(t, svc)

	_, err := svc.ApplyCoupon(context.Background(), reviewed.Draft.DraftID, "VAYUHU10")
	assert.ErrorIs(t, err, ErrInvalidCoupon)

	// Draft discount is untouched.
	got, err := store.Get(context.Background(), reviewed.Draft.DraftID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.DiscountAmount)
	assert.Empty(t, got.CouponCode)
}

func TestApplyCouponFallbackWhenUnreachable(t *testing.T) {
	svc, _, _, _ := newTestWizard()
	svc.Coupons = &stubCoupons{err: errors.New("connection refused")}
	reviewed := advanceToReview(t, svc)

	state, err := svc.ApplyCoupon(context.Background(), reviewed.Draft.DraftID, "vayuhu10")
	require.NoError(t, err)

	// Case-insensitive match, canonical code recorded.
	assert.Equal(t, "VAYUHU10", state.Draft.CouponCode)
	assert.Equal(t, 10.0, state.Draft.DiscountAmount)
	assert.Equal(t, 344.0, state.Breakdown.FinalTotal)
}

func TestApplyCouponFallbackRejectsUnknownCode(t *testing.T) {
	svc, _, _, _ := newTestWizard()
	svc.Coupons = &stubCoupons{err: errors.New("connection refused")}
	reviewed := advanceToReview(t, svc)

	_, err := svc.ApplyCoupon(context.Background(), reviewed.Draft.DraftID, "NOPE")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
}

func TestApplyCouponEmptyCode(t *testing.T) {
	svc, _, _, _ := newTestWizard()
	reviewed := advanceToReview(t, svc)

	_, err := svc.ApplyCoupon(context.Background(), reviewed.Draft.DraftID, "   ")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
