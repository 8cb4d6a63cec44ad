package models

import "errors"

// ErrCouponRejected is returned by the coupon collaborator when it reaches
// a verdict and the verdict is no. Distinct from transport failures, which
// trigger the local fallback instead.
var ErrCouponRejected = errors.New("coupon code rejected")

// CouponResult is the outcome of validating a coupon code.
type CouponResult struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	// Source is "remote" when the discount was computed by the coupon
	// collaborator, "local" when the offline fallback matched.
	Source string `json:"source"`
}
