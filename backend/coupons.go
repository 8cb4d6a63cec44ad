package backend

import (
	"context"

	"vayuhu/models"
)

type couponRequest struct {
	Code   string  `json:"coupon_code"`
	UserID string  `json:"user_id"`
	Amount float64 `json:"order_amount"`
}

type couponResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Discount wireFloat `json:"discount_amount"`
}

// ValidateCoupon asks the backend whether a coupon applies to the given
// order amount. A success=false envelope is a definitive rejection
// (models.ErrCouponRejected); transport and schema failures are returned
// as RemoteError so the caller can degrade to its local fallback.
func (c *Client) ValidateCoupon(ctx context.Context, code, userID string, amount float64) (*models.CouponResult, error) {
	req := couponRequest{Code: code, UserID: userID, Amount: amount}
	var resp couponResponse
	if err := c.postJSON(ctx, "/validate_coupon.php", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, models.ErrCouponRejected
	}
	if resp.Discount < 0 {
		return nil, &RemoteError{Endpoint: "/validate_coupon.php", Message: "negative discount in response"}
	}
	return &models.CouponResult{Code: code, Discount: float64(resp.Discount)}, nil
}
