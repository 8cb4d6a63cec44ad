package backend

import (
	"context"

	"vayuhu/models"
)

type bookingResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	BookingID wireString `json:"booking_id"`
}

// SaveBooking persists a finalized booking with the backend and returns
// its identifier.
func (c *Client) SaveBooking(ctx context.Context, payload models.BookingPayload) (string, error) {
	var resp bookingResponse
	if err := c.postJSON(ctx, "/add_workspace_booking.php", payload, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &RemoteError{Endpoint: "/add_workspace_booking.php", Message: orDefault(resp.Message, "booking rejected")}
	}
	return string(resp.BookingID), nil
}

type emailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendBookingEmail asks the backend to dispatch a confirmation email.
func (c *Client) SendBookingEmail(ctx context.Context, payload models.EmailPayload) error {
	var resp emailResponse
	if err := c.postJSON(ctx, "/send_booking_email.php", payload, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &RemoteError{Endpoint: "/send_booking_email.php", Message: orDefault(resp.Message, "email dispatch failed")}
	}
	return nil
}
