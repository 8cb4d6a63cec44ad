package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vayuhu/models"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		baseURL:    srv.URL,
		httpClient: srv.Client(),
		logger:     zap.NewNop(),
	}
}

func TestListSpaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_spaces.php", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"spaces": [
				{"id": "1", "space": "Open Desk", "space_code": "OD1", "per_hour": "100", "per_day": "300", "per_month": "4000", "status": "Active", "is_available": "1"},
				{"id": "2", "space": "Executive Cabin", "space_code": "EC1", "per_day": "500", "is_available": "0"}
			]
		}`))
	}))
	defer srv.Close()

	listings, err := testClient(srv).ListSpaces(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "Open Desk", listings[0].Title)
	assert.Equal(t, 100.0, listings[0].HourlyRate)
	// Missing status defaults to Active.
	assert.Equal(t, "Active", listings[1].Status)
	assert.False(t, listings[1].Available)
}

func TestListSpacesUnsuccessfulEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "no spaces found"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).ListSpaces(context.Background())
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Contains(t, remoteErr.Message, "no spaces found")
}

func TestListSpacesMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "spaces": [{"per_day": "five hundred"}]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).ListSpaces(context.Background())
	var remoteErr *RemoteError
	assert.ErrorAs(t, err, &remoteErr)
}

func TestValidateCouponVerdicts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req couponRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.Code {
		case "SUMMER50":
			w.Write([]byte(`{"success": true, "discount_amount": "50"}`))
		default:
			w.Write([]byte(`{"success": false, "message": "invalid coupon"}`))
		}
	}))
	defer srv.Close()

	client := testClient(srv)

	result, err := client.ValidateCoupon(context.Background(), "SUMMER50", "user-1", 590)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Discount)

	_, err = client.ValidateCoupon(context.Background(), "NOPE", "user-1", 590)
	assert.ErrorIs(t, err, models.ErrCouponRejected)
}

func TestValidateCouponUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv).ValidateCoupon(context.Background(), "SUMMER50", "user-1", 590)
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.NotErrorIs(t, err, models.ErrCouponRejected)
}

func TestSaveBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/add_workspace_booking.php", r.URL.Path)

		var payload models.BookingPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Open Desk", payload.WorkspaceTitle)

		w.Write([]byte(`{"success": true, "booking_id": "42"}`))
	}))
	defer srv.Close()

	id, err := testClient(srv).SaveBooking(context.Background(), models.BookingPayload{
		WorkspaceTitle: "Open Desk",
	})
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestCheckAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check_space_availability.php", r.URL.Path)

		var req availabilityRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"u1", "u2"}, req.SpaceIDs)

		w.Write([]byte(`{"success": true, "spaces": [
			{"space_id": "u1", "is_available": "1"},
			{"space_id": "u2", "is_available": "0", "booked_until": "5:00 PM today"}
		]}`))
	}))
	defer srv.Close()

	verdicts, err := testClient(srv).CheckAvailability(context.Background(), models.AvailabilityQuery{
		UnitIDs: []string{"u1", "u2"},
		Date:    "2025-01-15",
	})
	require.NoError(t, err)
	require.Len(t, verdicts, 2)

	assert.True(t, verdicts[0].Available)
	assert.False(t, verdicts[1].Available)
	assert.Equal(t, "5:00 PM today", verdicts[1].BookedUntil)
}
