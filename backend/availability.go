package backend

import (
	"context"

	"vayuhu/models"
)

type availabilityRow struct {
	SpaceID     wireString `json:"space_id"`
	IsAvailable wireBool   `json:"is_available"`
	BookedUntil wireString `json:"booked_until"`
}

type availabilityResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Spaces  []availabilityRow `json:"spaces"`
}

type availabilityRequest struct {
	SpaceIDs  []string `json:"space_ids"`
	Date      string   `json:"date"`
	EndDate   string   `json:"end_date,omitempty"`
	StartTime string   `json:"start_time,omitempty"`
	EndTime   string   `json:"end_time,omitempty"`
}

// CheckAvailability reports which of the requested units are free for the
// window. Units missing from the response are treated as available.
func (c *Client) CheckAvailability(ctx context.Context, q models.AvailabilityQuery) ([]models.UnitAvailability, error) {
	req := availabilityRequest{
		SpaceIDs:  q.UnitIDs,
		Date:      q.Date,
		EndDate:   q.EndDate,
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
	}
	var resp availabilityResponse
	if err := c.postJSON(ctx, "/check_space_availability.php", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RemoteError{Endpoint: "/check_space_availability.php", Message: orDefault(resp.Message, "availability check failed")}
	}

	verdicts := make([]models.UnitAvailability, 0, len(resp.Spaces))
	for _, row := range resp.Spaces {
		verdicts = append(verdicts, models.UnitAvailability{
			UnitID:      string(row.SpaceID),
			Available:   bool(row.IsAvailable),
			BookedUntil: string(row.BookedUntil),
		})
	}
	return verdicts, nil
}
