package backend

import (
	"context"

	"vayuhu/models"
)

type spaceRow struct {
	ID              wireString `json:"id"`
	Space           wireString `json:"space"`
	SpaceCode       wireString `json:"space_code"`
	MinDurationDesc wireString `json:"min_duration_desc"`
	Capacity        wireInt    `json:"capacity"`
	PerHour         wireFloat  `json:"per_hour"`
	PerDay          wireFloat  `json:"per_day"`
	PerMonth        wireFloat  `json:"per_month"`
	ImageURL        wireString `json:"image_url"`
	Status          wireString `json:"status"`
	IsAvailable     wireBool   `json:"is_available"`
}

type spacesResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Spaces  []spaceRow `json:"spaces"`
}

// ListSpaces retrieves the current space inventory. An unsuccessful
// envelope or an empty inventory is an error; the caller decides whether
// to ask again.
func (c *Client) ListSpaces(ctx context.Context) ([]models.RawListing, error) {
	var resp spacesResponse
	if err := c.getJSON(ctx, "/get_spaces.php", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RemoteError{Endpoint: "/get_spaces.php", Message: orDefault(resp.Message, "no spaces found")}
	}

	listings := make([]models.RawListing, 0, len(resp.Spaces))
	for _, row := range resp.Spaces {
		status := string(row.Status)
		if status == "" {
			status = "Active"
		}
		listings = append(listings, models.RawListing{
			ID:          string(row.ID),
			Title:       string(row.Space),
			UnitCode:    string(row.SpaceCode),
			Description: string(row.MinDurationDesc),
			ImageRef:    string(row.ImageURL),
			Capacity:    int(row.Capacity),
			HourlyRate:  float64(row.PerHour),
			DailyRate:   float64(row.PerDay),
			MonthlyRate: float64(row.PerMonth),
			Status:      status,
			Available:   bool(row.IsAvailable),
		})
	}
	return listings, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
