package catalog

import (
	"fmt"

	"vayuhu/models"
)

// Normalize maps raw backend listings into workspace offerings. Listings
// that are not Active are dropped; listings sharing the same title and
// price schedule collapse into a single offering whose units keep the
// arrival order of the source list. Listings with no rate at all are
// skipped: they cannot be booked under any plan.
func Normalize(raw []models.RawListing) []models.WorkspaceOffering {
	type group struct {
		index    int
		offering models.WorkspaceOffering
	}

	groups := make(map[string]*group)
	order := 0

	for _, l := range raw {
		if l.Status != "Active" {
			continue
		}
		if l.HourlyRate <= 0 && l.DailyRate <= 0 && l.MonthlyRate <= 0 {
			continue
		}

		key := groupKey(l)
		unit := models.SpaceUnit{UnitID: l.ID, UnitCode: l.UnitCode, Raw: l}

		if g, ok := groups[key]; ok {
			g.offering.Units = append(g.offering.Units, unit)
			continue
		}

		capacity := l.Capacity
		if capacity <= 0 {
			capacity = 10
		}
		groups[key] = &group{
			index: order,
			offering: models.WorkspaceOffering{
				Title:       l.Title,
				Description: l.Description,
				ImageRef:    l.ImageRef,
				HourlyRate:  l.HourlyRate,
				DailyRate:   l.DailyRate,
				MonthlyRate: l.MonthlyRate,
				Capacity:    capacity,
				PerAttendee: models.IsPerAttendeeTitle(l.Title),
				Units:       []models.SpaceUnit{unit},
			},
		}
		order++
	}

	offerings := make([]models.WorkspaceOffering, order)
	for _, g := range groups {
		offerings[g.index] = g.offering
	}
	return offerings
}

func groupKey(l models.RawListing) string {
	return fmt.Sprintf("%s||%g||%g||%g", l.Title, l.HourlyRate, l.DailyRate, l.MonthlyRate)
}
