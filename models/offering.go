package models

import "strings"

// RawListing is one space row as reported by the inventory backend.
// Numeric fields are already coerced at the collaborator boundary.
type RawListing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	UnitCode    string  `json:"unitCode"`
	Description string  `json:"description,omitempty"`
	ImageRef    string  `json:"imageRef,omitempty"`
	Capacity    int     `json:"capacity"`
	HourlyRate  float64 `json:"hourlyRate"`  // 0 = not offered hourly
	DailyRate   float64 `json:"dailyRate"`   // 0 = not offered daily
	MonthlyRate float64 `json:"monthlyRate"` // 0 = not offered monthly
	Status      string  `json:"status"`
	Available   bool    `json:"isAvailable"`
}

// SpaceUnit is one concrete interchangeable physical space within an offering.
type SpaceUnit struct {
	UnitID   string     `json:"unitId"`
	UnitCode string     `json:"unitCode"`
	Raw      RawListing `json:"raw"`
}

// WorkspaceOffering is a bookable category of space: every listing sharing
// the same title and price schedule, with its concrete units.
type WorkspaceOffering struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	ImageRef    string      `json:"imageRef,omitempty"`
	HourlyRate  float64     `json:"hourlyRate,omitempty"`
	DailyRate   float64     `json:"dailyRate,omitempty"`
	MonthlyRate float64     `json:"monthlyRate,omitempty"`
	Capacity    int         `json:"capacity"`
	PerAttendee bool        `json:"perAttendee"`
	Units       []SpaceUnit `json:"units"`
}

// RateFor returns the unit price of the offering for the given plan
// category, or 0 when the offering is not bookable under that plan.
func (o WorkspaceOffering) RateFor(plan PlanCategory) float64 {
	switch plan {
	case PlanHourly:
		return o.HourlyRate
	case PlanDaily:
		return o.DailyRate
	case PlanMonthly:
		return o.MonthlyRate
	}
	return 0
}

// UnitByID returns the unit with the given ID, if present.
func (o WorkspaceOffering) UnitByID(unitID string) (SpaceUnit, bool) {
	for _, u := range o.Units {
		if u.UnitID == unitID {
			return u, true
		}
	}
	return SpaceUnit{}, false
}

// IsPerAttendeeTitle reports whether a listing title is billed per attendee.
// Conferencing rooms charge per person per hour; everything else is per space.
func IsPerAttendeeTitle(title string) bool {
	return strings.Contains(strings.ToLower(title), "conferencing")
}

// OfferingOccupancy is the per-title slice of the live occupancy summary.
type OfferingOccupancy struct {
	Title     string `json:"title"`
	Available int    `json:"available"`
	Booked    int    `json:"booked"`
}

// OccupancySummary is a point-in-time view of workspace inventory status.
type OccupancySummary struct {
	TotalUnits    int                 `json:"totalUnits"`
	Available     int                 `json:"available"`
	Booked        int                 `json:"booked"`
	OccupancyRate float64             `json:"occupancyRate"`
	ByOffering    []OfferingOccupancy `json:"byOffering"`
}
