package booking

import (
	"context"

	"go.uber.org/zap"

	"vayuhu/models"
	"vayuhu/services/catalog"
	"vayuhu/utils"
)

// buildSeatGrid renders the unit selection sub-flow for a grouped
// offering: every unit as a token in lexicographic-numeric code order,
// with units the availability collaborator reports as taken for the
// requested window shown disabled with a human-readable reason.
//
// The grid is built before dates are entered, so the queried window is the
// draft's current defaults (today, and the default hour pair for hourly
// plans). If the availability collaborator fails, the grid is still shown
// with every unit enabled: the backend re-checks at persistence time.
func (s *DefaultWizardService) buildSeatGrid(ctx context.Context, draft *models.BookingDraft) ([]models.SeatToken, error) {
	units := catalog.SortUnitCodes(draft.Offering.Units)

	query := models.AvailabilityQuery{
		Date: s.now().Format(dateLayout),
	}
	for _, u := range units {
		query.UnitIDs = append(query.UnitIDs, u.UnitID)
	}
	if draft.Plan == models.PlanHourly {
		query.StartTime, query.EndTime = DefaultHourlyTimes(s.Policy.Window, s.now())
	}

	verdicts := map[string]models.UnitAvailability{}
	if s.Availability != nil {
		reported, err := s.Availability.CheckAvailability(ctx, query)
		if err != nil {
			utils.GetLogger().Warn("availability check failed, showing all units",
				zap.String("offering", draft.Offering.Title), zap.Error(err))
		} else {
			for _, v := range reported {
				verdicts[v.UnitID] = v
			}
		}
	}

	grid := make([]models.SeatToken, 0, len(units))
	for _, u := range units {
		token := models.SeatToken{UnitID: u.UnitID, UnitCode: u.UnitCode}
		if v, ok := verdicts[u.UnitID]; ok && !v.Available {
			token.Disabled = true
			token.Reason = "booked"
			if v.BookedUntil != "" {
				token.Reason = "booked until " + v.BookedUntil
			}
		}
		grid = append(grid, token)
	}
	return grid, nil
}
