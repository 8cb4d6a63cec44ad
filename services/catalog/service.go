package catalog

import (
	"context"
	"math"

	"vayuhu/models"
)

// InventoryClient fetches raw space listings from the inventory backend.
type InventoryClient interface {
	ListSpaces(ctx context.Context) ([]models.RawListing, error)
}

// Service exposes the normalized workspace catalog. Listings are fetched
// on demand; the last successful fetch wins, nothing is cached here.
type Service interface {
	Offerings(ctx context.Context) ([]models.WorkspaceOffering, error)
	FindOffering(ctx context.Context, title string, plan models.PlanCategory) (*models.WorkspaceOffering, error)
	Occupancy(ctx context.Context) (*models.OccupancySummary, error)
}

// DefaultCatalogService implements Service on top of the inventory client.
type DefaultCatalogService struct {
	Inventory InventoryClient
}

func (s *DefaultCatalogService) Offerings(ctx context.Context) ([]models.WorkspaceOffering, error) {
	raw, err := s.Inventory.ListSpaces(ctx)
	if err != nil {
		return nil, err
	}
	offerings := Normalize(raw)
	if len(offerings) == 0 {
		return nil, ErrNoListings
	}
	return offerings, nil
}

// FindOffering locates an offering by title that is bookable under the
// given plan category.
func (s *DefaultCatalogService) FindOffering(ctx context.Context, title string, plan models.PlanCategory) (*models.WorkspaceOffering, error) {
	offerings, err := s.Offerings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range offerings {
		if offerings[i].Title == title && offerings[i].RateFor(plan) > 0 {
			return &offerings[i], nil
		}
	}
	return nil, &OfferingNotFoundError{Title: title}
}

// Occupancy summarises live inventory status across all active listings.
func (s *DefaultCatalogService) Occupancy(ctx context.Context) (*models.OccupancySummary, error) {
	raw, err := s.Inventory.ListSpaces(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.OccupancySummary{}
	byTitle := make(map[string]*models.OfferingOccupancy)
	var titles []string

	for _, l := range raw {
		if l.Status != "Active" {
			continue
		}
		entry, ok := byTitle[l.Title]
		if !ok {
			entry = &models.OfferingOccupancy{Title: l.Title}
			byTitle[l.Title] = entry
			titles = append(titles, l.Title)
		}
		summary.TotalUnits++
		if l.Available {
			summary.Available++
			entry.Available++
		} else {
			summary.Booked++
			entry.Booked++
		}
	}

	if summary.TotalUnits > 0 {
		rate := float64(summary.Booked) / float64(summary.TotalUnits) * 100
		summary.OccupancyRate = math.Round(rate*10) / 10
	}
	for _, t := range titles {
		summary.ByOffering = append(summary.ByOffering, *byTitle[t])
	}
	return summary, nil
}
