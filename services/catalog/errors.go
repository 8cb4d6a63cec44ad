package catalog

import "fmt"

// ErrNoListings is surfaced when the inventory backend reports no active
// spaces. The caller decides whether to retry; nothing here does.
var ErrNoListings = fmt.Errorf("no active workspace listings available")

// OfferingNotFoundError indicates a lookup for an offering that is not in
// the current catalog fetch.
type OfferingNotFoundError struct {
	Title string
}

func (e *OfferingNotFoundError) Error() string {
	return fmt.Sprintf("offering %q not found in catalog", e.Title)
}
