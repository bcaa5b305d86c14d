package appointment

import (
	"sort"

	"github.com/VanderIG123/stylists-api/internal/models"
)

// Filter narrows a listing by participant. Nil fields match everything;
// set fields must all match.
type Filter struct {
	UserID    *int64
	StylistID *int64
}

func (f Filter) Match(ap *models.Appointment) bool {
	if f.StylistID != nil && ap.StylistID != *f.StylistID {
		return false
	}
	if f.UserID != nil && (ap.UserID == nil || *ap.UserID != *f.UserID) {
		return false
	}
	return true
}

// Select copies the matching appointments and orders them latest slot
// first. Dates and times are fixed-width, so the string order is the
// chronological one.
func Select(all []*models.Appointment, f Filter) []models.Appointment {
	out := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		if f.Match(ap) {
			out = append(out, ap.Clone())
		}
	}
	SortLatestFirst(out)
	return out
}

func SortLatestFirst(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		if aps[i].Date != aps[j].Date {
			return aps[i].Date > aps[j].Date
		}
		return aps[i].Time > aps[j].Time
	})
}
