package store

import (
	"time"

	"github.com/VanderIG123/stylists-api/internal/models"
)

// DefaultStylists is the catalogue a fresh installation starts with.
func DefaultStylists(now time.Time) []models.Stylist {
	return []models.Stylist{
		{
			ID:           1,
			Name:         "Amara Okafor",
			Email:        "amara@example.com",
			Phone:        "+1-555-0101",
			Address:      "12 Market Street",
			Specialties:  []string{"braids", "natural hair"},
			Experience:   8,
			Bio:          "Protective styles and natural hair care.",
			Rating:       4.8,
			HourlyRate:   45,
			Availability: "Mon-Fri 09:00-17:00",
			Services: []models.StylistService{
				{Name: "Box braids", Price: 120, DurationMin: 240},
				{Name: "Wash and style", Price: 40, DurationMin: 60},
			},
			Portfolio: []string{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           2,
			Name:         "Diego Santos",
			Email:        "diego@example.com",
			Phone:        "+1-555-0102",
			Address:      "48 Harbor Avenue",
			Specialties:  []string{"fades", "beard trims"},
			Experience:   5,
			Bio:          "Classic cuts and sharp fades.",
			Rating:       4.6,
			HourlyRate:   35,
			Availability: "Tue-Sat 10:00-19:00",
			Services: []models.StylistService{
				{Name: "Haircut", Price: 30, DurationMin: 45},
				{Name: "Beard trim", Price: 15, DurationMin: 20},
			},
			Portfolio: []string{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           3,
			Name:         "Mei Lin",
			Email:        "mei@example.com",
			Phone:        "+1-555-0103",
			Address:      "7 Garden Lane",
			Specialties:  []string{"color", "balayage"},
			Experience:   11,
			Bio:          "Color specialist.",
			Rating:       4.9,
			HourlyRate:   60,
			Availability: "Wed-Sun 11:00-20:00",
			Services: []models.StylistService{
				{Name: "Balayage", Price: 180, DurationMin: 180},
				{Name: "Root touch-up", Price: 70, DurationMin: 90},
			},
			Portfolio: []string{},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
