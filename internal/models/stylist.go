package models

import "time"

type StylistService struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"durationMin"`
}

type Stylist struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Address     string   `json:"address"`
	Specialties []string `json:"specialties"`
	Experience  int      `json:"experience"`
	Bio         string   `json:"bio"`
	Rating      float64  `json:"rating"`
	HourlyRate  float64  `json:"hourlyRate"`

	Availability   string           `json:"availability"`
	Services       []StylistService `json:"services"`
	Portfolio      []string         `json:"portfolio"`
	ProfilePicture string           `json:"profilePicture"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Stylist) Clone() Stylist {
	out := *s
	out.Specialties = append([]string{}, s.Specialties...)
	out.Services = append([]StylistService{}, s.Services...)
	out.Portfolio = append([]string{}, s.Portfolio...)
	return out
}
