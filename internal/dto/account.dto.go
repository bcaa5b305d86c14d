package dto

import (
	"github.com/VanderIG123/stylists-api/internal/models"
	ucAccount "github.com/VanderIG123/stylists-api/internal/usecase/account"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,trimmed_email"`
	Password string `json:"password" binding:"required"`
}

type RegisterStylistRequest struct {
	Email    string `json:"email" binding:"required,trimmed_email"`
	Password string `json:"password" binding:"required,min=6"`

	Name           string                  `json:"name" binding:"required"`
	Phone          string                  `json:"phone"`
	Address        string                  `json:"address"`
	Specialties    []string                `json:"specialties"`
	Experience     int                     `json:"experience" binding:"gte=0"`
	Bio            string                  `json:"bio"`
	HourlyRate     float64                 `json:"hourlyRate" binding:"gte=0"`
	Availability   string                  `json:"availability"`
	Services       []models.StylistService `json:"services"`
	ProfilePicture string                  `json:"profilePicture"`
}

func (r RegisterStylistRequest) Input() ucAccount.RegisterStylistInput {
	return ucAccount.RegisterStylistInput{
		Email:          r.Email,
		Password:       r.Password,
		Name:           r.Name,
		Phone:          r.Phone,
		Address:        r.Address,
		Specialties:    r.Specialties,
		Experience:     r.Experience,
		Bio:            r.Bio,
		HourlyRate:     r.HourlyRate,
		Availability:   r.Availability,
		Services:       r.Services,
		ProfilePicture: r.ProfilePicture,
	}
}

type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,trimmed_email"`
	Password string `json:"password" binding:"required,min=6"`

	Name           string   `json:"name" binding:"required"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	Preferences    []string `json:"preferences"`
	ProfilePicture string   `json:"profilePicture"`
}

func (r RegisterUserRequest) Input() ucAccount.RegisterUserInput {
	return ucAccount.RegisterUserInput{
		Email:          r.Email,
		Password:       r.Password,
		Name:           r.Name,
		Phone:          r.Phone,
		Address:        r.Address,
		Preferences:    r.Preferences,
		ProfilePicture: r.ProfilePicture,
	}
}
