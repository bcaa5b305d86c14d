package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/VanderIG123/stylists-api/internal/auth"
	domain "github.com/VanderIG123/stylists-api/internal/domain/appointment"
	"github.com/VanderIG123/stylists-api/internal/httperr"
	ucAppointment "github.com/VanderIG123/stylists-api/internal/usecase/appointment"
)

var ErrInvalidFilter = httperr.Validation("invalid_request", "userId and stylistId must be positive integers.")

type CreateAppointmentRequest struct {
	StylistID int64  `json:"stylistId" binding:"required,gt=0"`
	UserID    *int64 `json:"userId" binding:"omitempty,gt=0"`

	Purpose string `json:"purpose" binding:"required,max=500"`
	Date    string `json:"date" binding:"required,date"`
	Time    string `json:"time" binding:"required,clock"`

	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail" binding:"omitempty,trimmed_email"`
	CustomerPhone string            `json:"customerPhone"`
	Services      []json.RawMessage `json:"services"`
}

func (r CreateAppointmentRequest) Input(actor auth.Principal) ucAppointment.CreateAppointmentInput {
	return ucAppointment.CreateAppointmentInput{
		Actor:         actor,
		StylistID:     r.StylistID,
		UserID:        r.UserID,
		Purpose:       r.Purpose,
		Date:          r.Date,
		Time:          r.Time,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Services:      r.Services,
	}
}

type SuggestAppointmentRequest struct {
	SuggestedDate string `json:"suggestedDate" binding:"required,date"`
	SuggestedTime string `json:"suggestedTime" binding:"required,clock"`
}

// AppointmentQuery holds the optional list filters. An empty value means
// no filter.
type AppointmentQuery struct {
	UserID    string `form:"userId"`
	StylistID string `form:"stylistId"`
}

func (q AppointmentQuery) Filter() (domain.Filter, error) {
	userID, err := optionalID(q.UserID)
	if err != nil {
		return domain.Filter{}, err
	}
	stylistID, err := optionalID(q.StylistID)
	if err != nil {
		return domain.Filter{}, err
	}
	return domain.Filter{UserID: userID, StylistID: stylistID}, nil
}

func optionalID(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, ErrInvalidFilter
	}
	return &id, nil
}
