package appointment

import "github.com/VanderIG123/stylists-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus is the status every new appointment starts in.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Errors
// ===============================

var (
	ErrAppointmentNotFound = httperr.NotFoundErr("appointment_not_found", "Appointment not found.")
	ErrStylistNotFound     = httperr.NotFoundErr("stylist_not_found", "Stylist not found.")
	ErrNoSuggestionPending = httperr.Validation("no_suggestion_pending", "There is no suggested date and time to accept.")
	ErrInvalidDateOrTime   = httperr.Validation("invalid_date_or_time", "Date must be YYYY-MM-DD and time HH:MM.")
	ErrInvalidPurpose      = httperr.Validation("invalid_purpose", "Purpose is required and must be at most 500 characters.")
)
