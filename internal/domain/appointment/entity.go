package appointment

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/VanderIG123/stylists-api/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	MaxPurposeLength = 500
)

// ===============================
// Field rules
// ===============================

func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil && len(s) == len(DateLayout)
}

func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil && len(s) == len(TimeLayout)
}

func NormalizePurpose(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" || utf8.RuneCountInString(p) > MaxPurposeLength {
		return "", ErrInvalidPurpose
	}
	return p, nil
}

// ===============================
// Domain Actions
// ===============================

// New fills the lifecycle fields of a freshly proposed appointment.
// The caller has already resolved the stylist.
func New(ap *models.Appointment, now time.Time) error {
	purpose, err := NormalizePurpose(ap.Purpose)
	if err != nil {
		return err
	}
	if !ValidDate(ap.Date) || !ValidTime(ap.Time) {
		return ErrInvalidDateOrTime
	}

	ap.Purpose = purpose
	ap.CustomerEmail = models.NormalizeEmail(ap.CustomerEmail)
	ap.Services = models.CloneServices(ap.Services)
	ap.Status = string(InitialStatus())
	ap.SuggestedDate = nil
	ap.SuggestedTime = nil
	ap.CreatedAt = now
	ap.UpdatedAt = now
	return nil
}

// Accept confirms the appointment as proposed. Accepting twice only
// refreshes UpdatedAt.
func Accept(ap *models.Appointment, now time.Time) error {
	ap.Status = string(StatusConfirmed)
	ap.UpdatedAt = now
	return nil
}

func Reject(ap *models.Appointment, now time.Time) error {
	ap.Status = string(StatusCancelled)
	ap.UpdatedAt = now
	return nil
}

// Suggest attaches a counter-proposal and reopens the negotiation, even
// on an appointment that was already confirmed or cancelled.
func Suggest(ap *models.Appointment, date, clock string, now time.Time) error {
	if !ValidDate(date) || !ValidTime(clock) {
		return ErrInvalidDateOrTime
	}
	ap.SuggestedDate = &date
	ap.SuggestedTime = &clock
	ap.Status = string(StatusPending)
	ap.UpdatedAt = now
	return nil
}

// AcceptSuggestion moves the appointment to the suggested slot. It fails
// without touching the record when no suggestion is pending.
func AcceptSuggestion(ap *models.Appointment, now time.Time) error {
	if !ap.HasSuggestion() {
		return ErrNoSuggestionPending
	}
	ap.Date = *ap.SuggestedDate
	ap.Time = *ap.SuggestedTime
	ap.SuggestedDate = nil
	ap.SuggestedTime = nil
	ap.Status = string(StatusConfirmed)
	ap.UpdatedAt = now
	return nil
}

// RejectSuggestion drops the counter-proposal and keeps the original slot.
func RejectSuggestion(ap *models.Appointment, now time.Time) error {
	ap.SuggestedDate = nil
	ap.SuggestedTime = nil
	ap.Status = string(StatusPending)
	ap.UpdatedAt = now
	return nil
}
