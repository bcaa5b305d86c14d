package appointment

import (
	"context"
	"time"

	"github.com/VanderIG123/stylists-api/internal/models"
)

// Mutation changes one stored appointment in place. Returning an error
// leaves the stored record as it was.
type Mutation func(ap *models.Appointment, now time.Time) error

type Repository interface {
	// -------- Appointment (create) --------

	// CreateAppointment checks that the stylist exists and stores ap with a
	// freshly allocated id, atomically. Fails with ErrStylistNotFound.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------

	// UpdateAppointment applies fn to the stored appointment and persists
	// it. Fails with ErrAppointmentNotFound.
	UpdateAppointment(
		ctx context.Context,
		id int64,
		now time.Time,
		fn Mutation,
	) (*models.Appointment, error)

	// -------- Listing --------

	ListAppointments(
		ctx context.Context,
		filter Filter,
	) ([]models.Appointment, error)
}
