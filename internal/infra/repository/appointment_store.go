package repository

import (
	"context"
	"time"

	domain "github.com/VanderIG123/stylists-api/internal/domain/appointment"
	"github.com/VanderIG123/stylists-api/internal/models"
	"github.com/VanderIG123/stylists-api/internal/store"
)

type AppointmentStoreRepository struct {
	store *store.Store
}

func NewAppointmentStoreRepository(s *store.Store) *AppointmentStoreRepository {
	return &AppointmentStoreRepository{store: s}
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

func (r *AppointmentStoreRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.store.Write(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Stylist(ap.StylistID); !ok {
			return domain.ErrStylistNotFound
		}
		stored := ap.Clone()
		tx.InsertAppointment(&stored)
		ap.ID = stored.ID
		return nil
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentStoreRepository) UpdateAppointment(
	ctx context.Context,
	id int64,
	now time.Time,
	fn domain.Mutation,
) (*models.Appointment, error) {

	var out models.Appointment
	err := r.store.Write(ctx, func(tx *store.Tx) error {
		ap, ok := tx.Appointment(id)
		if !ok {
			return domain.ErrAppointmentNotFound
		}

		// Mutate a copy so a failed transition never leaves a partial edit.
		next := ap.Clone()
		if err := fn(&next, now); err != nil {
			return err
		}
		*ap = next
		tx.Touch(store.Appointments)

		out = ap.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentStoreRepository) ListAppointments(
	_ context.Context,
	filter domain.Filter,
) ([]models.Appointment, error) {

	var out []models.Appointment
	err := r.store.Read(func(tx *store.Tx) error {
		out = domain.Select(tx.Appointments(), filter)
		return nil
	})
	return out, err
}

// Compile-time check
var _ domain.Repository = (*AppointmentStoreRepository)(nil)
