package appointment

import (
	"context"
	"encoding/json"

	"github.com/VanderIG123/stylists-api/internal/audit"
	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/clock"
	domain "github.com/VanderIG123/stylists-api/internal/domain/appointment"
	"github.com/VanderIG123/stylists-api/internal/metrics"
	"github.com/VanderIG123/stylists-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Actor auth.Principal

	StylistID int64
	UserID    *int64

	Purpose string
	Date    string
	Time    string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Services      []json.RawMessage
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	clock   clock.Clock
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewCreateAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		clock:   clk,
		audit:   audit,
		metrics: m,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Owner of the booking
	// --------------------------------------------------
	userID := in.UserID
	if userID == nil && in.Actor.Type == models.KindUser {
		id := in.Actor.ID
		userID = &id
	}

	ap := &models.Appointment{
		StylistID:     in.StylistID,
		UserID:        userID,
		Purpose:       in.Purpose,
		Date:          in.Date,
		Time:          in.Time,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Services:      models.CloneServices(in.Services),
	}

	// --------------------------------------------------
	// Field rules + initial state
	// --------------------------------------------------
	if err := domain.New(ap, uc.clock.Now()); err != nil {
		uc.metrics.ObserveTransition(ActionCreate, err)
		return nil, err
	}

	// --------------------------------------------------
	// Stylist check + insert (one transaction)
	// --------------------------------------------------
	err := uc.repo.CreateAppointment(ctx, ap)
	uc.metrics.ObserveTransition(ActionCreate, err)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: string(in.Actor.Type),
		ActorID:   actorID(in.Actor),
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata:  map[string]any{"stylist_id": ap.StylistID, "date": ap.Date, "time": ap.Time},
	})

	return ap, nil
}
