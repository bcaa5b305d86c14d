package appointment

import (
	"context"

	"github.com/VanderIG123/stylists-api/internal/audit"
	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/clock"
	domain "github.com/VanderIG123/stylists-api/internal/domain/appointment"
	"github.com/VanderIG123/stylists-api/internal/metrics"
	"github.com/VanderIG123/stylists-api/internal/models"
)

type RejectAppointment struct {
	transition
}

func NewRejectAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
) *RejectAppointment {
	return &RejectAppointment{transition{repo: repo, clock: clk, audit: audit, metrics: m}}
}

func (uc *RejectAppointment) Execute(
	ctx context.Context,
	actor auth.Principal,
	appointmentID int64,
) (*models.Appointment, error) {
	return uc.run(ctx, actor, ActionReject, "appointment_rejected", appointmentID, domain.Reject)
}
