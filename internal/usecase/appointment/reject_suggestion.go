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

type RejectSuggestion struct {
	transition
}

func NewRejectSuggestion(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
) *RejectSuggestion {
	return &RejectSuggestion{transition{repo: repo, clock: clk, audit: audit, metrics: m}}
}

func (uc *RejectSuggestion) Execute(
	ctx context.Context,
	actor auth.Principal,
	appointmentID int64,
) (*models.Appointment, error) {
	return uc.run(ctx, actor, ActionRejectSuggestion, "appointment_suggestion_rejected", appointmentID, domain.RejectSuggestion)
}
