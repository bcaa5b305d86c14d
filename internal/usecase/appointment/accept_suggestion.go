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

type AcceptSuggestion struct {
	transition
}

func NewAcceptSuggestion(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
) *AcceptSuggestion {
	return &AcceptSuggestion{transition{repo: repo, clock: clk, audit: audit, metrics: m}}
}

func (uc *AcceptSuggestion) Execute(
	ctx context.Context,
	actor auth.Principal,
	appointmentID int64,
) (*models.Appointment, error) {
	return uc.run(ctx, actor, ActionAcceptSuggestion, "appointment_suggestion_accepted", appointmentID, domain.AcceptSuggestion)
}
