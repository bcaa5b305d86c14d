package appointment

import (
	"context"
	"time"

	"github.com/VanderIG123/stylists-api/internal/audit"
	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/clock"
	domain "github.com/VanderIG123/stylists-api/internal/domain/appointment"
	"github.com/VanderIG123/stylists-api/internal/metrics"
	"github.com/VanderIG123/stylists-api/internal/models"
)

type SuggestAppointmentInput struct {
	Actor         auth.Principal
	AppointmentID int64
	SuggestedDate string
	SuggestedTime string
}

// SuggestAlternative records a counter-proposal for the slot.
type SuggestAlternative struct {
	transition
}

func NewSuggestAlternative(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
) *SuggestAlternative {
	return &SuggestAlternative{transition{repo: repo, clock: clk, audit: audit, metrics: m}}
}

func (uc *SuggestAlternative) Execute(
	ctx context.Context,
	in SuggestAppointmentInput,
) (*models.Appointment, error) {

	// Reject malformed slots before touching the store so a bad request
	// never reports appointment_not_found instead.
	if !domain.ValidDate(in.SuggestedDate) || !domain.ValidTime(in.SuggestedTime) {
		uc.metrics.ObserveTransition(ActionSuggest, domain.ErrInvalidDateOrTime)
		return nil, domain.ErrInvalidDateOrTime
	}

	return uc.run(ctx, in.Actor, ActionSuggest, "appointment_suggested", in.AppointmentID,
		func(ap *models.Appointment, now time.Time) error {
			return domain.Suggest(ap, in.SuggestedDate, in.SuggestedTime, now)
		})
}
