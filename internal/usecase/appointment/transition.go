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

// Action names, used for audit events and metrics labels.
const (
	ActionCreate           = "create"
	ActionAccept           = "accept"
	ActionReject           = "reject"
	ActionSuggest          = "suggest"
	ActionAcceptSuggestion = "accept-suggestion"
	ActionRejectSuggestion = "reject-suggestion"
)

// transition holds what every state change needs: load the record, apply
// one domain action under the store lock, then report it.
type transition struct {
	repo    domain.Repository
	clock   clock.Clock
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func (t transition) run(
	ctx context.Context,
	actor auth.Principal,
	action string,
	event string,
	id int64,
	fn domain.Mutation,
) (*models.Appointment, error) {

	ap, err := t.repo.UpdateAppointment(ctx, id, t.clock.Now(), fn)
	t.metrics.ObserveTransition(action, err)
	if err != nil {
		return nil, err
	}

	t.audit.Dispatch(audit.Event{
		ActorType: string(actor.Type),
		ActorID:   actorID(actor),
		Action:    event,
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata:  map[string]string{"status": ap.Status},
	})
	return ap, nil
}

func actorID(p auth.Principal) *int64 {
	if p.ID == 0 {
		return nil
	}
	id := p.ID
	return &id
}
