package appointment

import (
	"context"

	domain "github.com/VanderIG123/stylists-api/internal/domain/appointment"
	"github.com/VanderIG123/stylists-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns matching appointments, latest slot first. Every call
// reads the current state; nothing is cached.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, filter)
}
