package account

import (
	"context"
	"time"

	"github.com/VanderIG123/stylists-api/internal/models"
)

// Repository reads and writes profiles. Update callbacks run on a copy
// under the store lock; the copy is kept only when fn succeeds.
type Repository interface {
	ListStylists(ctx context.Context) ([]models.Stylist, error)
	GetStylist(ctx context.Context, id int64) (*models.Stylist, error)
	GetStylistByEmail(ctx context.Context, email string) (*models.Stylist, error)
	CreateStylist(ctx context.Context, st *models.Stylist) error
	UpdateStylist(ctx context.Context, id int64, now time.Time, fn func(st *models.Stylist, now time.Time) error) (*models.Stylist, error)

	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, id int64, now time.Time, fn func(u *models.User, now time.Time) error) (*models.User, error)
}
