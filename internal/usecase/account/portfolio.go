package account

import (
	"context"
	"time"

	"github.com/VanderIG123/stylists-api/internal/audit"
	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/clock"
	domain "github.com/VanderIG123/stylists-api/internal/domain/account"
	"github.com/VanderIG123/stylists-api/internal/media"
	"github.com/VanderIG123/stylists-api/internal/models"
)

type UploadPortfolio struct {
	repo  domain.Repository
	media media.Store
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewUploadPortfolio(
	repo domain.Repository,
	store media.Store,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *UploadPortfolio {
	return &UploadPortfolio{repo: repo, media: store, clock: clk, audit: audit}
}

func (uc *UploadPortfolio) Execute(
	ctx context.Context,
	actor auth.Principal,
	stylistID int64,
	data []byte,
) (*models.Stylist, error) {

	if !actor.Owns(models.KindStylist, stylistID) {
		return nil, domain.ErrForbidden
	}
	if _, err := uc.repo.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	img, err := media.Normalize(data, media.MaxEdge)
	if err != nil {
		return nil, err
	}

	url, err := uc.media.Put(ctx, media.PortfolioKey(stylistID), img, media.ContentType)
	if err != nil {
		return nil, err
	}

	st, err := uc.repo.UpdateStylist(ctx, stylistID, uc.clock.Now(),
		func(st *models.Stylist, now time.Time) error {
			st.Portfolio = append(st.Portfolio, url)
			st.UpdatedAt = now
			return nil
		})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: string(actor.Type),
		ActorID:   &stylistID,
		Action:    "portfolio_image_added",
		Entity:    "stylist",
		EntityID:  &stylistID,
		Metadata:  map[string]string{"url": url},
	})
	return st, nil
}
