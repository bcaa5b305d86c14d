package account

import (
	"context"

	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/clock"
	domain "github.com/VanderIG123/stylists-api/internal/domain/account"
	"github.com/VanderIG123/stylists-api/internal/models"
)

// ======================================================
// Stylists (public reads, owner writes)
// ======================================================

type ListStylists struct {
	repo domain.Repository
}

func NewListStylists(repo domain.Repository) *ListStylists {
	return &ListStylists{repo: repo}
}

func (uc *ListStylists) Execute(ctx context.Context) ([]models.Stylist, error) {
	return uc.repo.ListStylists(ctx)
}

type GetStylist struct {
	repo domain.Repository
}

func NewGetStylist(repo domain.Repository) *GetStylist {
	return &GetStylist{repo: repo}
}

func (uc *GetStylist) Execute(ctx context.Context, id int64) (*models.Stylist, error) {
	return uc.repo.GetStylist(ctx, id)
}

type UpdateStylist struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewUpdateStylist(repo domain.Repository, clk clock.Clock) *UpdateStylist {
	return &UpdateStylist{repo: repo, clock: clk}
}

func (uc *UpdateStylist) Execute(
	ctx context.Context,
	actor auth.Principal,
	id int64,
	patch domain.StylistPatch,
) (*models.Stylist, error) {

	if !actor.Owns(models.KindStylist, id) {
		return nil, domain.ErrForbidden
	}
	return uc.repo.UpdateStylist(ctx, id, uc.clock.Now(), patch.Apply)
}

// ======================================================
// Users (owner only)
// ======================================================

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, actor auth.Principal, id int64) (*models.User, error) {
	if !actor.Owns(models.KindUser, id) {
		return nil, domain.ErrForbidden
	}
	return uc.repo.GetUser(ctx, id)
}

type UpdateUser struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewUpdateUser(repo domain.Repository, clk clock.Clock) *UpdateUser {
	return &UpdateUser{repo: repo, clock: clk}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	actor auth.Principal,
	id int64,
	patch domain.UserPatch,
) (*models.User, error) {

	if !actor.Owns(models.KindUser, id) {
		return nil, domain.ErrForbidden
	}
	return uc.repo.UpdateUser(ctx, id, uc.clock.Now(), patch.Apply)
}
