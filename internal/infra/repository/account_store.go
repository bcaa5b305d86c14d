package repository

import (
	"context"
	"time"

	domain "github.com/VanderIG123/stylists-api/internal/domain/account"
	"github.com/VanderIG123/stylists-api/internal/identity"
	"github.com/VanderIG123/stylists-api/internal/models"
	"github.com/VanderIG123/stylists-api/internal/store"
)

type AccountStoreRepository struct {
	store *store.Store
}

func NewAccountStoreRepository(s *store.Store) *AccountStoreRepository {
	return &AccountStoreRepository{store: s}
}

// --------------------------------------------------
// Stylists
// --------------------------------------------------

func (r *AccountStoreRepository) ListStylists(_ context.Context) ([]models.Stylist, error) {
	var out []models.Stylist
	err := r.store.Read(func(tx *store.Tx) error {
		all := tx.Stylists()
		out = make([]models.Stylist, 0, len(all))
		for _, st := range all {
			out = append(out, st.Clone())
		}
		return nil
	})
	return out, err
}

func (r *AccountStoreRepository) GetStylist(_ context.Context, id int64) (*models.Stylist, error) {
	var out models.Stylist
	err := r.store.Read(func(tx *store.Tx) error {
		st, ok := tx.Stylist(id)
		if !ok {
			return domain.ErrStylistNotFound
		}
		out = st.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AccountStoreRepository) GetStylistByEmail(_ context.Context, email string) (*models.Stylist, error) {
	var out models.Stylist
	err := r.store.Read(func(tx *store.Tx) error {
		st, ok := tx.StylistByEmail(email)
		if !ok {
			return domain.ErrStylistNotFound
		}
		out = st.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AccountStoreRepository) CreateStylist(ctx context.Context, st *models.Stylist) error {
	return r.store.Write(ctx, func(tx *store.Tx) error {
		if _, taken := tx.StylistByEmail(st.Email); taken {
			return identity.ErrEmailAlreadyRegistered
		}
		stored := st.Clone()
		tx.InsertStylist(&stored)
		st.ID = stored.ID
		return nil
	})
}

func (r *AccountStoreRepository) UpdateStylist(
	ctx context.Context,
	id int64,
	now time.Time,
	fn func(st *models.Stylist, now time.Time) error,
) (*models.Stylist, error) {

	var out models.Stylist
	err := r.store.Write(ctx, func(tx *store.Tx) error {
		st, ok := tx.Stylist(id)
		if !ok {
			return domain.ErrStylistNotFound
		}
		next := st.Clone()
		if err := fn(&next, now); err != nil {
			return err
		}
		*st = next
		tx.Touch(store.Stylists)
		out = st.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AccountStoreRepository) GetUser(_ context.Context, id int64) (*models.User, error) {
	var out models.User
	err := r.store.Read(func(tx *store.Tx) error {
		u, ok := tx.User(id)
		if !ok {
			return domain.ErrUserNotFound
		}
		out = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AccountStoreRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	var out models.User
	err := r.store.Read(func(tx *store.Tx) error {
		u, ok := tx.UserByEmail(email)
		if !ok {
			return domain.ErrUserNotFound
		}
		out = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AccountStoreRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.store.Write(ctx, func(tx *store.Tx) error {
		if _, taken := tx.UserByEmail(u.Email); taken {
			return identity.ErrEmailAlreadyRegistered
		}
		stored := u.Clone()
		tx.InsertUser(&stored)
		u.ID = stored.ID
		return nil
	})
}

func (r *AccountStoreRepository) UpdateUser(
	ctx context.Context,
	id int64,
	now time.Time,
	fn func(u *models.User, now time.Time) error,
) (*models.User, error) {

	var out models.User
	err := r.store.Write(ctx, func(tx *store.Tx) error {
		u, ok := tx.User(id)
		if !ok {
			return domain.ErrUserNotFound
		}
		next := u.Clone()
		if err := fn(&next, now); err != nil {
			return err
		}
		*u = next
		tx.Touch(store.Users)
		out = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

var _ domain.Repository = (*AccountStoreRepository)(nil)
