package repository

import (
	"context"

	"github.com/VanderIG123/stylists-api/internal/identity"
	"github.com/VanderIG123/stylists-api/internal/models"
	"github.com/VanderIG123/stylists-api/internal/store"
)

type CredentialStoreRepository struct {
	store *store.Store
}

func NewCredentialStoreRepository(s *store.Store) *CredentialStoreRepository {
	return &CredentialStoreRepository{store: s}
}

func (r *CredentialStoreRepository) GetCredential(
	_ context.Context,
	kind models.AccountKind,
	email string,
) (models.Credential, bool, error) {

	var (
		cred models.Credential
		ok   bool
	)
	err := r.store.Read(func(tx *store.Tx) error {
		cred, ok = tx.Credential(kind, email)
		return nil
	})
	return cred, ok, err
}

func (r *CredentialStoreRepository) InsertCredential(
	ctx context.Context,
	kind models.AccountKind,
	email string,
	cred models.Credential,
) error {
	return r.store.Write(ctx, func(tx *store.Tx) error {
		if _, taken := tx.Credential(kind, email); taken {
			return identity.ErrEmailAlreadyRegistered
		}
		tx.PutCredential(kind, email, cred)
		return nil
	})
}

func (r *CredentialStoreRepository) ReplaceCredential(
	ctx context.Context,
	kind models.AccountKind,
	email string,
	old, next models.Credential,
) (bool, error) {

	swapped := false
	err := r.store.Write(ctx, func(tx *store.Tx) error {
		current, ok := tx.Credential(kind, email)
		if !ok || !current.Equal(old) {
			return nil
		}
		tx.PutCredential(kind, email, next)
		swapped = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return swapped, nil
}

func (r *CredentialStoreRepository) DeleteCredential(
	ctx context.Context,
	kind models.AccountKind,
	email string,
) error {
	return r.store.Write(ctx, func(tx *store.Tx) error {
		tx.DeleteCredential(kind, email)
		return nil
	})
}

func (r *CredentialStoreRepository) CredentialEmails(
	_ context.Context,
	kind models.AccountKind,
) ([]string, error) {

	var out []string
	err := r.store.Read(func(tx *store.Tx) error {
		out = tx.CredentialEmails(kind)
		return nil
	})
	return out, err
}

var _ identity.CredentialStore = (*CredentialStoreRepository)(nil)
