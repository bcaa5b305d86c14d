// Package identity registers and verifies account credentials. Stylists
// and users live in separate namespaces keyed by normalized email.
package identity

import (
	"context"
	"crypto/subtle"
	"errors"

	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/metrics"
	"github.com/VanderIG123/stylists-api/internal/models"
)

var (
	ErrEmailAlreadyRegistered = httperr.Conflict("email_already_registered", "An account with this email already exists.")
	ErrInvalidRegistration    = httperr.Validation("invalid_request", "Email and password are required.")
)

// CredentialStore is the persistence the service needs. Implementations
// must make InsertCredential and ReplaceCredential atomic.
type CredentialStore interface {
	GetCredential(ctx context.Context, kind models.AccountKind, email string) (models.Credential, bool, error)
	// InsertCredential fails with ErrEmailAlreadyRegistered when the email
	// is taken.
	InsertCredential(ctx context.Context, kind models.AccountKind, email string, cred models.Credential) error
	// ReplaceCredential swaps old for next only if the stored value still
	// equals old, reporting whether it did.
	ReplaceCredential(ctx context.Context, kind models.AccountKind, email string, old, next models.Credential) (bool, error)
	DeleteCredential(ctx context.Context, kind models.AccountKind, email string) error
	CredentialEmails(ctx context.Context, kind models.AccountKind) ([]string, error)
}

type Service struct {
	store   CredentialStore
	hasher  Hasher
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewService(store CredentialStore, hasher Hasher, m *metrics.Metrics, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, hasher: hasher, metrics: m, log: log.Named("identity")}
}

// Register stores a hashed credential for email. Hashing runs before the
// store is locked; the insert itself re-checks uniqueness.
func (s *Service) Register(ctx context.Context, kind models.AccountKind, email, raw string) (models.Credential, error) {
	email = models.NormalizeEmail(email)
	if !kind.Valid() || email == "" || raw == "" {
		return models.Credential{}, ErrInvalidRegistration
	}

	if _, ok, err := s.store.GetCredential(ctx, kind, email); err != nil {
		return models.Credential{}, err
	} else if ok {
		return models.Credential{}, ErrEmailAlreadyRegistered
	}

	hash, err := s.hasher.Hash(raw)
	if err != nil {
		return models.Credential{}, err
	}

	cred := models.Hashed(hash)
	if err := s.store.InsertCredential(ctx, kind, email, cred); err != nil {
		return models.Credential{}, err
	}
	return cred, nil
}

// Verify reports whether raw is the password of (kind, email). Unknown
// emails and undecodable hashes verify as false. A matching legacy
// plaintext credential is upgraded to a hash in place.
func (s *Service) Verify(ctx context.Context, kind models.AccountKind, email, raw string) (bool, error) {
	email = models.NormalizeEmail(email)
	cred, ok, err := s.store.GetCredential(ctx, kind, email)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if !cred.IsLegacy() {
		err := s.hasher.Compare(cred.Hash(), raw)
		if err != nil && !errors.Is(err, ErrMismatch) {
			s.log.Warn("unreadable credential hash", zap.String("kind", string(kind)), zap.Error(err))
		}
		return err == nil, nil
	}

	if subtle.ConstantTimeCompare([]byte(cred.Plaintext()), []byte(raw)) != 1 {
		return false, nil
	}

	// The login already succeeded; a failed upgrade is retried next time.
	if _, err := s.migrate(ctx, kind, email, cred); err != nil {
		s.log.Error("credential migration failed", zap.String("kind", string(kind)), zap.Error(err))
	}
	return true, nil
}

// Revoke removes a credential. Used to undo a registration whose profile
// could not be created.
func (s *Service) Revoke(ctx context.Context, kind models.AccountKind, email string) error {
	return s.store.DeleteCredential(ctx, kind, models.NormalizeEmail(email))
}

// MigrateAll re-hashes every legacy plaintext credential and returns how
// many were upgraded.
func (s *Service) MigrateAll(ctx context.Context) (int, error) {
	migrated := 0
	for _, kind := range models.AccountKinds() {
		emails, err := s.store.CredentialEmails(ctx, kind)
		if err != nil {
			return migrated, err
		}
		for _, email := range emails {
			if err := ctx.Err(); err != nil {
				return migrated, err
			}
			cred, ok, err := s.store.GetCredential(ctx, kind, email)
			if err != nil {
				return migrated, err
			}
			if !ok || !cred.IsLegacy() {
				continue
			}
			done, err := s.migrate(ctx, kind, email, cred)
			if err != nil {
				return migrated, err
			}
			if done {
				migrated++
			}
		}
	}
	return migrated, nil
}

func (s *Service) migrate(ctx context.Context, kind models.AccountKind, email string, legacy models.Credential) (bool, error) {
	hash, err := s.hasher.Hash(legacy.Plaintext())
	if err != nil {
		return false, err
	}
	swapped, err := s.store.ReplaceCredential(ctx, kind, email, legacy, models.Hashed(hash))
	if err != nil {
		return false, err
	}
	if swapped {
		s.metrics.CredentialMigrated()
		s.log.Info("legacy credential re-hashed", zap.String("kind", string(kind)))
	}
	return swapped, nil
}
