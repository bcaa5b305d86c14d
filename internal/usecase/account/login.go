package account

import (
	"context"

	"github.com/VanderIG123/stylists-api/internal/auth"
	domain "github.com/VanderIG123/stylists-api/internal/domain/account"
	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/identity"
	"github.com/VanderIG123/stylists-api/internal/models"
)

type Login struct {
	identity *identity.Service
	repo     domain.Repository
	tokens   *auth.Tokens
}

func NewLogin(ids *identity.Service, repo domain.Repository, tokens *auth.Tokens) *Login {
	return &Login{identity: ids, repo: repo, tokens: tokens}
}

// Execute checks the password and opens a session. Every failure looks the
// same to the caller so emails cannot be probed.
func (uc *Login) Execute(
	ctx context.Context,
	kind models.AccountKind,
	email, password string,
) (*Session, error) {

	ok, err := uc.identity.Verify(ctx, kind, email, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	session := &Session{}
	var id int64
	switch kind {
	case models.KindStylist:
		st, err := uc.repo.GetStylistByEmail(ctx, email)
		if err != nil {
			return nil, profileErr(err)
		}
		session.Stylist, id = st, st.ID
	case models.KindUser:
		u, err := uc.repo.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, profileErr(err)
		}
		session.User, id = u, u.ID
	default:
		return nil, domain.ErrInvalidCredentials
	}

	session.Token, err = uc.tokens.Issue(auth.Principal{ID: id, Email: models.NormalizeEmail(email), Type: kind})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func profileErr(err error) error {
	if kind, ok := httperr.KindOf(err); ok && kind == httperr.KindNotFound {
		return domain.ErrInvalidCredentials
	}
	return err
}
