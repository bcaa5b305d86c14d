package account

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/audit"
	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/clock"
	domain "github.com/VanderIG123/stylists-api/internal/domain/account"
	"github.com/VanderIG123/stylists-api/internal/identity"
	"github.com/VanderIG123/stylists-api/internal/models"
)

// Session is what register and login hand back to the client.
type Session struct {
	Token   string          `json:"token"`
	Stylist *models.Stylist `json:"stylist,omitempty"`
	User    *models.User    `json:"user,omitempty"`
}

// EmailCheck reports whether an address can receive mail. Nil skips the
// check.
type EmailCheck func(email string) bool

// ======================================================
// INPUT
// ======================================================

type RegisterStylistInput struct {
	Email    string
	Password string

	Name           string
	Phone          string
	Address        string
	Specialties    []string
	Experience     int
	Bio            string
	HourlyRate     float64
	Availability   string
	Services       []models.StylistService
	ProfilePicture string
}

type RegisterUserInput struct {
	Email    string
	Password string

	Name           string
	Phone          string
	Address        string
	Preferences    []string
	ProfilePicture string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	identity   *identity.Service
	repo       domain.Repository
	tokens     *auth.Tokens
	clock      clock.Clock
	audit      *audit.Dispatcher
	emailCheck EmailCheck
	log        *zap.Logger
}

func NewRegister(
	ids *identity.Service,
	repo domain.Repository,
	tokens *auth.Tokens,
	clk clock.Clock,
	audit *audit.Dispatcher,
	emailCheck EmailCheck,
	log *zap.Logger,
) *Register {
	if log == nil {
		log = zap.NewNop()
	}
	return &Register{
		identity:   ids,
		repo:       repo,
		tokens:     tokens,
		clock:      clk,
		audit:      audit,
		emailCheck: emailCheck,
		log:        log,
	}
}

func (uc *Register) Stylist(ctx context.Context, in RegisterStylistInput) (*Session, error) {
	st := &models.Stylist{
		Name:           strings.TrimSpace(in.Name),
		Phone:          in.Phone,
		Address:        in.Address,
		Specialties:    nonNil(in.Specialties),
		Experience:     in.Experience,
		Bio:            in.Bio,
		HourlyRate:     in.HourlyRate,
		Availability:   in.Availability,
		Services:       nonNil(in.Services),
		Portfolio:      []string{},
		ProfilePicture: in.ProfilePicture,
	}

	p, err := uc.register(ctx, models.KindStylist, in.Email, in.Password, st.Name,
		func(email string, now time.Time) (int64, error) {
			st.Email = email
			st.CreatedAt = now
			st.UpdatedAt = now
			err := uc.repo.CreateStylist(ctx, st)
			return st.ID, err
		})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(p)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, Stylist: st}, nil
}

func (uc *Register) User(ctx context.Context, in RegisterUserInput) (*Session, error) {
	u := &models.User{
		Name:           strings.TrimSpace(in.Name),
		Phone:          in.Phone,
		Address:        in.Address,
		Preferences:    nonNil(in.Preferences),
		ProfilePicture: in.ProfilePicture,
	}

	p, err := uc.register(ctx, models.KindUser, in.Email, in.Password, u.Name,
		func(email string, now time.Time) (int64, error) {
			u.Email = email
			u.CreatedAt = now
			u.UpdatedAt = now
			err := uc.repo.CreateUser(ctx, u)
			return u.ID, err
		})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(p)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u}, nil
}

// register stores the credential first, then the profile. A profile that
// cannot be created takes its credential with it.
func (uc *Register) register(
	ctx context.Context,
	kind models.AccountKind,
	email, password, name string,
	create func(email string, now time.Time) (int64, error),
) (auth.Principal, error) {

	email = models.NormalizeEmail(email)
	if name == "" {
		return auth.Principal{}, domain.ErrNameRequired
	}
	if uc.emailCheck != nil && !uc.emailCheck(email) {
		return auth.Principal{}, domain.ErrInvalidEmailDomain
	}

	if _, err := uc.identity.Register(ctx, kind, email, password); err != nil {
		return auth.Principal{}, err
	}

	id, err := create(email, uc.clock.Now())
	if err != nil {
		if rerr := uc.identity.Revoke(context.WithoutCancel(ctx), kind, email); rerr != nil {
			uc.log.Error("orphan credential left after failed registration",
				zap.String("kind", string(kind)), zap.Error(rerr))
		}
		return auth.Principal{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: string(kind),
		ActorID:   &id,
		Action:    "account_registered",
		Entity:    string(kind),
		EntityID:  &id,
	})

	return auth.Principal{ID: id, Email: email, Type: kind}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
