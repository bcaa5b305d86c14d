package account

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/VanderIG123/stylists-api/internal/audit"
	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/clock"
	domain "github.com/VanderIG123/stylists-api/internal/domain/account"
	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/identity"
	"github.com/VanderIG123/stylists-api/internal/infra/repository"
	"github.com/VanderIG123/stylists-api/internal/media"
	"github.com/VanderIG123/stylists-api/internal/models"
	"github.com/VanderIG123/stylists-api/internal/storage"
	"github.com/VanderIG123/stylists-api/internal/store"
)

var start = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store    *store.Store
	clock    *clock.Manual
	tokens   *auth.Tokens
	identity *identity.Service
	repo     *repository.AccountStoreRepository

	register *Register
	login    *Login
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	p, err := storage.NewFilePersister(t.TempDir())
	require.NoError(t, err)
	s, err := store.Open(context.Background(), p, nil, store.Options{SeedStylists: store.DefaultStylists(start)})
	require.NoError(t, err)

	dispatcher := audit.NewDispatcher(audit.New(zap.NewNop()), zap.NewNop())
	t.Cleanup(dispatcher.Close)

	f := &fixture{
		store:  s,
		clock:  clock.NewManual(start),
		tokens: auth.NewTokens("test-secret", time.Hour),
		identity: identity.NewService(
			repository.NewCredentialStoreRepository(s),
			identity.NewBcryptHasher(bcrypt.MinCost),
			nil, nil,
		),
		repo: repository.NewAccountStoreRepository(s),
	}
	f.register = NewRegister(f.identity, f.repo, f.tokens, f.clock, dispatcher, nil, nil)
	f.login = NewLogin(f.identity, f.repo, f.tokens)
	return f
}

func TestRegisterStylist_IssuesTokenForNewProfile(t *testing.T) {
	f := newFixture(t)

	session, err := f.register.Stylist(context.Background(), RegisterStylistInput{
		Email: " Nia@Example.com ", Password: "secret12", Name: "Nia", Specialties: []string{"locs"},
	})
	require.NoError(t, err)
	require.NotNil(t, session.Stylist)
	assert.Nil(t, session.User)
	assert.Equal(t, int64(4), session.Stylist.ID, "seeded stylists keep ids 1-3")
	assert.Equal(t, "nia@example.com", session.Stylist.Email)
	assert.Equal(t, []string{}, session.Stylist.Portfolio)

	p, err := f.tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.Principal{ID: 4, Email: "nia@example.com", Type: models.KindStylist}, p)
}

func TestRegisterUser_DuplicateIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.User(ctx, RegisterUserInput{Email: "jo@example.com", Password: "secret12", Name: "Jo"})
	require.NoError(t, err)

	_, err = f.register.User(ctx, RegisterUserInput{Email: "JO@example.com", Password: "other123", Name: "Jo 2"})
	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindConflict, kind)
}

func TestRegister_ProfileFailureRevokesCredential(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A seeded stylist owns the email but has no credential yet.
	_, err := f.register.Stylist(ctx, RegisterStylistInput{Email: "amara@example.com", Password: "secret12", Name: "Imposter"})
	assert.ErrorIs(t, err, identity.ErrEmailAlreadyRegistered)

	ok, err := f.identity.Verify(ctx, models.KindStylist, "amara@example.com", "secret12")
	require.NoError(t, err)
	assert.False(t, ok, "credential was rolled back")
}

func TestRegister_EmailCheck(t *testing.T) {
	f := newFixture(t)
	f.register.emailCheck = func(string) bool { return false }

	_, err := f.register.User(context.Background(), RegisterUserInput{Email: "x@nowhere.invalid", Password: "secret12", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmailDomain)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.register.User(ctx, RegisterUserInput{Email: "jo@example.com", Password: "secret12", Name: "Jo"})
	require.NoError(t, err)

	session, err := f.login.Execute(ctx, models.KindUser, "Jo@Example.com", "secret12")
	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Equal(t, reg.User.ID, session.User.ID)

	_, err = f.login.Execute(ctx, models.KindUser, "jo@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.login.Execute(ctx, models.KindStylist, "jo@example.com", "secret12")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_LegacyCredentialOfSeededStylist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Write(ctx, func(tx *store.Tx) error {
		tx.PutCredential(models.KindStylist, "diego@example.com", models.LegacyPlaintext("fade2024"))
		return nil
	}))

	session, err := f.login.Execute(ctx, models.KindStylist, "diego@example.com", "fade2024")
	require.NoError(t, err)
	assert.Equal(t, int64(2), session.Stylist.ID)

	require.NoError(t, f.store.Read(func(tx *store.Tx) error {
		cred, _ := tx.Credential(models.KindStylist, "diego@example.com")
		assert.False(t, cred.IsLegacy())
		return nil
	}))
}

func TestUpdateStylist_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateStylist(f.repo, f.clock)
	bio := "New bio"

	_, err := uc.Execute(context.Background(), auth.Principal{ID: 2, Type: models.KindStylist}, 1, domain.StylistPatch{Bio: &bio})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Execute(context.Background(), auth.Principal{ID: 1, Type: models.KindUser}, 1, domain.StylistPatch{Bio: &bio})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	f.clock.Advance(time.Hour)
	st, err := uc.Execute(context.Background(), auth.Principal{ID: 1, Type: models.KindStylist}, 1, domain.StylistPatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "New bio", st.Bio)
	assert.Equal(t, "Amara Okafor", st.Name)
	assert.Equal(t, start.Add(time.Hour), st.UpdatedAt)
}

func TestGetUser_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	reg, err := f.register.User(context.Background(), RegisterUserInput{Email: "jo@example.com", Password: "secret12", Name: "Jo"})
	require.NoError(t, err)

	uc := NewGetUser(f.repo)
	_, err = uc.Execute(context.Background(), auth.Principal{ID: reg.User.ID + 1, Type: models.KindUser}, reg.User.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	u, err := uc.Execute(context.Background(), auth.Principal{ID: reg.User.ID, Type: models.KindUser}, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jo", u.Name)
}

func TestUploadPortfolio(t *testing.T) {
	f := newFixture(t)
	disk, err := media.NewDiskStore(t.TempDir(), "/media")
	require.NoError(t, err)
	uc := NewUploadPortfolio(f.repo, disk, f.clock, audit.NewDispatcher(audit.New(zap.NewNop()), zap.NewNop()))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 10))))

	owner := auth.Principal{ID: 3, Type: models.KindStylist}
	st, err := uc.Execute(context.Background(), owner, 3, buf.Bytes())
	require.NoError(t, err)
	require.Len(t, st.Portfolio, 1)
	assert.Regexp(t, `^/media/portfolio/3/.+\.webp$`, st.Portfolio[0])

	_, err = uc.Execute(context.Background(), owner, 3, []byte("nope"))
	assert.ErrorIs(t, err, media.ErrInvalidImage)

	_, err = uc.Execute(context.Background(), owner, 1, buf.Bytes())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
