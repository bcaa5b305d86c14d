package identity_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/identity"
	"github.com/VanderIG123/stylists-api/internal/infra/repository"
	"github.com/VanderIG123/stylists-api/internal/metrics"
	"github.com/VanderIG123/stylists-api/internal/models"
	"github.com/VanderIG123/stylists-api/internal/storage"
	"github.com/VanderIG123/stylists-api/internal/store"
)

func openStore(t *testing.T, dir string) *store.Store {
	t.Helper()
	p, err := storage.NewFilePersister(dir)
	require.NoError(t, err)
	s, err := store.Open(context.Background(), p, nil, store.Options{})
	require.NoError(t, err)
	return s
}

func newService(s *store.Store, m *metrics.Metrics) *identity.Service {
	return identity.NewService(
		repository.NewCredentialStoreRepository(s),
		identity.NewBcryptHasher(bcrypt.MinCost),
		m,
		nil,
	)
}

func TestRegisterThenVerify(t *testing.T) {
	ctx := context.Background()
	svc := newService(openStore(t, t.TempDir()), nil)

	cred, err := svc.Register(ctx, models.KindUser, "  Jo@Example.COM ", "hunter22")
	require.NoError(t, err)
	assert.False(t, cred.IsLegacy())

	ok, err := svc.Verify(ctx, models.KindUser, "jo@example.com", "hunter22")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, models.KindUser, "jo@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Verify(ctx, models.KindStylist, "jo@example.com", "hunter22")
	require.NoError(t, err)
	assert.False(t, ok, "kinds do not share credentials")
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newService(openStore(t, t.TempDir()), nil)

	_, err := svc.Register(ctx, models.KindStylist, "amara@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.KindStylist, "AMARA@example.com ", "secret2")
	assert.True(t, httperr.IsBusiness(err, "email_already_registered"))
	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindConflict, kind)

	_, err = svc.Register(ctx, models.KindUser, "amara@example.com", "secret3")
	assert.NoError(t, err, "same email may exist in the other namespace")
}

func TestRegister_RejectsEmptyInput(t *testing.T) {
	svc := newService(openStore(t, t.TempDir()), nil)

	_, err := svc.Register(context.Background(), models.KindUser, "   ", "pw")
	assert.ErrorIs(t, err, identity.ErrInvalidRegistration)

	_, err = svc.Register(context.Background(), models.KindUser, "a@b.c", "")
	assert.ErrorIs(t, err, identity.ErrInvalidRegistration)
}

func TestRegister_ConcurrentSameEmailOnlyOneWins(t *testing.T) {
	svc := newService(openStore(t, t.TempDir()), nil)

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Register(context.Background(), models.KindUser, "race@example.com", "pw123456"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, successes)
}

const migrationsHeader = `
# HELP stylists_credential_migrations_total Legacy plaintext credentials re-hashed after a successful login.
# TYPE stylists_credential_migrations_total counter
`

func assertMigrations(t *testing.T, m *metrics.Metrics, n int) {
	t.Helper()
	expected := migrationsHeader + fmt.Sprintf("stylists_credential_migrations_total %d\n", n)
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "stylists_credential_migrations_total"))
}

func seedLegacy(t *testing.T, s *store.Store, kind models.AccountKind, email, plain string) {
	t.Helper()
	require.NoError(t, s.Write(context.Background(), func(tx *store.Tx) error {
		tx.PutCredential(kind, email, models.LegacyPlaintext(plain))
		return nil
	}))
}

func TestVerify_LegacyPlaintextIsMigrated(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := openStore(t, dir)
	seedLegacy(t, s, models.KindStylist, "old@example.com", "letmein")

	m := metrics.New()
	svc := newService(s, m)

	ok, err := svc.Verify(ctx, models.KindStylist, "old@example.com", "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assertMigrations(t, m, 0)

	ok, err = svc.Verify(ctx, models.KindStylist, " OLD@example.com", "letmein")
	require.NoError(t, err)
	assert.True(t, ok)
	assertMigrations(t, m, 1)

	// The upgrade reached disk.
	reopened := openStore(t, dir)
	require.NoError(t, reopened.Read(func(tx *store.Tx) error {
		cred, found := tx.Credential(models.KindStylist, "old@example.com")
		require.True(t, found)
		assert.False(t, cred.IsLegacy())
		assert.NoError(t, bcrypt.CompareHashAndPassword(cred.Hash(), []byte("letmein")))
		return nil
	}))

	ok, err = newService(reopened, nil).Verify(ctx, models.KindStylist, "old@example.com", "letmein")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_UnknownEmailFailsClosed(t *testing.T) {
	ok, err := newService(openStore(t, t.TempDir()), nil).Verify(context.Background(), models.KindUser, "ghost@example.com", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_CorruptHashFailsClosed(t *testing.T) {
	s := openStore(t, t.TempDir())
	require.NoError(t, s.Write(context.Background(), func(tx *store.Tx) error {
		tx.PutCredential(models.KindUser, "x@example.com", models.Hashed([]byte("$2a$10$short")))
		return nil
	}))

	ok, err := newService(s, nil).Verify(context.Background(), models.KindUser, "x@example.com", "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	svc := newService(openStore(t, t.TempDir()), nil)

	_, err := svc.Register(ctx, models.KindUser, "gone@example.com", "pw123456")
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(ctx, models.KindUser, "Gone@example.com"))

	_, err = svc.Register(ctx, models.KindUser, "gone@example.com", "pw123456")
	assert.NoError(t, err, "email is free again")
}

func TestMigrateAll(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())
	seedLegacy(t, s, models.KindStylist, "a@example.com", "one")
	seedLegacy(t, s, models.KindUser, "b@example.com", "two")

	m := metrics.New()
	svc := newService(s, m)
	_, err := svc.Register(ctx, models.KindUser, "c@example.com", "three")
	require.NoError(t, err)

	n, err := svc.MigrateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assertMigrations(t, m, 2)

	n, err = svc.MigrateAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	for email, pw := range map[string]string{"b@example.com": "two", "c@example.com": "three"} {
		ok, err := svc.Verify(ctx, models.KindUser, email, pw)
		require.NoError(t, err)
		assert.True(t, ok, email)
	}
}
