package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanderIG123/stylists-api/internal/models"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	p := Principal{ID: 42, Email: "amara@example.com", Type: models.KindStylist}

	signed, err := tokens.Issue(p)
	require.NoError(t, err)

	got, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestTokens_RejectsWrongSecret(t *testing.T) {
	signed, err := NewTokens("one", time.Hour).Issue(Principal{ID: 1, Type: models.KindUser})
	require.NoError(t, err)

	_, err = NewTokens("two", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_RejectsExpired(t *testing.T) {
	tokens := NewTokens("s", time.Minute)
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issued }

	signed, err := tokens.Issue(Principal{ID: 1, Type: models.KindUser})
	require.NoError(t, err)

	tokens.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_RejectsUnknownAccountType(t *testing.T) {
	claims := Claims{
		Type: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = NewTokens("s", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPrincipal_Owns(t *testing.T) {
	p := Principal{ID: 3, Type: models.KindUser}
	assert.True(t, p.Owns(models.KindUser, 3))
	assert.False(t, p.Owns(models.KindStylist, 3))
	assert.False(t, p.Owns(models.KindUser, 4))
}
