package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viddeck/viddeck/internal/domain"
	"github.com/viddeck/viddeck/internal/service"
)

const testTokenSecret = "test-secret-key-long-enough-for-hmac"

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := service.NewTokenService(testTokenSecret, time.Hour)

	signed, err := tokens.Issue("1700000000000", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	identity, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", identity.UserID)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.False(t, identity.IssuedAt.IsZero())
	assert.WithinDuration(t, identity.IssuedAt.Add(time.Hour), identity.ExpiresAt, time.Second)
}

func TestTokenService_DefaultTTLIsSevenDays(t *testing.T) {
	tokens := service.NewTokenService(testTokenSecret, 0)

	signed, err := tokens.Issue("id", "week@example.com")
	require.NoError(t, err)

	identity, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.WithinDuration(t, identity.IssuedAt.Add(7*24*time.Hour), identity.ExpiresAt, time.Second)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := service.NewTokenService(testTokenSecret, -time.Second)

	signed, err := tokens.Issue("id", "late@example.com")
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	tokens := service.NewTokenService(testTokenSecret, time.Hour)

	signed, err := tokens.Issue("id", "tamper@example.com")
	require.NoError(t, err)

	tampered := signed[:len(signed)-4] + "AAAA"
	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := service.NewTokenService(testTokenSecret, time.Hour)
	verifier := service.NewTokenService("a-completely-different-secret-value", time.Hour)

	signed, err := issuer.Issue("id", "secret@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_Malformed(t *testing.T) {
	tokens := service.NewTokenService(testTokenSecret, time.Hour)

	for _, bad := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := tokens.Verify(bad)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "token %q", bad)
	}
}
