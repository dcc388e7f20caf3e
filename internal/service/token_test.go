package service

import (
	"testing"
	"time"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("user-a", "a@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-a", userID)
}

func TestTokenSubjectIntegrity(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	tokenA, err := m.Issue("user-a", "a@example.com")
	require.NoError(t, err)
	tokenB, err := m.Issue("user-b", "b@example.com")
	require.NoError(t, err)

	idA, err := m.Verify(tokenA)
	require.NoError(t, err)
	idB, err := m.Verify(tokenB)
	require.NoError(t, err)

	assert.NotEqual(t, idA, idB)
	assert.Equal(t, "user-a", idA)
	assert.Equal(t, "user-b", idB)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("user-a", "a@example.com")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenBadSignature(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.Issue("user-a", "a@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenSignature)
}

func TestTokenMalformed(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "abc.def"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Verify(tc.token)
			assert.ErrorIs(t, err, domain.ErrTokenMalformed)
		})
	}
}
