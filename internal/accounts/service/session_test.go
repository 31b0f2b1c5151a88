package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestIssueCookie(t *testing.T) {
	f := newFixture(t, cryptox.Argon2id)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	f.sessions.Now = func() time.Time { return now }

	c, err := f.sessions.Issue("user-1")
	require.NoError(t, err)
	require.Equal(t, "jwt", c.Name)
	require.Equal(t, "/", c.Path)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, "Strict", c.SameSite)
	require.Equal(t, 864000, c.MaxAge)
	require.Equal(t, now.Add(10*24*time.Hour), c.Expires)

	require.NotEmpty(t, c.Value)
}

func TestVerifyRoundTrip(t *testing.T) {
	f := newFixture(t, cryptox.Argon2id)

	c, err := f.sessions.Issue("user-42")
	require.NoError(t, err)

	id, err := f.sessions.Verify(c.Value)
	require.NoError(t, err)
	require.Equal(t, "user-42", id)
}

func TestVerifyFailsClosed(t *testing.T) {
	f := newFixture(t, cryptox.Argon2id)

	valid, err := f.sessions.Issue("user-42")
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := f.sessions.Verify("")
		require.ErrorIs(t, err, service.ErrNoToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := f.sessions.Verify("garbage")
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("tampered", func(t *testing.T) {
		tampered := flip(valid.Value)
		_, err := f.sessions.Verify(tampered)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := *f.sessions
		past.Now = func() time.Time { return time.Now().Add(-11 * 24 * time.Hour) }
		old, err := past.Issue("user-42")
		require.NoError(t, err)

		_, err = f.sessions.Verify(old.Value)
		require.ErrorIs(t, err, service.ErrInvalidToken)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("other secret", func(t *testing.T) {
		signer, _, err := jwtx.NewPair(jwtx.AlgHS256, "", []byte(strings.Repeat("x", 32)), testIssuer)
		require.NoError(t, err)
		tok, err := signer.Sign(jwtx.NewSessionClaims("user-42", testIssuer, time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = f.sessions.Verify(tok)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})
}

func TestClearCookie(t *testing.T) {
	f := newFixture(t, cryptox.Argon2id)

	c := f.sessions.Clear()
	require.Equal(t, "jwt", c.Name)
	require.Empty(t, c.Value)
	require.True(t, c.HttpOnly)
	require.Equal(t, int64(0), c.Expires.Unix())
}

// flip changes one character inside the signature so it no longer matches.
func flip(token string) string {
	b := []byte(token)
	i := len(b) - 10
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}
