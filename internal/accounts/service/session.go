package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

// SessionCookie tells the transport which cookie to set. It mirrors the
// attributes of http.Cookie that matter for sessions.
type SessionCookie struct {
	Name     string
	Value    string
	Path     string
	Expires  time.Time
	MaxAge   int // seconds; 0 means no Max-Age attribute
	HttpOnly bool
	Secure   bool
	SameSite string // "Strict", "Lax" or "None"
}

// SessionService issues, clears and verifies stateless session tokens.
type SessionService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string

	// TTL defaults to jwtx.DefaultSessionTTL.
	TTL time.Duration

	// Secure marks cookies Secure. Off only in development.
	Secure bool

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Issue signs a token for userID and returns the cookie that carries it.
func (s *SessionService) Issue(userID string) (*SessionCookie, error) {
	now := s.now()
	ttl := s.ttl()

	token, err := s.Signer.Sign(jwtx.NewSessionClaims(userID, s.Issuer, ttl, now))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &SessionCookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(ttl).UTC(),
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: "Strict",
	}, nil
}

// Clear returns a cookie that overwrites the session with an empty value
// expiring at the Unix epoch.
func (s *SessionService) Clear() *SessionCookie {
	return &SessionCookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: "Strict",
	}
}

// Verify checks token and returns the user id it was issued for. An empty
// token is ErrNoToken; any other failure wraps ErrInvalidToken.
func (s *SessionService) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrNoToken
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims.UserID, nil
}
