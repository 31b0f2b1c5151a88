package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a session cookie and its token stay valid.
const DefaultSessionTTL = 10 * 24 * time.Hour

// Claims are the session-token claims. The user id is carried both as the
// registered subject and as userId, the field browser clients already read.
type Claims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
}

// NewSessionClaims builds claims for userID valid from now until now+ttl.
func NewSessionClaims(userID, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		UserID: userID,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateSubject requires a user id and that both places it is carried agree.
func (c *Claims) ValidateSubject() error {
	if c.UserID == "" {
		return ErrInvalidClaim
	}
	if c.Subject != "" && c.Subject != c.UserID {
		return ErrInvalidClaim
	}
	return nil
}
