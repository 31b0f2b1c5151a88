package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256SecretLength is the shortest secret accepted for HS256, matching
// the hash output size (RFC 7518 section 3.2).
const MinHS256SecretLength = 32

// ErrWeakSecret is returned when an HS256 secret is missing or too short.
var ErrWeakSecret = errors.New("jwtx: HS256 secret must be at least 32 bytes")

// HS256Signer implements the Signer interface with a shared secret.
type HS256Signer struct {
	kid    string
	secret []byte
}

func newHS256Signer(kid string, secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{
		kid:    kid,
		secret: append([]byte(nil), secret...),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }
func (s *HS256Signer) KID() string { return s.kid }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	if s.kid != "" {
		t.Header["kid"] = s.kid
	}
	return t.SignedString(s.secret)
}

// Validate rejects secrets too short to be safe.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinHS256SecretLength {
		return ErrWeakSecret
	}
	return nil
}
