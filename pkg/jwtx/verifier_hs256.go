package jwtx

import "github.com/golang-jwt/jwt/v5"

// HS256Verifier validates JWTs signed with a shared HMAC secret.
type HS256Verifier struct {
	secret []byte
	issuer string
}

// NewVerifierHS256 creates a verifier for secret. An empty issuer skips the
// issuer check.
func NewVerifierHS256(secret []byte, issuer string) *HS256Verifier {
	return &HS256Verifier{secret: secret, issuer: issuer}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	return verify(tokenStr, jwt.SigningMethodHS256.Alg(), v.secret, v.issuer)
}
