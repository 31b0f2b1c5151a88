package jwtx

import (
	"fmt"
	"strings"
)

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	Validate() error
}

// Supported signing algorithms.
const (
	AlgHS256 = "HS256"
	AlgEdDSA = "EdDSA"
)

// NewSignerHS256 creates an HMAC-SHA256 signer from a shared secret.
func NewSignerHS256(kid string, secret []byte) (Signer, error) {
	return newHS256Signer(kid, secret)
}

// NewSignerEdDSA creates an EdDSA signer from PEM bytes.
// Ed25519 keys must be in PKCS8 format.
func NewSignerEdDSA(kid string, pemKey []byte) (Signer, error) {
	return newEdDSASigner(kid, pemKey)
}

// NewPair builds a signer and a matching verifier for alg. For HS256 key is
// the shared secret, for EdDSA it is the PKCS8 PEM private key.
func NewPair(alg, kid string, key []byte, issuer string) (Signer, Verifier, error) {
	switch strings.ToUpper(alg) {
	case strings.ToUpper(AlgHS256):
		s, err := newHS256Signer(kid, key)
		if err != nil {
			return nil, nil, err
		}
		return s, NewVerifierHS256(s.secret, issuer), nil
	case strings.ToUpper(AlgEdDSA):
		s, err := newEdDSASigner(kid, key)
		if err != nil {
			return nil, nil, err
		}
		return s, NewVerifierEdDSA(s.pub, issuer), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrAlgMismatch, alg)
	}
}
