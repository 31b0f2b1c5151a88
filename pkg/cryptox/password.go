package cryptox

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm names a password hashing scheme.
type Algorithm string

const (
	Argon2id Algorithm = "argon2id"
	Bcrypt   Algorithm = "bcrypt"
)

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

var (
	ErrPasswordMismatch = errors.New("cryptox: password does not match")
	ErrInvalidHash      = errors.New("cryptox: invalid hash format")
	ErrUnknownAlgorithm = errors.New("cryptox: unknown password hash algorithm")
)

// PasswordHasher produces salted, deliberately slow password hashes. New
// hashes use Algorithm; Verify accepts any supported algorithm so stored
// records survive a change of configuration.
type PasswordHasher struct {
	Algorithm  Algorithm
	BcryptCost int
	Pepper     []byte // Optional server-side secret mixed into every hash
}

// NewPasswordHasher validates the algorithm name and bcrypt cost.
func NewPasswordHasher(alg string, bcryptCost int, pepper []byte) (*PasswordHasher, error) {
	h := &PasswordHasher{
		Algorithm:  Algorithm(strings.ToLower(alg)),
		BcryptCost: bcryptCost,
		Pepper:     pepper,
	}

	switch h.Algorithm {
	case Argon2id:
	case Bcrypt:
		if h.BcryptCost == 0 {
			h.BcryptCost = bcrypt.DefaultCost
		}
		if h.BcryptCost < bcrypt.MinCost || h.BcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("cryptox: bcrypt cost %d out of range [%d, %d]",
				h.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	return h, nil
}

// Hash returns an encoded hash of password. Argon2id hashes use the PHC
// string format, bcrypt hashes the usual $2a$ modular crypt format.
func (h *PasswordHasher) Hash(password string) (string, error) {
	input := h.peppered(password)

	switch h.Algorithm {
	case Bcrypt:
		out, err := bcrypt.GenerateFromPassword(input, h.BcryptCost)
		if err != nil {
			return "", fmt.Errorf("cryptox: bcrypt: %w", err)
		}
		return string(out), nil
	case Argon2id:
		return hashArgon2id(input)
	default:
		return "", ErrUnknownAlgorithm
	}
}

// Verify compares a plaintext password against an encoded hash. It returns
// nil on a match and ErrPasswordMismatch otherwise.
func (h *PasswordHasher) Verify(password, encodedHash string) error {
	input := h.peppered(password)

	switch {
	case strings.HasPrefix(encodedHash, "$argon2id$"):
		return verifyArgon2id(input, encodedHash)
	case strings.HasPrefix(encodedHash, "$2a$"),
		strings.HasPrefix(encodedHash, "$2b$"),
		strings.HasPrefix(encodedHash, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), input)
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidHash, err)
		}
		return nil
	default:
		return ErrInvalidHash
	}
}

// peppered keys an HMAC with the pepper so the hash input stays a fixed 44
// bytes, which keeps long passwords under bcrypt's 72 byte limit. Without a
// pepper the key is empty; the input is still fixed length.
func (h *PasswordHasher) peppered(password string) []byte {
	mac := hmac.New(sha256.New, h.Pepper)
	mac.Write([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(mac.Sum(nil)))
}

func hashArgon2id(input []byte) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey(input, salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyArgon2id(input []byte, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return fmt.Errorf("%w: expected 6 parts", ErrInvalidHash)
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return fmt.Errorf("%w: wrong version", ErrInvalidHash)
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("%w: parameters: %w", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %w", ErrInvalidHash, err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("%w: hash: %w", ErrInvalidHash, err)
	}

	computed := argon2.IDKey(
		input,
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115 - decoded from our own encoding
	)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}
