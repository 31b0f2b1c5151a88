package cryptox_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newHasher(t *testing.T, alg string, pepper []byte) *cryptox.PasswordHasher {
	t.Helper()
	h, err := cryptox.NewPasswordHasher(alg, 4, pepper) // bcrypt.MinCost keeps tests fast
	require.NoError(t, err)
	return h
}

func TestNewPasswordHasher(t *testing.T) {
	t.Run("argon2id", func(t *testing.T) {
		h, err := cryptox.NewPasswordHasher("Argon2id", 0, nil)
		require.NoError(t, err)
		require.Equal(t, cryptox.Argon2id, h.Algorithm)
	})

	t.Run("bcrypt default cost", func(t *testing.T) {
		h, err := cryptox.NewPasswordHasher("bcrypt", 0, nil)
		require.NoError(t, err)
		require.Equal(t, 10, h.BcryptCost)
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		_, err := cryptox.NewPasswordHasher("bcrypt", 99, nil)
		require.Error(t, err)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := cryptox.NewPasswordHasher("md5", 0, nil)
		require.ErrorIs(t, err, cryptox.ErrUnknownAlgorithm)
	})
}

func TestHashAndVerify(t *testing.T) {
	passwords := []string{
		"123",
		"P@ssw0rd!#$%^&*()",
		strings.Repeat("a", 100),
		"пароль🔒密码",
		"   spaces   ",
	}

	for _, alg := range []string{"argon2id", "bcrypt"} {
		for _, pepper := range [][]byte{nil, []byte("server-pepper")} {
			h := newHasher(t, alg, pepper)

			for _, pw := range passwords {
				hash, err := h.Hash(pw)
				require.NoError(t, err, "%s hash of %q", alg, pw)
				require.NotEqual(t, pw, hash)
				require.NoError(t, h.Verify(pw, hash))
				require.ErrorIs(t, h.Verify(pw+"x", hash), cryptox.ErrPasswordMismatch)
			}
		}
	}
}

func TestBcryptLongPasswords(t *testing.T) {
	long := strings.Repeat("a", 100)
	sharedPrefix := strings.Repeat("a", 72) + "b"

	for _, pepper := range [][]byte{nil, []byte("pepper")} {
		h := newHasher(t, "bcrypt", pepper)

		hash, err := h.Hash(long)
		require.NoError(t, err)
		require.NoError(t, h.Verify(long, hash))

		// Bytes past 72 still count.
		require.ErrorIs(t, h.Verify(sharedPrefix, hash), cryptox.ErrPasswordMismatch)
	}
}

func TestHashArgon2idFormat(t *testing.T) {
	h := newHasher(t, "argon2id", nil)

	hash, err := h.Hash("password123")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Equal(t, "m=19456,t=2,p=1", parts[3])
	require.NotEmpty(t, parts[4])
	require.NotEmpty(t, parts[5])
}

func TestHashUsesUniqueSalts(t *testing.T) {
	for _, alg := range []string{"argon2id", "bcrypt"} {
		h := newHasher(t, alg, nil)

		a, err := h.Hash("samepassword")
		require.NoError(t, err)
		b, err := h.Hash("samepassword")
		require.NoError(t, err)

		require.NotEqual(t, a, b, alg)
	}
}

func TestVerifyAcrossAlgorithms(t *testing.T) {
	oldHasher := newHasher(t, "bcrypt", []byte("pepper"))
	hash, err := oldHasher.Hash("hunter2")
	require.NoError(t, err)

	// Switching the configured algorithm must not lock out existing users.
	newHasher := newHasher(t, "argon2id", []byte("pepper"))
	require.NoError(t, newHasher.Verify("hunter2", hash))
}

func TestVerifyWrongPepper(t *testing.T) {
	h := newHasher(t, "argon2id", []byte("pepper-a"))
	hash, err := h.Hash("hunter2")
	require.NoError(t, err)

	other := newHasher(t, "argon2id", []byte("pepper-b"))
	require.ErrorIs(t, other.Verify("hunter2", hash), cryptox.ErrPasswordMismatch)
}

func TestVerifyInvalidHashFormat(t *testing.T) {
	h := newHasher(t, "argon2id", nil)

	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"plaintext", "123"},
		{"unknown scheme", "$scrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"truncated bcrypt", "$2a$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Verify("test-password", tt.hash)
			require.ErrorIs(t, err, cryptox.ErrInvalidHash)
		})
	}
}
