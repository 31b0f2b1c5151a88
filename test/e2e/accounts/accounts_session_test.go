package accounts_test

import (
	"testing"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

// TestSessionLifecycle walks a user through register, profile, logout and
// sign-in again.
func TestSessionLifecycle(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client, user := registerDefaultUser(t, baseURL)
	require.Equal(t, userName, user.Name)
	require.Equal(t, userEmail, user.Email)

	profile, err := client.GetProfile(t.Context())
	require.NoError(t, err)
	require.Equal(t, *user, *profile)

	require.NoError(t, client.Logout(t.Context()))
	require.Empty(t, client.SessionToken(), "logout should clear the cookie")

	_, err = client.GetProfile(t.Context())
	require.ErrorIs(t, err, accountsdk.ErrNoToken)

	signedIn, err := client.Authenticate(t.Context(), accountsdk.AuthRequest{Email: userEmail, Password: userPassword})
	require.NoError(t, err)
	require.Equal(t, user.ID, signedIn.ID)

	profile, err = client.GetProfile(t.Context())
	require.NoError(t, err)
	require.Equal(t, user.ID, profile.ID)
}

// TestRegisterDuplicateEmail verifies an email can only be registered once.
func TestRegisterDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	registerDefaultUser(t, baseURL)

	other := newClient(t, baseURL)
	_, err := other.Register(t.Context(), accountsdk.RegisterRequest{
		Name:     "Someone Else",
		Email:    userEmail,
		Password: "whatever",
	})
	require.ErrorIs(t, err, accountsdk.ErrUserExists)
	require.Empty(t, other.SessionToken())
}

// TestAuthenticateFailuresAreIndistinguishable verifies a wrong password and
// an unknown email produce the same error.
func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	registerDefaultUser(t, baseURL)
	client := newClient(t, baseURL)

	_, wrongPassword := client.Authenticate(t.Context(), accountsdk.AuthRequest{Email: userEmail, Password: "nope"})
	_, unknownEmail := client.Authenticate(t.Context(), accountsdk.AuthRequest{Email: "nobody@example.com", Password: "nope"})

	require.ErrorIs(t, wrongPassword, accountsdk.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, accountsdk.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

// TestTamperedSessionRejected verifies a modified token is refused.
func TestTamperedSessionRejected(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client, _ := registerDefaultUser(t, baseURL)

	client.SetSessionToken(tamper(client.SessionToken()))

	_, err := client.GetProfile(t.Context())
	require.ErrorIs(t, err, accountsdk.ErrInvalidToken)
}

// tamper changes one character inside the signature.
func tamper(token string) string {
	i := len(token) - 10
	b := []byte(token)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}
