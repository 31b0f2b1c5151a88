package accounts_test

import (
	"testing"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

// TestUpdateProfile verifies partial updates and password changes.
func TestUpdateProfile(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client, user := registerDefaultUser(t, baseURL)

	updated, err := client.UpdateProfile(t.Context(), accountsdk.UpdateProfileRequest{Name: "Rajesh"})
	require.NoError(t, err)
	require.Equal(t, user.ID, updated.ID)
	require.Equal(t, "Rajesh", updated.Name)
	require.Equal(t, userEmail, updated.Email)

	_, err = client.UpdateProfile(t.Context(), accountsdk.UpdateProfileRequest{Password: "a brand new password"})
	require.NoError(t, err)

	fresh := newClient(t, baseURL)
	_, err = fresh.Authenticate(t.Context(), accountsdk.AuthRequest{Email: userEmail, Password: userPassword})
	require.ErrorIs(t, err, accountsdk.ErrInvalidCredentials)

	_, err = fresh.Authenticate(t.Context(), accountsdk.AuthRequest{Email: userEmail, Password: "a brand new password"})
	require.NoError(t, err)
}

// TestUpdateProfileEmailConflict verifies an email taken by another user is
// refused.
func TestUpdateProfileEmailConflict(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client, _ := registerDefaultUser(t, baseURL)

	other := newClient(t, baseURL)
	_, err := other.Register(t.Context(), accountsdk.RegisterRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "another password",
	})
	require.NoError(t, err)

	_, err = client.UpdateProfile(t.Context(), accountsdk.UpdateProfileRequest{Email: "priya@example.com"})
	require.ErrorIs(t, err, accountsdk.ErrUserExists)
}

// TestProfileRequiresSession verifies signed-out clients are refused.
func TestProfileRequiresSession(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := newClient(t, baseURL)

	_, err := client.GetProfile(t.Context())
	require.ErrorIs(t, err, accountsdk.ErrNoToken)

	_, err = client.UpdateProfile(t.Context(), accountsdk.UpdateProfileRequest{Name: "Mallory"})
	require.ErrorIs(t, err, accountsdk.ErrNoToken)
}
