package accountsdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

// fakeAccounts mimics the cookie behaviour of the real service.
func fakeAccounts(t *testing.T) *httptest.Server {
	t.Helper()

	user := accountsdk.User{ID: "u1", Name: "raj", Email: "raj@123.com"}
	writeJSON := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		var req accountsdk.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "dup" {
			writeJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{Error: "User already exists"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "jwt", Value: "token-u1", Path: "/", HttpOnly: true, MaxAge: 60})
		writeJSON(w, http.StatusCreated, user)
	})
	mux.HandleFunc("GET /api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("jwt")
		if err != nil || c.Value == "" {
			writeJSON(w, http.StatusUnauthorized, accountsdk.ErrorResponse{Error: "Not authorized, no token"})
			return
		}
		writeJSON(w, http.StatusOK, accountsdk.ProfileResponse{Message: "User Profile", User: user})
	})
	mux.HandleFunc("POST /api/users/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "jwt", Value: "", Path: "/", HttpOnly: true, Expires: time.Unix(0, 0)})
		writeJSON(w, http.StatusOK, accountsdk.MessageResponse{Message: "User Logged Out"})
	})
	mux.HandleFunc("GET /livez", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, accountsdk.HealthResponse{Status: "ok"})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	srv := fakeAccounts(t)

	client, err := accountsdk.NewClient(srv.URL + "/")
	require.NoError(t, err)
	require.Empty(t, client.SessionToken())

	_, err = client.GetProfile(ctx)
	require.ErrorIs(t, err, accountsdk.ErrNoToken)

	user, err := client.Register(ctx, accountsdk.RegisterRequest{Name: "raj", Email: "raj@123.com", Password: "123"})
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "token-u1", client.SessionToken())

	profile, err := client.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, *user, *profile)

	require.NoError(t, client.Logout(ctx))
	require.Empty(t, client.SessionToken())

	_, err = client.GetProfile(ctx)
	require.ErrorIs(t, err, accountsdk.ErrNoToken)

	client.SetSessionToken("resumed")
	require.Equal(t, "resumed", client.SessionToken())
	_, err = client.GetProfile(ctx)
	require.NoError(t, err)
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	srv := fakeAccounts(t)

	client, err := accountsdk.NewClient(srv.URL)
	require.NoError(t, err)

	t.Run("json error body", func(t *testing.T) {
		_, err := client.Register(ctx, accountsdk.RegisterRequest{Name: "dup", Email: "raj@123.com", Password: "123"})
		require.ErrorIs(t, err, accountsdk.ErrUserExists)
		require.Empty(t, client.SessionToken())
	})

	t.Run("non-json error body", func(t *testing.T) {
		_, err := client.GetReadiness(ctx)
		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		require.Equal(t, "Service Unavailable", apiErr.Message)
	})

	t.Run("liveness", func(t *testing.T) {
		h, err := client.GetLiveness(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", h.Status)
	})
}

func TestAPIErrorIs(t *testing.T) {
	err := &accountsdk.APIError{StatusCode: http.StatusBadRequest, Message: "User already exists", Detail: "x"}
	require.ErrorIs(t, err, accountsdk.ErrUserExists)
	require.NotErrorIs(t, err, accountsdk.ErrInvalidUserData)
	require.Contains(t, err.Error(), "User already exists")
}
