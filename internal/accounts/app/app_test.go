package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		JWTSecret:      testSecret,
		JWTAlgorithm:   "HS256",
		Issuer:         "bartab-accounts",
		DatabaseDriver: DriverSQLite,
		DatabaseFile:   filepath.Join(dir, "accounts.db"),
		PepperFile:     filepath.Join(dir, "pepper"),
		PasswordHash:   "bcrypt",
		BcryptCost:     4,
		Env:            "dev",
		LogLevel:       "error",
		LogFormat:      "text",
		Port:           0,
	}
}

func TestNewWiresService(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	// The pepper file is created on first start.
	_, err = os.Stat(cfg.PepperFile)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	body := `{"name":"Alice","email":"alice@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Development cookies are not Secure.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.False(t, cookies[0].Secure)

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewEdDSA(t *testing.T) {
	cfg := testConfig(t)

	key, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	keyFile := filepath.Join(t.TempDir(), "session.pem")
	require.NoError(t, os.WriteFile(keyFile, key, 0o600))

	cfg.JWTAlgorithm = "EdDSA"
	cfg.JWTSecret = ""
	cfg.JWTKeyFile = keyFile

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })
	require.Equal(t, "EdDSA", app.signer.Alg())
}

func TestNewFailsOnMissingKeyFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTAlgorithm = "EdDSA"
	cfg.JWTKeyFile = filepath.Join(t.TempDir(), "missing.pem")

	_, err := New(cfg)
	require.Error(t, err)
}
