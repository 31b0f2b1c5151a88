package service_test

import (
	"testing"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "bartab-accounts"
	testSecret = "0123456789abcdef0123456789abcdef"
)

type fixture struct {
	store       *sqlite.Store
	credentials *service.CredentialService
	sessions    *service.SessionService
	accounts    *service.AccountService
}

func newFixture(t *testing.T, alg cryptox.Algorithm) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher, err := cryptox.NewPasswordHasher(string(alg), 4, []byte("test-pepper"))
	require.NoError(t, err)

	signer, verifier, err := jwtx.NewPair(jwtx.AlgHS256, "", []byte(testSecret), testIssuer)
	require.NoError(t, err)

	f := &fixture{
		store:       st,
		credentials: service.NewCredentialService(st, hasher),
		sessions: &service.SessionService{
			Signer:   signer,
			Verifier: verifier,
			Issuer:   testIssuer,
			Secure:   true,
		},
	}
	f.accounts = &service.AccountService{Credentials: f.credentials, Sessions: f.sessions}
	return f
}
