package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// InitSessionKeys builds the session signer and verifier.
//
// Supported algorithms:
//   - HS256: symmetric, keyed by JWT_SECRET. Every instance sharing the
//     secret accepts every other instance's sessions.
//   - EdDSA: asymmetric, keyed by the PKCS8 PEM file at ACCOUNTS_JWT_KEY_FILE.
//
// Keys are never generated here: a restart with a new key would sign
// everybody out.
func InitSessionKeys(cfg Config, logger *slog.Logger) (jwtx.Signer, jwtx.Verifier, error) {
	var key []byte

	switch strings.ToUpper(cfg.JWTAlgorithm) {
	case jwtx.AlgHS256:
		key = []byte(cfg.JWTSecret)
	case strings.ToUpper(jwtx.AlgEdDSA):
		raw, err := os.ReadFile(filepath.Clean(cfg.JWTKeyFile))
		if err != nil {
			return nil, nil, fmt.Errorf("read session key: %w", err)
		}
		key = raw
	}

	signer, verifier, err := jwtx.NewPair(cfg.JWTAlgorithm, cfg.JWTKeyID, key, cfg.Issuer)
	if err != nil {
		return nil, nil, err
	}
	if err := signer.Validate(); err != nil {
		return nil, nil, err
	}

	logger.Info("session keys loaded", "algorithm", signer.Alg(), "issuer", cfg.Issuer)
	return signer, verifier, nil
}
