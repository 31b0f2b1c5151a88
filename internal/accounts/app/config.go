package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	JWTSecret    string `env:"JWT_SECRET"`                                // Required for HS256: session signing secret
	JWTAlgorithm string `env:"ACCOUNTS_JWT_ALGORITHM" envDefault:"HS256"` // HS256 or EdDSA
	JWTKeyFile   string `env:"ACCOUNTS_JWT_KEY_FILE"`                     // Required for EdDSA: PKCS8 PEM private key
	JWTKeyID     string `env:"ACCOUNTS_JWT_KEY_ID"`                       // Optional: kid header
	Issuer       string `env:"ACCOUNTS_ISSUER" envDefault:"bartab-accounts"`

	DatabaseDriver string `env:"ACCOUNTS_DATABASE_DRIVER" envDefault:"sqlite"` // sqlite or postgres
	DatabaseFile   string `env:"ACCOUNTS_DATABASE_FILE" envDefault:"accounts.db"`
	DatabaseURL    string `env:"ACCOUNTS_DATABASE_URL"` // Required for postgres

	PepperFile   string `env:"ACCOUNTS_PEPPER_FILE" envDefault:"pepper"` // Created on first start; empty disables the pepper
	PasswordHash string `env:"ACCOUNTS_PASSWORD_HASH" envDefault:"argon2id"`
	BcryptCost   int    `env:"ACCOUNTS_BCRYPT_COST" envDefault:"12"`

	Env                 string        `env:"ENV" envDefault:"production"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads the configuration from the environment, loading .env
// first when one exists in the working directory.
func LoadConfig() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	switch strings.ToUpper(c.JWTAlgorithm) {
	case jwtx.AlgHS256:
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required for HS256"))
		} else if len(c.JWTSecret) < jwtx.MinHS256SecretLength {
			errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinHS256SecretLength))
		}
	case strings.ToUpper(jwtx.AlgEdDSA):
		if c.JWTKeyFile == "" {
			errs = append(errs, errors.New("ACCOUNTS_JWT_KEY_FILE is required for EdDSA"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported ACCOUNTS_JWT_ALGORITHM %q", c.JWTAlgorithm))
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("ACCOUNTS_DATABASE_FILE is required for sqlite"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("ACCOUNTS_DATABASE_URL is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported ACCOUNTS_DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	switch cryptox.Algorithm(strings.ToLower(c.PasswordHash)) {
	case cryptox.Argon2id, cryptox.Bcrypt:
	default:
		errs = append(errs, fmt.Errorf("unsupported ACCOUNTS_PASSWORD_HASH %q", c.PasswordHash))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %d", c.Port))
	}

	return errors.Join(errs...)
}

// IsDev reports whether the service runs in a development environment.
// Development turns off Secure cookies and exposes error details.
func (c Config) IsDev() bool {
	return slogx.IsDevEnv(c.Env)
}
