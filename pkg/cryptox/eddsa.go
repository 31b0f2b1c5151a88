package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrKeyFileExists is returned by WriteEd25519KeyFile rather than overwrite
// a session key; replacing it would sign every user out.
var ErrKeyFileExists = errors.New("cryptox: key file already exists")

// GenerateEd25519Key returns a fresh Ed25519 private key as a PKCS8
// "PRIVATE KEY" PEM block, the format ACCOUNTS_JWT_KEY_FILE expects.
func GenerateEd25519Key() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: generate ed25519 key: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("cryptox: marshal ed25519 key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// WriteEd25519KeyFile generates a key and stores it at path with 0600
// permissions. An existing file is left untouched.
func WriteEd25519KeyFile(path string) error {
	key, err := GenerateEd25519Key()
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrKeyFileExists, path)
	}
	if err != nil {
		return err
	}

	if _, err := f.Write(key); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
