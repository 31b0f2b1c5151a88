package cryptox

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const pepperLength = 32

// LoadPepper reads the pepper stored at path, generating and persisting a new
// random one when the file does not exist yet. An empty path disables the
// pepper entirely.
func LoadPepper(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}

	path = filepath.Clean(path)
	raw, err := os.ReadFile(path)
	if err == nil {
		pepper := bytes.TrimSpace(raw)
		if len(pepper) == 0 {
			return nil, errors.New("cryptox: pepper file is empty")
		}
		return pepper, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}

	buf := make([]byte, pepperLength)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	pepper := []byte(base64.RawURLEncoding.EncodeToString(buf))

	// O_EXCL so two instances starting together cannot clobber each other.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return LoadPepper(path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Write(pepper); err != nil {
		return nil, err
	}
	return pepper, nil
}
