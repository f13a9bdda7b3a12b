// Package credstore persists the most recently created storefront account so
// later journeys can sign in without registering again.
package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoCredentials is returned by Load when no account has been stored yet.
var ErrNoCredentials = errors.New("no stored credentials")

// Credentials is one storefront account.
type Credentials struct {
	Email    string
	Password string
}

// Store writes credentials to path as a single "email password" line,
// replacing any previous account.
type Store struct {
	path string
}

// New returns a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Save persists the credentials, creating parent directories as needed.
func (s *Store) Save(creds Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return fmt.Errorf("refusing to store incomplete credentials")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}
	line := creds.Email + " " + creds.Password + "\n"
	if err := os.WriteFile(s.path, []byte(line), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

// Load reads the stored credentials. A missing or empty file yields
// ErrNoCredentials.
func (s *Store) Load() (Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, ErrNoCredentials
		}
		return Credentials{}, fmt.Errorf("failed to read credentials file: %w", err)
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		return Credentials{}, ErrNoCredentials
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Credentials{}, fmt.Errorf("malformed credentials line in %s", s.path)
	}
	return Credentials{Email: fields[0], Password: fields[1]}, nil
}
