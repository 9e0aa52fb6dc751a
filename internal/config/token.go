package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tokenFile is the credential file name inside the config dir. Stored
// separately from the config file so it can carry tighter permissions.
const tokenFile = "token"

// tokenPath returns the full path to the credential file.
func tokenPath() (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, tokenFile), nil
}

// LoadToken returns the saved credential, preferring the LINGUA_TOKEN
// environment variable over the credential file. Returns "" when signed out;
// a missing file is not an error.
func LoadToken() (string, error) {
	if tok := strings.TrimSpace(os.Getenv(EnvToken)); tok != "" {
		return tok, nil
	}

	p, err := tokenPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(p) // #nosec G304 -- path is constructed from home dir
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read credential: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// SaveToken persists the credential with owner-only permissions.
func SaveToken(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil { // #nosec G301 -- user config dir
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	token = strings.TrimSpace(token)
	if err := os.WriteFile(p, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// ClearToken removes the saved credential. Already signed out is not an
// error.
func ClearToken() error {
	p, err := tokenPath()
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credential: %w", err)
	}
	return nil
}
