// Package config handles local storage of the Copilot Money API token.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenPath returns the default token location,
// $HOME/.config/copilot-money-api/token.
func TokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "copilot-money-api", "token"), nil
}

// LoadToken reads and trims the token file. An empty file is an error: it
// usually means an aborted login wrote nothing.
func LoadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("empty token file: %s", path)
	}
	return token, nil
}

// SaveToken writes the token with a trailing newline, creating parent
// directories as needed. The file is created 0600: it is a bearer credential.
func SaveToken(path, token string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create token directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
