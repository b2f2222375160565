// Package keyring stores the fallback text service API key in the OS
// keyring.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	service = "lumieres"
	user    = "fallback-api-key"
)

var (
	// ErrNotFound is returned when no key is stored in the keyring
	ErrNotFound = errors.New("API key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey retrieves the API key from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(service, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetAPIKey stores the API key in the OS keyring.
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.Set(service, user, key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the API key from the OS keyring.
func DeleteAPIKey() error {
	err := keyring.Delete(service, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	return nil
}

// ResolveAPIKey returns envKey when set, otherwise the keyring value. A
// missing or unreachable keyring yields "".
func ResolveAPIKey(envKey string) string {
	if envKey != "" {
		return envKey
	}
	key, err := GetAPIKey()
	if err != nil {
		return ""
	}
	return key
}

// OSKeyring exposes the package functions as a value for injection.
type OSKeyring struct{}

func (OSKeyring) SetAPIKey(key string) error { return SetAPIKey(key) }
func (OSKeyring) DeleteAPIKey() error        { return DeleteAPIKey() }
