package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/daybell/internal/constants"
)

const traySecretUser = "tray-webhook-secret"

var (
	// ErrNotFound is returned when no secret is stored in the keyring
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetTraySecret retrieves the tray webhook secret from the OS keyring.
// Returns ErrNotFound if no secret is stored.
func GetTraySecret() (string, error) {
	secret, err := keyring.Get(constants.AppName, traySecretUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// SetTraySecret stores the tray webhook secret in the OS keyring.
func SetTraySecret(secret string) error {
	if secret == "" {
		return errors.New("secret cannot be empty")
	}
	if err := keyring.Set(constants.AppName, traySecretUser, secret); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	return nil
}

// DeleteTraySecret removes the tray webhook secret from the OS keyring.
func DeleteTraySecret() error {
	err := keyring.Delete(constants.AppName, traySecretUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	return nil
}

// MockInit swaps the keyring for an in-memory provider. Tests only.
func MockInit() {
	keyring.MockInit()
}

// IsAvailable checks if the OS keyring is usable on the current system.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring answered, just with no entry.
	return err == nil || err == keyring.ErrNotFound
}
