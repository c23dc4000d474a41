package storage

import "errors"

// ErrNotFound is returned by Get when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Provider is the persisted-state collaborator: a flat string key to string
// value store. Plans, markers, and permission state all live behind it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error

	// Utils
	GetConfigPath() string
}
