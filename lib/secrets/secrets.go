// Package secrets keeps chat credentials out of the plain text config file.
package secrets

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const serviceName = "slackmoji"

// Keys used for Slack credentials.
const (
	KeySlackToken  = "slackmoji__slack_token"
	KeySlackCookie = "slackmoji__slack_cookie"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrInvalidKey  = errors.New("key must not be empty")
)

// Storage stores secret values by key. Delete of a missing key is not an
// error. Close releases the backend so it can be opened again.
type Storage interface {
	io.Closer

	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
	Clear() error
	// Persistent reports whether values survive a restart.
	Persistent() bool
}

// New returns the best storage available on this platform: the OS keychain
// on macOS and an encrypted database under dir everywhere else. When neither
// can be opened values are only kept in memory.
func New(dir, passphrase string) Storage {
	s, err := newPlatformStorage(dir, passphrase)
	if err != nil {
		logrus.WithError(err).Warn("secure storage unavailable, credentials will not be saved")
		return NewMemory()
	}
	return s
}

func checkKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}
