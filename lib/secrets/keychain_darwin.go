//go:build darwin

package secrets

import (
	"github.com/keybase/go-keychain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Keychain is a Storage backed by generic passwords in the macOS keychain.
type Keychain struct {
	service string
}

func NewKeychain(service string) *Keychain {
	return &Keychain{service: service}
}

func (k *Keychain) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	item := keychain.NewGenericPassword(k.service, key, serviceName, []byte(value), "")
	item.SetSynchronizable(keychain.SynchronizableNo)
	item.SetAccessible(keychain.AccessibleWhenUnlocked)

	err := keychain.AddItem(item)
	if errors.Is(err, keychain.ErrorDuplicateItem) {
		logrus.WithField("key", key).Debug("replacing keychain item")
		if err := keychain.DeleteGenericPasswordItem(k.service, key); err != nil {
			return err
		}
		err = keychain.AddItem(item)
	}
	return err
}

func (k *Keychain) Get(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}

	data, err := keychain.GetGenericPassword(k.service, key, "", "")
	if err != nil {
		return "", err
	}
	if data == nil {
		return "", errors.Wrap(ErrKeyNotFound, key)
	}
	return string(data), nil
}

func (k *Keychain) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	err := keychain.DeleteGenericPasswordItem(k.service, key)
	if errors.Is(err, keychain.ErrorItemNotFound) {
		return nil
	}
	return err
}

func (k *Keychain) Clear() error {
	accounts, err := keychain.GetGenericPasswordAccounts(k.service)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if err := k.Delete(account); err != nil {
			return err
		}
	}
	return nil
}

func (k *Keychain) Persistent() bool {
	return true
}

func (k *Keychain) Close() error {
	return nil
}

func newPlatformStorage(_, _ string) (Storage, error) {
	logrus.Debug("using keychain storage")
	return NewKeychain(serviceName), nil
}
