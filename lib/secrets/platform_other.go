//go:build !darwin

package secrets

import (
	"os"

	"github.com/sirupsen/logrus"
)

func newPlatformStorage(dir, passphrase string) (Storage, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	logrus.WithField("dir", dir).Debug("using encrypted file storage")
	return OpenLevelDB(dir, passphrase)
}
