package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltKey     = "\x00salt"
	valuePrefix = "v/"
	iterations  = 100000
	saltLen     = 16
)

// LevelDB is a Storage backed by a leveldb database whose values are sealed
// with a key derived from a passphrase.
type LevelDB struct {
	db   *leveldb.DB
	aead cipher.AEAD
}

// OpenLevelDB opens or creates the database at path.
func OpenLevelDB(path, passphrase string) (*LevelDB, error) {
	logrus.WithField("path", path).Debug("opening secrets db")
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open secrets db %s", path)
	}

	salt, err := loadSalt(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	key := pbkdf2.Key([]byte(passphrase), salt, iterations, chacha20poly1305.KeySize, sha256.New)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &LevelDB{db: db, aead: aead}, nil
}

func loadSalt(db *leveldb.DB) ([]byte, error) {
	salt, err := db.Get([]byte(saltKey), nil)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, leveldb.ErrNotFound) {
		return nil, errors.Wrap(err, "failed to read salt")
	}

	salt = make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	if err := db.Put([]byte(saltKey), salt, nil); err != nil {
		return nil, errors.Wrap(err, "failed to store salt")
	}
	return salt, nil
}

func (s *LevelDB) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(value), []byte(key))
	return s.db.Put([]byte(valuePrefix+key), sealed, nil)
}

func (s *LevelDB) Get(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}

	sealed, err := s.db.Get([]byte(valuePrefix+key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", errors.Wrap(ErrKeyNotFound, key)
	} else if err != nil {
		return "", err
	}

	n := s.aead.NonceSize()
	if len(sealed) < n {
		return "", errors.Errorf("value for %s is corrupt", key)
	}
	plain, err := s.aead.Open(nil, sealed[:n], sealed[n:], []byte(key))
	if err != nil {
		return "", errors.Wrapf(err, "failed to decrypt %s", key)
	}
	return string(plain), nil
}

func (s *LevelDB) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return s.db.Delete([]byte(valuePrefix+key), nil)
}

func (s *LevelDB) Clear() error {
	batch := new(leveldb.Batch)
	iter := s.db.NewIterator(util.BytesPrefix([]byte(valuePrefix)), nil)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}
	return s.db.Write(batch, nil)
}

func (s *LevelDB) Persistent() bool {
	return true
}

// Close releases the database.
func (s *LevelDB) Close() error {
	return s.db.Close()
}
