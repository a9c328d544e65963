package secrets

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()

	require.NoError(t, s.Set(KeySlackToken, "xoxc-123"))
	require.NoError(t, s.Set(KeySlackCookie, "xoxd-456"))

	value, err := s.Get(KeySlackToken)
	require.NoError(t, err)
	assert.Equal(t, "xoxc-123", value)

	require.NoError(t, s.Set(KeySlackToken, "xoxc-789"))
	value, err = s.Get(KeySlackToken)
	require.NoError(t, err)
	assert.Equal(t, "xoxc-789", value)

	require.NoError(t, s.Delete(KeySlackToken))
	require.NoError(t, s.Delete(KeySlackToken))
	_, err = s.Get(KeySlackToken)
	assert.True(t, errors.Is(err, ErrKeyNotFound))

	require.NoError(t, s.Clear())
	_, err = s.Get(KeySlackCookie)
	assert.True(t, errors.Is(err, ErrKeyNotFound))

	assert.True(t, errors.Is(s.Set("", "x"), ErrInvalidKey))
	_, err = s.Get("")
	assert.True(t, errors.Is(err, ErrInvalidKey))
}

func TestMemory(t *testing.T) {
	s := NewMemory()
	exerciseStorage(t, s)
	assert.False(t, s.Persistent())
}

func TestLevelDB(t *testing.T) {
	s, err := OpenLevelDB(filepath.Join(t.TempDir(), "secrets"), "hunter2")
	require.NoError(t, err)
	defer s.Close()

	exerciseStorage(t, s)
	assert.True(t, s.Persistent())
}

func TestLevelDBPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets")

	s, err := OpenLevelDB(path, "hunter2")
	require.NoError(t, err)
	require.NoError(t, s.Set(KeySlackToken, "xoxc-123"))
	require.NoError(t, s.Close())

	s, err = OpenLevelDB(path, "hunter2")
	require.NoError(t, err)
	value, err := s.Get(KeySlackToken)
	require.NoError(t, err)
	assert.Equal(t, "xoxc-123", value)
	require.NoError(t, s.Close())

	s, err = OpenLevelDB(path, "wrong")
	require.NoError(t, err)
	defer s.Close()
	_, err = s.Get(KeySlackToken)
	assert.Error(t, err)
}

func TestNewReopensAfterClose(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("uses the keychain on darwin")
	}
	dir := filepath.Join(t.TempDir(), "secrets")

	s := New(dir, "hunter2")
	require.True(t, s.Persistent())
	require.NoError(t, s.Set(KeySlackToken, "xoxc-123"))
	require.NoError(t, s.Close())

	s = New(dir, "hunter2")
	defer s.Close()
	require.True(t, s.Persistent())
	value, err := s.Get(KeySlackToken)
	require.NoError(t, err)
	assert.Equal(t, "xoxc-123", value)
}
