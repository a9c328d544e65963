package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graytonio/slackmoji/lib/secrets"
)

func useSecretsDir(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "darwin" {
		t.Skip("uses the keychain on darwin")
	}

	previous := config.Storage
	config.Storage.SecretsDir = filepath.Join(t.TempDir(), "secrets")
	config.Storage.Passphrase = "hunter2"
	t.Cleanup(func() { config.Storage = previous })
}

func TestLoadSlackClientReleasesStorage(t *testing.T) {
	useSecretsDir(t)

	store := Secrets()
	require.True(t, store.Persistent())
	require.NoError(t, store.Set(secrets.KeySlackToken, "xoxc-123"))
	require.NoError(t, store.Close())

	for i := 0; i < 2; i++ {
		require.NoError(t, LoadSlackClient())
		assert.Equal(t, "xoxc-123", SlackToken())
		assert.NotNil(t, SlackClient)
	}

	store = Secrets()
	defer store.Close()
	assert.True(t, store.Persistent())
}

func TestLoadSlackClientWithoutLogin(t *testing.T) {
	useSecretsDir(t)
	assert.True(t, errors.Is(LoadSlackClient(), ErrNoCredentials))
}
