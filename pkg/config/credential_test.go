package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reocities/reocities-cli/pkg/errors"
)

func mockHome(t *testing.T) {
	fs = afero.NewMemMapFs()
	homedirExpand = func(path string) (string, error) {
		return strings.Replace(path, "~", "/home/test", 1), nil
	}
}

func TestSaveThenLoad(t *testing.T) {
	mockHome(t)

	require.NoError(t, Save("test-api-key"))

	key, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "test-api-key", key)

	path, err := Path()
	require.NoError(t, err)
	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().String())
}

func TestSaveOverwrites(t *testing.T) {
	mockHome(t)

	require.NoError(t, Save("old-key"))
	require.NoError(t, Save("new-key"))

	key, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "new-key", key)
}

func TestLoadMissing(t *testing.T) {
	mockHome(t)

	_, err := Load()
	_, ok := err.(errors.FileNotFound)
	assert.True(t, ok, "expected FileNotFound, got %v", err)
}

func TestLoadMalformed(t *testing.T) {
	mockHome(t)

	path, err := Path()
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, []byte("{not yaml"), 0600))

	_, err = Load()
	require.Error(t, err)
	_, ok := err.(errors.FileNotFound)
	assert.False(t, ok, "a malformed file shouldn't read as missing")
}

func TestLoadIncompatibleVersion(t *testing.T) {
	mockHome(t)

	path, err := Path()
	require.NoError(t, err)
	contents := "version: v9\napi_key: test-api-key\n"
	require.NoError(t, afero.WriteFile(fs, path, []byte(contents), 0600))

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incompatible")
}

func TestLoadEmptyKey(t *testing.T) {
	mockHome(t)

	path, err := Path()
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, []byte("api_key: \"\"\n"), 0600))

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doesn't contain an API key")
}

func TestClear(t *testing.T) {
	mockHome(t)

	require.NoError(t, Save("test-api-key"))
	assert.NoError(t, Clear())

	_, err := Load()
	_, ok := err.(errors.FileNotFound)
	assert.True(t, ok)
}

func TestClearMissing(t *testing.T) {
	mockHome(t)

	err := Clear()
	_, ok := err.(errors.FileNotFound)
	assert.True(t, ok, "expected FileNotFound, got %v", err)
}
