package login

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reocities/reocities-cli/pkg/api"
)

// loginAgainst points the command at a test server and records whether the
// key made it to the credential store.
func loginAgainst(t *testing.T, handler http.HandlerFunc) (savedKey string, saved bool, err error) {
	server := httptest.NewServer(handler)
	defer server.Close()

	oldNewClient, oldSave := newClient, saveCredential
	defer func() {
		newClient, saveCredential = oldNewClient, oldSave
	}()
	newClient = func(key string) *api.Client {
		return api.NewWithBaseURL(key, server.URL)
	}
	saveCredential = func(key string) error {
		savedKey = key
		saved = true
		return nil
	}

	err = Main("test-key")
	return savedKey, saved, err
}

func TestLoginSavesAcceptedKey(t *testing.T) {
	savedKey, saved, err := loginAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		w.Write([]byte(`{"success": true, "files": []}`))
	})
	assert.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, "test-key", savedKey)
}

func TestLoginDoesntSaveRejectedKey(t *testing.T) {
	_, saved, err := loginAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "error": "invalid API key"}`))
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid API key")
	assert.False(t, saved)
}

func TestLoginDoesntSaveOnConnectionError(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close()

	oldNewClient, oldSave := newClient, saveCredential
	defer func() {
		newClient, saveCredential = oldNewClient, oldSave
	}()
	newClient = func(key string) *api.Client {
		return api.NewWithBaseURL(key, server.URL)
	}
	saved := false
	saveCredential = func(string) error {
		saved = true
		return nil
	}

	err := Main("test-key")
	assert.Error(t, err)
	assert.False(t, saved)
}
