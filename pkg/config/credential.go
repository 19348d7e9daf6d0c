package config

import (
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/reocities/reocities-cli/pkg/errors"
)

const (
	// CredentialPath is the default path to the stored Reocities API key.
	CredentialPath = "~/.reocities/config.yaml"

	// InitialCredentialVersion is the first version of the credential file.
	// Files that do not specify a version default to this version.
	InitialCredentialVersion = "v1"

	// SupportedCredentialVersion is the credential file version supported by
	// the current binary.
	SupportedCredentialVersion = "v1"
)

// Credential stores the API key used to authenticate against the Reocities
// API. Only one key is stored at a time.
type Credential struct {
	Version string `json:"version,omitempty"`
	APIKey  string `json:"api_key"`
}

func (c Credential) getVersion() string {
	return c.Version
}

// homedirExpand will be overridden in mock tests.
var homedirExpand = homedir.Expand

// Load returns the stored API key. It returns errors.FileNotFound when no
// key has been stored, so that callers can distinguish "not logged in" from
// a corrupt credential file.
func Load() (string, error) {
	path, err := Path()
	if err != nil {
		return "", errors.WithContext(err, "expand credential path")
	}

	// parseConfig errors are returned unwrapped so that callers can detect
	// errors.FileNotFound, and so friendly parse errors stay friendly.
	credential := Credential{Version: InitialCredentialVersion}
	if err := parseConfig(path, &credential, SupportedCredentialVersion); err != nil {
		return "", err
	}

	if credential.APIKey == "" {
		return "", errors.NewFriendlyError("The credential file at %q doesn't "+
			"contain an API key.\nPlease run `reocities login <your-api-key>` "+
			"to replace it.", path)
	}
	return credential.APIKey, nil
}

// Save writes the given API key to disk, overwriting any stored key. The
// file is only readable by the owning user since the key grants full control
// over the site.
func Save(apiKey string) error {
	path, err := Path()
	if err != nil {
		return errors.WithContext(err, "expand credential path")
	}

	yamlBytes, err := yaml.Marshal(Credential{
		Version: SupportedCredentialVersion,
		APIKey:  apiKey,
	})
	if err != nil {
		return errors.WithContext(err, "marshal")
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.WithContext(err, "create config directory")
	}

	if err := afero.WriteFile(fs, path, yamlBytes, 0600); err != nil {
		return errors.WithContext(err, "write")
	}

	// WriteFile doesn't change the mode of files that already exist.
	if err := fs.Chmod(path, 0600); err != nil {
		return errors.WithContext(err, "restrict permissions")
	}
	return nil
}

// Clear deletes the stored API key. It returns errors.FileNotFound when
// there's no stored key to delete.
func Clear() error {
	path, err := Path()
	if err != nil {
		return errors.WithContext(err, "expand credential path")
	}

	if _, err := fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.FileNotFound{Path: path}
		}
		return errors.WithContext(err, "stat")
	}
	return fs.Remove(path)
}

// Path returns the expanded path to the credential file. The result can be
// passed directly to file operations.
func Path() (string, error) {
	return homedirExpand(CredentialPath)
}
