package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	// Empty overrides are ignored by Load.
	for _, v := range []string{"TRACKLAB_BASE_URL", "TRACKLAB_API_KEY", "TRACKLAB_ANONYMOUS",
		"TRACKLAB_CREDENTIAL_STORE", "TRACKLAB_MODE", "TRACKLAB_SILENT", "TRACKLAB_NOTEBOOK", "JPY_PARENT_PID"} {
		t.Setenv(v, "")
	}

	s := Load()

	assert.Equal(t, DefaultBaseURL, s.BaseURL)
	assert.Equal(t, AnonymousNever, s.Anonymous)
	assert.Equal(t, StoreNetrc, s.CredentialStore)
	assert.False(t, s.Offline)
	assert.False(t, s.Notebook)
}

func TestLoad_ConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TRACKLAB_BASE_URL", "")
	t.Setenv("TRACKLAB_CREDENTIAL_STORE", "")

	dir := filepath.Join(home, ".tracklab")
	require.NoError(t, os.MkdirAll(dir, 0755))
	cfg := "base_url: https://tracklab.example.com\ncredential_store: keyring\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0644))

	s := Load()

	assert.Equal(t, "https://tracklab.example.com", s.BaseURL)
	assert.Equal(t, StoreKeyring, s.CredentialStore)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TRACKLAB_BASE_URL", "https://api.onprem.example.com/")
	t.Setenv("TRACKLAB_ANONYMOUS", "must")
	t.Setenv("TRACKLAB_MODE", "offline")
	t.Setenv("TRACKLAB_NOTEBOOK", "1")

	s := Load()

	assert.Equal(t, "https://api.onprem.example.com", s.BaseURL, "trailing slash trimmed")
	assert.Equal(t, AnonymousMust, s.Anonymous)
	assert.True(t, s.Offline)
	assert.True(t, s.Notebook)
}

func TestParseAnonymousMode(t *testing.T) {
	mode, err := ParseAnonymousMode("allow")
	require.NoError(t, err)
	assert.Equal(t, AnonymousAllow, mode)

	mode, err = ParseAnonymousMode("")
	require.NoError(t, err)
	assert.Equal(t, AnonymousNever, mode)

	_, err = ParseAnonymousMode("sometimes")
	assert.Error(t, err)
}

func TestParseStoreBackend(t *testing.T) {
	backend, err := ParseStoreBackend("keyring")
	require.NoError(t, err)
	assert.Equal(t, StoreKeyring, backend)

	_, err = ParseStoreBackend("vault")
	assert.Error(t, err)
}

func TestHost(t *testing.T) {
	s := &Settings{BaseURL: "https://api.tracklab.ai"}
	assert.Equal(t, "api.tracklab.ai", s.Host())

	s = &Settings{BaseURL: "http://localhost:8080"}
	assert.Equal(t, "localhost:8080", s.Host())
}

func TestAppURL(t *testing.T) {
	s := &Settings{BaseURL: "https://api.tracklab.ai"}
	assert.Equal(t, "https://app.tracklab.ai", s.AppURL())

	s = &Settings{BaseURL: "https://tracklab.example.com"}
	assert.Equal(t, "https://tracklab.example.com", s.AppURL(), "no api. label, app served from base")
}

func TestInteractive(t *testing.T) {
	s := &Settings{StdinIsTTY: true, StdoutIsTTY: true}
	assert.True(t, s.Interactive())

	s.StdoutIsTTY = false
	assert.False(t, s.Interactive())
}
