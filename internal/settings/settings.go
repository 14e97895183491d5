// Package settings holds the merged session configuration for the
// tracklab CLI: global config file, environment overrides, and
// per-invocation flags, in increasing precedence.
package settings

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the public tracklab service endpoint.
const DefaultBaseURL = "https://api.tracklab.ai"

// AnonymousMode controls whether a throwaway identity may or must be used.
type AnonymousMode string

const (
	AnonymousNever AnonymousMode = "never"
	AnonymousAllow AnonymousMode = "allow"
	AnonymousMust  AnonymousMode = "must"
)

// ParseAnonymousMode validates an anonymous-mode string.
func ParseAnonymousMode(s string) (AnonymousMode, error) {
	switch AnonymousMode(s) {
	case AnonymousNever, AnonymousAllow, AnonymousMust:
		return AnonymousMode(s), nil
	case "":
		return AnonymousNever, nil
	default:
		return "", fmt.Errorf("invalid anonymous mode %q: must be 'never', 'allow', or 'must'", s)
	}
}

// StoreBackend selects where credentials are persisted.
type StoreBackend string

const (
	StoreNetrc   StoreBackend = "netrc"   // ~/.netrc, shared with other tools
	StoreKeyring StoreBackend = "keyring" // system keychain
)

// ParseStoreBackend validates a credential-store selector.
func ParseStoreBackend(s string) (StoreBackend, error) {
	switch StoreBackend(s) {
	case StoreNetrc, StoreKeyring:
		return StoreBackend(s), nil
	case "":
		return StoreNetrc, nil
	default:
		return "", fmt.Errorf("invalid credential store %q: must be 'netrc' or 'keyring'", s)
	}
}

// Settings is the merged session configuration. It is read-only to the
// login flow; flag handling in cmd/tracklab/cli mutates it before Run.
type Settings struct {
	BaseURL         string        `yaml:"base_url"`
	APIKey          string        `yaml:"-"`
	Anonymous       AnonymousMode `yaml:"anonymous"`
	CredentialStore StoreBackend  `yaml:"credential_store"`
	Silent          bool          `yaml:"silent"`

	// DebugRetentionDays is how long debug log files are kept.
	DebugRetentionDays int `yaml:"debug_retention_days"`

	// Per-invocation state, never read from the config file.
	Offline      bool `yaml:"-"`
	Force        bool `yaml:"-"`
	Relogin      bool `yaml:"-"`
	LocalService bool `yaml:"-"`
	Notebook     bool `yaml:"-"`

	// Terminal probes, captured at load time and overridable in tests.
	StdinIsTTY  bool `yaml:"-"`
	StdoutIsTTY bool `yaml:"-"`
}

// GlobalConfigDir returns the path to ~/.tracklab.
func GlobalConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tracklab")
	}
	return filepath.Join(homeDir, ".tracklab")
}

// Load reads ~/.tracklab/config.yaml, applies TRACKLAB_* environment
// overrides, and captures terminal probes.
func Load() *Settings {
	s := &Settings{
		BaseURL:            DefaultBaseURL,
		Anonymous:          AnonymousNever,
		CredentialStore:    StoreNetrc,
		DebugRetentionDays: 14,
	}

	configPath := filepath.Join(GlobalConfigDir(), "config.yaml")
	if data, err := os.ReadFile(configPath); err == nil {
		_ = yaml.Unmarshal(data, s) // Ignore unmarshal errors, use defaults
	}

	if v := os.Getenv("TRACKLAB_BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv("TRACKLAB_API_KEY"); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv("TRACKLAB_ANONYMOUS"); v != "" {
		if mode, err := ParseAnonymousMode(v); err == nil {
			s.Anonymous = mode
		}
	}
	if v := os.Getenv("TRACKLAB_CREDENTIAL_STORE"); v != "" {
		if backend, err := ParseStoreBackend(v); err == nil {
			s.CredentialStore = backend
		}
	}
	if v := os.Getenv("TRACKLAB_MODE"); strings.EqualFold(v, "offline") {
		s.Offline = true
	}
	if v := os.Getenv("TRACKLAB_SILENT"); isTruthy(v) {
		s.Silent = true
	}
	s.Notebook = detectNotebook()

	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
	s.StdinIsTTY = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	s.StdoutIsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	return s
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// detectNotebook reports whether the process appears to run inside a
// Jupyter kernel. TRACKLAB_NOTEBOOK forces the answer either way.
func detectNotebook() bool {
	if v, ok := os.LookupEnv("TRACKLAB_NOTEBOOK"); ok {
		return isTruthy(v)
	}
	return os.Getenv("JPY_PARENT_PID") != ""
}

// Interactive reports whether both stdin and stdout are terminals.
func (s *Settings) Interactive() bool {
	return s.StdinIsTTY && s.StdoutIsTTY
}

// Host returns the network identity of the configured endpoint, the key
// used by the credential store.
func (s *Settings) Host() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Host == "" {
		return strings.TrimPrefix(s.BaseURL, "https://")
	}
	return u.Host
}

// AppURL returns the web UI base for the configured service. The app
// lives on the "app." host when the API host carries an "api." label,
// otherwise the base URL serves both.
func (s *Settings) AppURL() string {
	return strings.Replace(s.BaseURL, "//api.", "//app.", 1)
}
