// Package auth implements the tracklab login flow: choosing how an API
// key is acquired, acquiring it, validating its shape, persisting it,
// and binding it to the process session.
package auth

import (
	"github.com/tracklab/tracklab/internal/settings"
)

// DefaultLogin is the login identifier written alongside every stored
// key. The service identifies the account from the key, not the login.
const DefaultLogin = "user"

// Credential is one persisted store entry, keyed by host.
type Credential struct {
	Host  string
	Login string
	Key   string
}

// Store persists at most one credential per host. Writing a host that
// already has an entry overwrites it.
type Store interface {
	// Get returns the credential for host. Read failures of any kind
	// (missing store, malformed entry) report absent, never an error.
	Get(host string) (*Credential, bool)
	Put(cred Credential) error
	Delete(host string) error
}

// NewStore returns the store backend selected by the settings.
func NewStore(s *settings.Settings) Store {
	if s.CredentialStore == settings.StoreKeyring {
		return NewKeyringStore()
	}
	return NewNetrcStore()
}
