package auth

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

// keyringService is the system keychain service identifier.
const keyringService = "tracklab"

// KeyringStore persists credentials in the system keychain, one entry
// per host. Requires libsecret/kwallet on Linux; macOS and Windows work
// out of the box.
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a keychain-backed store.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: keyringService}
}

// Get implements Store. Keychain errors report absent.
func (s *KeyringStore) Get(host string) (*Credential, bool) {
	key, err := keyring.Get(s.service, host)
	if err != nil || key == "" {
		return nil, false
	}
	return &Credential{Host: host, Login: DefaultLogin, Key: key}, true
}

// Put implements Store.
func (s *KeyringStore) Put(cred Credential) error {
	if err := keyring.Set(s.service, cred.Host, cred.Key); err != nil {
		return fmt.Errorf("writing keychain entry for %s: %w", cred.Host, err)
	}
	return nil
}

// Delete implements Store. Deleting an absent entry is not an error.
func (s *KeyringStore) Delete(host string) error {
	err := keyring.Delete(s.service, host)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("deleting keychain entry for %s: %w", host, err)
	}
	return nil
}
