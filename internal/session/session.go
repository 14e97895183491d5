// Package session holds the process-wide authentication state. It is
// an explicit context object threaded through callers, never a hidden
// singleton: the login flow takes a Session in and binds the result
// back onto it.
package session

import (
	"github.com/tracklab/tracklab/internal/settings"
)

// Session is the live authentication state of this process.
type Session struct {
	Settings *settings.Settings

	// APIKey is the credential bound to this session, empty when the
	// session runs unauthenticated.
	APIKey string

	// Entity is the resolved account identity, when known.
	Entity string
}

// New creates a Session over the merged settings.
func New(s *settings.Settings) *Session {
	return &Session{Settings: s}
}

// Configured reports whether a credential is bound to the session.
func (s *Session) Configured() bool {
	return s.APIKey != ""
}

// Bind attaches key to the session. Binding an empty key marks the
// session offline: the operator deliberately declined authentication.
func (s *Session) Bind(key string) {
	s.APIKey = key
	if key == "" {
		s.Settings.Offline = true
	}
}
