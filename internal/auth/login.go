package auth

import (
	"context"
	"fmt"

	"github.com/tracklab/tracklab/internal/api"
	"github.com/tracklab/tracklab/internal/log"
	"github.com/tracklab/tracklab/internal/session"
	"github.com/tracklab/tracklab/internal/settings"
	"github.com/tracklab/tracklab/internal/ui"
)

// API is the remote surface the login flow needs.
type API interface {
	KeyIssuer
	Viewer(ctx context.Context, key string) (*api.Viewer, error)
	RefreshUserSettings(ctx context.Context, key string) error
}

// Backend is the optional handle to an already-running data-transport
// process that must pick up a freshly bound credential.
type Backend interface {
	NotifyLogin(key string) error
}

// UsageError means the operator has to act: no credential could be
// obtained and the environment does not allow asking for one.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

// LoginSession orchestrates a single login attempt. Create one per
// invocation and discard it afterwards; persisted credentials and the
// bound process session outlive it.
type LoginSession struct {
	Settings *settings.Settings
	Store    Store
	API      API
	Prompter *Prompter
	Acquirer *Acquirer
	Session  *session.Session
	Backend  Backend // optional
}

// Run executes the login flow and returns the bound key and whether the
// session is configured.
//
// Offline configurations return not-configured without touching the
// network or the store. An already-persisted key short-circuits unless
// relogin is set, with only a display side effect. An explicit key in
// the settings bypasses the prompt entirely and goes straight to
// validation.
func (l *LoginSession) Run(ctx context.Context) (string, bool, error) {
	s := l.Settings

	if s.Offline {
		log.Debug("offline mode, skipping login")
		return "", false, nil
	}

	existing, found := l.Store.Get(s.Host())
	configured := found
	if s.Relogin {
		configured = false
	}

	if configured && !s.Silent {
		l.displayConfigured()
	}

	if s.APIKey != "" {
		if s.Notebook && !s.Silent {
			ui.Warn("If you're specifying your api key in code, ensure this code is not shared publicly. " +
				"Consider setting the TRACKLAB_API_KEY environment variable, or running 'tracklab login' from the command line.")
		}
		if err := l.configureKey(ctx, s.APIKey); err != nil {
			return "", false, err
		}
		return s.APIKey, true, nil
	}

	if configured {
		l.Session.Bind(existing.Key)
		return existing.Key, true, nil
	}

	choice, err := l.Prompter.Decide(s, s.Force)
	if err != nil {
		return "", false, err
	}

	key, err := l.Acquirer.Acquire(ctx, choice, s)
	if err != nil {
		return "", false, err
	}

	if key == "" {
		if s.Force {
			return "", false, &UsageError{
				msg: "api key not configured (no-tty); run 'tracklab login' from an interactive terminal",
			}
		}
		// Deliberate non-authentication: bind an offline session.
		l.Session.Bind("")
		return "", false, nil
	}

	if err := l.configureKey(ctx, key); err != nil {
		return "", false, err
	}
	return key, true, nil
}

// configureKey validates, persists, and binds a candidate key. A key
// that cannot be durably stored is never reported as configured.
func (l *LoginSession) configureKey(ctx context.Context, key string) error {
	s := l.Settings

	if err := ValidateAPIKey(key); err != nil {
		return err
	}

	cred := Credential{Host: s.Host(), Login: DefaultLogin, Key: key}
	if err := l.Store.Put(cred); err != nil {
		return fmt.Errorf("persisting api key for %s: %w", s.Host(), err)
	}
	log.Debug("api key persisted", "host", s.Host(), "key_length", len(key))

	l.Session.Bind(key)

	if !s.Offline {
		// Whenever the key changes, pull the account's settings from
		// the server. Best-effort.
		if err := l.API.RefreshUserSettings(ctx, key); err != nil {
			log.Warn("user settings refresh failed", "host", s.Host(), "error", err)
		}
		if v, err := l.API.Viewer(ctx, key); err != nil {
			log.Debug("viewer lookup failed", "host", s.Host(), "error", err)
		} else {
			l.Session.Entity = v.Entity
		}
	}

	if l.Backend != nil {
		if err := l.Backend.NotifyLogin(key); err != nil {
			log.Warn("backend login propagation failed", "error", err)
		}
	}
	return nil
}

// displayConfigured reports the current identity. The identity is
// resolved from the session only; no network call happens on the
// short-circuit path.
func (l *LoginSession) displayConfigured() {
	const relogin = "(use `tracklab login --relogin` to force relogin)"
	if l.Session.Entity != "" {
		ui.LogOnce(fmt.Sprintf("Currently logged in as: %s %s", ui.Yellow(l.Session.Entity), relogin))
		return
	}
	ui.LogOnce("API key is configured " + relogin)
}
