package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tracklab/tracklab/internal/log"
	"github.com/tracklab/tracklab/internal/settings"
	"github.com/tracklab/tracklab/internal/ui"
)

// KeyIssuer issues anonymous API keys. *api.Client implements it.
type KeyIssuer interface {
	CreateAnonymousKey(ctx context.Context) (string, error)
}

// BrowserCallback retrieves an API key through an authenticated browser
// session. ok reports whether a key was obtained; the flow falls back
// to a pasted key otherwise. A nil callback means the capability is
// absent.
type BrowserCallback func(signup bool) (key string, ok bool)

// Acquirer executes an acquisition strategy and produces a candidate
// key, or an empty string for deliberate non-authentication.
type Acquirer struct {
	Issuer  KeyIssuer
	Browser BrowserCallback

	// LaunchBrowser opens the authorize page before prompting for a
	// pasted key. Best-effort.
	LaunchBrowser bool

	// ReadSecret overrides the masked terminal read (for testing).
	ReadSecret func(prompt string) (string, error)
}

// Acquire executes choice. Anonymous issuance failures propagate to the
// caller; malformed pasted input does not fail here, it surfaces at
// validation.
func (a *Acquirer) Acquire(ctx context.Context, choice Choice, s *settings.Settings) (string, error) {
	switch choice {
	case ChoiceAnonymous:
		return a.Issuer.CreateAnonymousKey(ctx)

	case ChoiceCreateAccount:
		if key, ok := a.browserKey(true); ok {
			return key, nil
		}
		url := s.AppURL() + "/authorize?signup=true"
		ui.Logf("Create an account here: %s", url)
		return a.pasteKey(url)

	case ChoiceUseExisting:
		if key, ok := a.browserKey(false); ok {
			return key, nil
		}
		url := s.AppURL() + "/authorize"
		ui.Logf("You can find your API key in your browser here: %s", url)
		return a.pasteKey(url)

	case ChoiceDryRun:
		// Notebooks have no tty, but a supplied browser callback can
		// still log the operator in.
		if s.Notebook && a.Browser != nil {
			key, _ := a.Browser(false)
			return key, nil
		}
		return "", nil

	default:
		return "", fmt.Errorf("unknown acquisition choice %d", int(choice))
	}
}

func (a *Acquirer) browserKey(signup bool) (string, bool) {
	if a.Browser == nil {
		return "", false
	}
	key, ok := a.Browser(signup)
	return key, ok && key != ""
}

func (a *Acquirer) pasteKey(url string) (string, error) {
	if a.LaunchBrowser {
		if err := OpenBrowser(url); err != nil {
			log.Debug("opening browser failed", "error", err)
		}
	}
	read := a.ReadSecret
	if read == nil {
		read = readSecret
	}
	key, err := read("Paste an API key from your profile and hit enter")
	if err != nil {
		return "", fmt.Errorf("reading api key: %w", err)
	}
	return strings.TrimSpace(key), nil
}

// readSecret reads a line without echoing when stdin is a terminal,
// falling back to a buffered line read for piped input.
func readSecret(prompt string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s %s: ", ui.Prefix, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}
