package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tracklab/tracklab/internal/api"
	"github.com/tracklab/tracklab/internal/auth"
	"github.com/tracklab/tracklab/internal/session"
	"github.com/tracklab/tracklab/internal/settings"
	"github.com/tracklab/tracklab/internal/ui"
)

var (
	loginRelogin       bool
	loginAnonymously   bool
	loginCloud         bool
	loginForce         bool
	loginHost          string
	loginLaunchBrowser bool
)

var loginCmd = &cobra.Command{
	Use:   "login [KEY]",
	Short: "Authenticate this machine with the tracklab service",
	Long: `Acquire, validate, and persist an API key for the configured host.

With no arguments an interactive flow chooses how the key is obtained:
anonymously issued, pasted from the web UI, or skipped entirely. Passing
KEY directly skips the prompt.

Examples:
  tracklab login                          # interactive login
  tracklab login --relogin                # re-prompt even when configured
  tracklab login --anonymously            # throwaway identity, no account
  tracklab login --host https://api.onprem.example.com
  tracklab login 0123...cdef              # configure an explicit key`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().BoolVar(&loginRelogin, "relogin", false, "force re-acquisition of the API key")
	loginCmd.Flags().BoolVar(&loginAnonymously, "anonymously", false, "log in anonymously")
	loginCmd.Flags().BoolVar(&loginCloud, "cloud", false, "log in to the public tracklab cloud")
	loginCmd.Flags().BoolVar(&loginForce, "force", false, "fail instead of falling back to offline mode")
	loginCmd.Flags().StringVar(&loginHost, "host", "", "host of the tracklab service to log in to")
	loginCmd.Flags().BoolVar(&loginLaunchBrowser, "launch-browser", false, "open the authorize page in a browser")
}

// normalizeHost turns a bare --host value into a base URL.
func normalizeHost(host string) string {
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}
	return strings.TrimRight(host, "/")
}

func runLogin(cmd *cobra.Command, args []string) error {
	s := settings.Load()

	if loginCloud {
		s.BaseURL = settings.DefaultBaseURL
	}
	if loginHost != "" {
		s.BaseURL = normalizeHost(loginHost)
	}
	if loginAnonymously {
		s.Anonymous = settings.AnonymousMust
	}
	s.Relogin = loginRelogin
	s.Force = loginForce
	if len(args) == 1 {
		s.APIKey = args[0]
	}

	client := api.New(s.BaseURL)
	login := &auth.LoginSession{
		Settings: s,
		Store:    auth.NewStore(s),
		API:      client,
		Prompter: &auth.Prompter{In: os.Stdin, Out: os.Stderr},
		Acquirer: &auth.Acquirer{Issuer: client, LaunchBrowser: loginLaunchBrowser},
		Session:  session.New(s),
	}

	_, configured, err := login.Run(cmd.Context())
	if err != nil {
		return err
	}
	if !configured {
		// Offline mode or deliberate non-authentication.
		return nil
	}
	if login.Session.Entity != "" && !s.Silent {
		ui.Logf("Logged in to %s as %s", s.Host(), ui.Yellow(login.Session.Entity))
	}
	return nil
}
