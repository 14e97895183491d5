package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tracklab/tracklab/internal/api"
	"github.com/tracklab/tracklab/internal/auth"
	"github.com/tracklab/tracklab/internal/log"
	"github.com/tracklab/tracklab/internal/settings"
	"github.com/tracklab/tracklab/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the login state for the configured host",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s := settings.Load()
	store := auth.NewStore(s)

	fmt.Printf("Host:  %s\n", s.Host())
	fmt.Printf("Store: %s\n", s.CredentialStore)

	cred, ok := store.Get(s.Host())
	if !ok {
		fmt.Printf("Login: %s\n", ui.Red("not configured"))
		return nil
	}
	fmt.Printf("Login: %s\n", ui.Green("configured"))

	// Identity lookup is best-effort; a dead network is not a broken status.
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	v, err := api.New(s.BaseURL).Viewer(ctx, cred.Key)
	if err != nil {
		log.Debug("viewer lookup failed", "host", s.Host(), "error", err)
		return nil
	}
	fmt.Printf("User:  %s\n", ui.Yellow(v.Entity))
	return nil
}
