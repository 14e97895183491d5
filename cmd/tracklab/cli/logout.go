package cli

import (
	"github.com/spf13/cobra"

	"github.com/tracklab/tracklab/internal/auth"
	"github.com/tracklab/tracklab/internal/settings"
	"github.com/tracklab/tracklab/internal/ui"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API key for the configured host",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings.Load()
		store := auth.NewStore(s)

		if _, ok := store.Get(s.Host()); !ok {
			ui.Logf("No API key stored for %s", s.Host())
			return nil
		}
		if err := store.Delete(s.Host()); err != nil {
			return err
		}
		ui.Logf("Logged out of %s", s.Host())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
