package cmd

import (
	"encoding/json"

	constants "github.com/highcard-dev/companion/internal"
	"github.com/highcard-dev/companion/internal/api"
	"github.com/highcard-dev/companion/internal/core/services"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var CheckCommand = &cobra.Command{
	Use:   "check",
	Short: "Check the registry for a newer version",
	Long:  "This command runs a single forced update check on the configured channel and prints the resulting update state as JSON. It exits with code 0 when an update is available and 1 otherwise.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := services.NewSettingsService(viper.GetViper())
		state := services.NewUpdateStateManager(constants.Version, settings.GetUpdateChannel(), nil)

		checker := services.NewUpdateChecker(state, newRegistryClient(), settings, services.DefaultStaleThreshold)
		checker.Check(cmd.Context(), true)

		available := checker.IsUpdateAvailable()
		b, err := json.MarshalIndent(api.NewUpdateCheckResponse(checker.GetState(), available), "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(b))

		if !available {
			exit(1)
		}
		return nil
	},
}
