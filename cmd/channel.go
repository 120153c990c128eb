package cmd

import (
	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/core/services"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ChannelCommand = &cobra.Command{
	Use:   "channel [stable|prerelease]",
	Short: "Show or change the update channel",
	Long:  "Without arguments this command prints the active update channel. With an argument it stores the new channel in the config file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := services.NewSettingsService(viper.GetViper())

		if len(args) == 0 {
			cmd.Println(settings.GetUpdateChannel())
			return nil
		}

		channel, err := domain.ParseUpdateChannel(args[0])
		if err != nil {
			return err
		}
		if err := settings.SetUpdateChannel(channel); err != nil {
			return err
		}
		cmd.Println("Update channel set to", channel)
		return nil
	},
}
