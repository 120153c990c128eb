package cmd

import (
	constants "github.com/highcard-dev/companion/internal"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print companion version",
	Long:  `This command prints the version of the companion service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println("Version:", constants.Version)
		return nil
	},
}
