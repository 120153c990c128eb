package cmd

import (
	"os"
	"path/filepath"

	"github.com/highcard-dev/companion/internal/core/services"
	"github.com/highcard-dev/companion/internal/core/services/registry"
	"github.com/highcard-dev/companion/internal/utils/env"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var envPath string
var configPath string
var loggerFormat string

var RootCmd = &cobra.Command{
	Use:   "companiond",
	Short: "Companion service with self-update support",
	Long: `The companion service keeps track of its own version,
               polls the package registry for newer releases on the
               selected channel and applies updates when supervised.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Log(logger.WithFormat(loggerFormat))
		if err := env.AttemptReadLocalEnvironment(envPath); err != nil {
			logger.Log().Warn("Could not read local environment file",
				zap.String(logger.LogKeyContext, logger.LogContextConfig),
				zap.String("path", envPath),
				zap.Error(err),
			)
		}
	},
}

func init() {
	viper.SetDefault("registry.url", registry.DefaultBaseURL)
	viper.SetDefault("registry.timeout", "10s")
	viper.SetDefault(services.SettingsKeyUpdateChannel, "stable")
	viper.SetDefault("update.stale-threshold", services.DefaultStaleThreshold.String())
	viper.SetDefault("update.check-interval", "1h")
	viper.SetDefault("update.command", "")
	viper.SetDefault("update.restart-delay", "2s")
	viper.SetDefault("service-mode", services.ServiceModeAuto)

	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default $HOME/.companion.yaml)")
	RootCmd.PersistentFlags().StringVarP(&loggerFormat, "log-format", "", logger.FormatCli, "Log format (structured, cli, reduced)")
	RootCmd.PersistentFlags().StringVarP(&envPath, "env-file", "e", "./.env", "Path to environment file (.env)")

	RootCmd.AddCommand(ServeCommand)
	RootCmd.AddCommand(CheckCommand)
	RootCmd.AddCommand(ChannelCommand)
	RootCmd.AddCommand(SemverCmd)
	RootCmd.AddCommand(VersionCmd)
}

func initConfig() {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.SetConfigType("yaml")
		viper.SetConfigName(".companion")
		viper.AddConfigPath(home)
		// create it, so a changed update channel survives restarts
		viper.SafeWriteConfigAs(filepath.Join(home, ".companion.yaml"))
	}

	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.SetEnvPrefix("COMPANION")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
