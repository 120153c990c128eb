package cmd

import (
	"strings"

	"github.com/highcard-dev/companion/internal/core/services/registry"
	"github.com/spf13/viper"
)

// update.check-interval -> COMPANION_UPDATE_CHECK_INTERVAL
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

func newRegistryClient() *registry.NpmClient {
	return registry.NewNpmClient(
		viper.GetString("registry.url"),
		viper.GetDuration("registry.timeout"),
	)
}
