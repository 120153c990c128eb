package services

import (
	"sync"

	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const SettingsKeyUpdateChannel = "update.channel"

type SettingsService struct {
	mu sync.Mutex
	v  *viper.Viper
}

func NewSettingsService(v *viper.Viper) *SettingsService {
	return &SettingsService{v: v}
}

// GetUpdateChannel falls back to the stable channel for unset or unknown values.
func (s *SettingsService) GetUpdateChannel() domain.UpdateChannel {
	s.mu.Lock()
	raw := s.v.GetString(SettingsKeyUpdateChannel)
	s.mu.Unlock()

	if raw == "" {
		return domain.UpdateChannelStable
	}
	channel, err := domain.ParseUpdateChannel(raw)
	if err != nil {
		logger.Log().Warn("Invalid update channel configured, using stable",
			zap.String(logger.LogKeyContext, logger.LogContextConfig),
			zap.String("channel", raw),
		)
		return domain.UpdateChannelStable
	}
	return channel
}

// SetUpdateChannel persists the channel when a config file is in use.
func (s *SettingsService) SetUpdateChannel(channel domain.UpdateChannel) error {
	if _, err := domain.ParseUpdateChannel(string(channel)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(SettingsKeyUpdateChannel, string(channel))
	if s.v.ConfigFileUsed() == "" {
		return nil
	}
	return s.v.WriteConfig()
}
