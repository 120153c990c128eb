package ports

import (
	"context"

	"github.com/highcard-dev/companion/internal/core/domain"
)

type RegistryClientInterface interface {
	FetchLatest(ctx context.Context, channel domain.UpdateChannel) (string, error)
}

type SettingsServiceInterface interface {
	GetUpdateChannel() domain.UpdateChannel
	SetUpdateChannel(channel domain.UpdateChannel) error
}

type UpdateStateInterface interface {
	Snapshot() domain.UpdateState
	SetServiceMode(enabled bool)
	SetUpdateInProgress(inProgress bool)
}

type UpdateCheckerInterface interface {
	Check(ctx context.Context, force bool)
	IsUpdateAvailable() bool
	GetState() domain.UpdateState
}

type UpdateTriggerInterface interface {
	TriggerUpdate() (string, error)
	StartUpdate() (domain.UpdateState, string, error)
}

type UpgraderInterface interface {
	Upgrade(ctx context.Context, state domain.UpdateState) error
}

type UpdateNotifierInterface interface {
	Notify(state domain.UpdateState)
}
