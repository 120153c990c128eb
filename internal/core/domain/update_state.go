package domain

import (
	"fmt"
	"time"
)

type UpdateChannel string

const (
	UpdateChannelStable     UpdateChannel = "stable"
	UpdateChannelPrerelease UpdateChannel = "prerelease"
)

var ErrUnknownUpdateChannel = fmt.Errorf("unknown update channel")

func ParseUpdateChannel(s string) (UpdateChannel, error) {
	switch UpdateChannel(s) {
	case UpdateChannelStable, UpdateChannelPrerelease:
		return UpdateChannel(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUpdateChannel, s)
}

// UpdateState is a point-in-time copy of the self-update record.
// An empty LatestVersion means no version is confirmed for Channel,
// a zero LastChecked means no check was ever attempted.
type UpdateState struct {
	CurrentVersion   string        `json:"currentVersion"`
	LatestVersion    string        `json:"latestVersion"`
	Channel          UpdateChannel `json:"channel"`
	LastChecked      time.Time     `json:"lastChecked"`
	IsServiceMode    bool          `json:"isServiceMode"`
	Checking         bool          `json:"checking"`
	UpdateInProgress bool          `json:"updateInProgress"`
} // @name UpdateState

func NewUpdateState(currentVersion string, channel UpdateChannel) UpdateState {
	return UpdateState{
		CurrentVersion: currentVersion,
		Channel:        channel,
	}
}

// UpdateAvailable is true only for a confirmed latest version that parses and is
// newer than the running one.
func (s UpdateState) UpdateAvailable() bool {
	if s.LatestVersion == "" {
		return false
	}
	newer, err := IsNewer(s.LatestVersion, s.CurrentVersion)
	return err == nil && newer
}

func (s UpdateState) IsStale(now time.Time, threshold time.Duration) bool {
	if s.LastChecked.IsZero() {
		return true
	}
	return now.Sub(s.LastChecked) >= threshold
}

var (
	ErrNotServiceMode    = fmt.Errorf("not running in service mode")
	ErrNoUpdateAvailable = fmt.Errorf("no update available")
	ErrUpdateInProgress  = fmt.Errorf("update already in progress")
)
