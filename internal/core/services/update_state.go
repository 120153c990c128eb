package services

import (
	"sync"
	"time"

	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/core/ports"
)

// UpdateStateManager owns the process-wide update record. All reads return copies.
type UpdateStateManager struct {
	mu       sync.RWMutex
	state    domain.UpdateState
	notifier ports.UpdateNotifierInterface
}

func NewUpdateStateManager(currentVersion string, channel domain.UpdateChannel, notifier ports.UpdateNotifierInterface) *UpdateStateManager {
	return &UpdateStateManager{
		state:    domain.NewUpdateState(currentVersion, channel),
		notifier: notifier,
	}
}

func (m *UpdateStateManager) Snapshot() domain.UpdateState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *UpdateStateManager) SetServiceMode(enabled bool) {
	m.mutate(func(s *domain.UpdateState) error {
		s.IsServiceMode = enabled
		return nil
	})
}

func (m *UpdateStateManager) SetUpdateInProgress(inProgress bool) {
	m.mutate(func(s *domain.UpdateState) error {
		s.UpdateInProgress = inProgress
		return nil
	})
}

// beginCheck records the channel of the upcoming fetch. A channel switch drops the
// previous channel's latest version before anything is fetched.
func (m *UpdateStateManager) beginCheck(channel domain.UpdateChannel) {
	m.mutate(func(s *domain.UpdateState) error {
		if s.Channel != channel {
			s.LatestVersion = ""
		}
		s.Channel = channel
		s.Checking = true
		return nil
	})
}

// finishCheck stores the fetch outcome. An empty latest records a failed fetch.
// A result for a channel that is no longer current is discarded.
func (m *UpdateStateManager) finishCheck(channel domain.UpdateChannel, latest string, at time.Time) {
	m.mutate(func(s *domain.UpdateState) error {
		if s.Channel == channel {
			s.LatestVersion = latest
		}
		s.LastChecked = at
		s.Checking = false
		return nil
	})
}

// mutate applies fn atomically. When fn fails nothing is changed or published.
func (m *UpdateStateManager) mutate(fn func(s *domain.UpdateState) error) error {
	m.mu.Lock()
	next := m.state
	if err := fn(&next); err != nil {
		m.mu.Unlock()
		return err
	}
	next.CurrentVersion = m.state.CurrentVersion
	m.state = next
	m.mu.Unlock()

	if m.notifier != nil {
		m.notifier.Notify(next)
	}
	return nil
}
