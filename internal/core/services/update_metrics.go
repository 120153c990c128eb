package services

import (
	"errors"

	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UpdateMetrics exports check and trigger outcomes. A nil *UpdateMetrics is a no-op.
type UpdateMetrics struct {
	registerer         prometheus.Registerer
	checks             *prometheus.CounterVec
	triggers           *prometheus.CounterVec
	updateAvailable    prometheus.Gauge
	lastCheckTimestamp prometheus.Gauge
}

func NewUpdateMetrics(registerer prometheus.Registerer) *UpdateMetrics {
	factory := promauto.With(registerer)
	return &UpdateMetrics{
		registerer: registerer,
		checks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "companion",
			Subsystem: "update",
			Name:      "checks_total",
			Help:      "Registry checks by result",
		}, []string{"result"}),
		triggers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "companion",
			Subsystem: "update",
			Name:      "triggers_total",
			Help:      "Update trigger attempts by result",
		}, []string{"result"}),
		updateAvailable: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "companion",
			Subsystem: "update",
			Name:      "available",
			Help:      "1 if a newer version is available",
		}),
		lastCheckTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "companion",
			Subsystem: "update",
			Name:      "last_check_timestamp_seconds",
			Help:      "Unix time of the last check attempt",
		}),
	}
}

func (m *UpdateMetrics) ObserveCheck(err error, state domain.UpdateState) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.checks.WithLabelValues(result).Inc()
	if state.UpdateAvailable() {
		m.updateAvailable.Set(1)
	} else {
		m.updateAvailable.Set(0)
	}
	if !state.LastChecked.IsZero() {
		m.lastCheckTimestamp.Set(float64(state.LastChecked.Unix()))
	}
}

func (m *UpdateMetrics) ObserveTrigger(err error) {
	if m == nil {
		return
	}
	var result string
	switch {
	case err == nil:
		result = "started"
	case errors.Is(err, domain.ErrNotServiceMode):
		result = "not_service_mode"
	case errors.Is(err, domain.ErrNoUpdateAvailable):
		result = "no_update"
	case errors.Is(err, domain.ErrUpdateInProgress):
		result = "in_progress"
	default:
		result = "error"
	}
	m.triggers.WithLabelValues(result).Inc()
}

func (m *UpdateMetrics) Unregister() {
	if m == nil {
		return
	}
	m.registerer.Unregister(m.checks)
	m.registerer.Unregister(m.triggers)
	m.registerer.Unregister(m.updateAvailable)
	m.registerer.Unregister(m.lastCheckTimestamp)
}
