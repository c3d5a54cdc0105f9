// Package metrics exposes Prometheus gauges and counters for the room
// registry. The collectors are passive observers: the server refreshes the
// gauges from registry stats and the janitor loop feeds the expiry counter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nahtanPNG/spy-game-backend/internal/models"
)

// Metrics bundles every collector the service registers.
type Metrics struct {
	ActiveRooms     prometheus.Gauge
	RoomsWaiting    prometheus.Gauge
	RoomsInProgress prometheus.Gauge
	OnlinePlayers   prometheus.Gauge
	RoomsExpired    prometheus.Counter
}

// New creates and registers the collectors under the given namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		ActiveRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Number of active rooms",
		}),
		RoomsWaiting: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms_waiting",
			Help:      "Number of rooms waiting for players",
		}),
		RoomsInProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms_in_progress",
			Help:      "Number of rooms with a game in progress",
		}),
		OnlinePlayers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "online_players",
			Help:      "Number of players seated across all rooms",
		}),
		RoomsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_expired_total",
			Help:      "Total number of rooms removed by the expiry sweep",
		}),
	}

	prometheus.MustRegister(
		m.ActiveRooms,
		m.RoomsWaiting,
		m.RoomsInProgress,
		m.OnlinePlayers,
		m.RoomsExpired,
	)
	return m
}

// ObserveStats pushes a registry stats snapshot into the gauges.
func (m *Metrics) ObserveStats(stats models.Stats) {
	m.ActiveRooms.Set(float64(stats.TotalRooms))
	m.RoomsWaiting.Set(float64(stats.RoomsWaiting))
	m.RoomsInProgress.Set(float64(stats.RoomsInProgress))
	m.OnlinePlayers.Set(float64(stats.TotalPlayers))
}

// AddExpired records rooms removed by a sweep.
func (m *Metrics) AddExpired(count int) {
	if count > 0 {
		m.RoomsExpired.Add(float64(count))
	}
}
