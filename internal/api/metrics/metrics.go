// Package metrics defines all custom Prometheus metrics for the gamedeck
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gamedeck"

// GamesCreatedTotal counts catalog entries created through the API.
var GamesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_created_total",
		Help:      "Total number of games added to the catalog.",
	},
)

// FavoriteTogglesTotal counts favorite flips.
// Label:
//   - state: "on" or "off", the flag's value after the toggle
var FavoriteTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_toggles_total",
		Help:      "Total number of favorite toggles, labelled by resulting state.",
	},
	[]string{"state"},
)

// InstallTogglesTotal counts install flips.
// Label:
//   - state: "on" or "off", the flag's value after the toggle
var InstallTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "install_toggles_total",
		Help:      "Total number of install toggles, labelled by resulting state.",
	},
	[]string{"state"},
)

// LayoutActivationsTotal counts successful layout activations across all
// three activation paths (create-active, update-active, set-active).
var LayoutActivationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "layout_activations_total",
		Help:      "Total number of layout activations.",
	},
)

// ActivityEventsTotal counts activity events successfully recorded.
// Label:
//   - type: the event type (e.g. "game.favorited", "layout.activated")
var ActivityEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_events_total",
		Help:      "Total number of activity events recorded in the feed.",
	},
	[]string{"type"},
)

// ActivityQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of queued activity events per worker.",
	},
	[]string{"worker_id"},
)
