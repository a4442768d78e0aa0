package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_catalog_fetches_total",
			Help: "Catalog fetch attempts by result",
		},
		[]string{"result"}, // "ok", "error", "rejected"
	)

	CatalogBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinetrack_catalog_breaker_state",
			Help: "Catalog circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	CatalogBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_catalog_breaker_transitions_total",
			Help: "Catalog circuit breaker state transitions",
		},
		[]string{"from", "to"},
	)

	CollectionToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_collection_toggles_total",
			Help: "Watched/favorite toggles by flag and resulting value",
		},
		[]string{"flag", "value"},
	)

	ViewComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_view_computations_total",
			Help: "Catalog views computed by category",
		},
		[]string{"category"},
	)

	OpenScreens = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinetrack_open_screens",
			Help: "Screens currently open",
		},
	)
)
