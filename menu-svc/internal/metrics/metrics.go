package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_searches_total",
			Help: "Total number of recommendation searches by outcome",
		},
		[]string{"outcome"},
	)

	PlaceLookupsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menu_place_lookups_failed_total",
			Help: "Place resolution calls that failed or returned no candidate",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menu_http_request_duration_seconds",
			Help:    "Duration of menu-svc HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// Outcome labels for SearchesTotal.
const (
	OutcomeResults = "results"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
)
