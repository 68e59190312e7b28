package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcome label values.
const (
	OutcomeSuccess    = "success"
	OutcomeFetchError = "fetch_error"
	OutcomeInvalid    = "invalid_payload"
)

var (
	RateFetchCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wishinsured",
			Subsystem: "fx",
			Name:      "rate_fetch_total",
			Help:      "Rate fetch attempts by outcome.",
		},
		[]string{"outcome"},
	)
	RateFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "wishinsured",
			Subsystem: "fx",
			Name:      "rate_fetch_duration_seconds",
			Help:      "Time spent fetching the remote rate table.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)
	ConversionsCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wishinsured",
			Subsystem: "fx",
			Name:      "conversions_total",
			Help:      "Currency conversions served.",
		},
	)
	RatesLastRefresh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wishinsured",
			Subsystem: "fx",
			Name:      "rates_last_refresh_timestamp_seconds",
			Help:      "Unix time of the last successful rate refresh.",
		},
	)
)
