package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts served requests by method, route and status class.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_http_requests_total",
			Help: "HTTP requests served by the review API",
		},
		[]string{"method", "path", "status"},
	)

	// Mutations counts status updates, verification toggles and deletions.
	Mutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_mutations_total",
			Help: "Record mutations by entity, action and outcome",
		},
		[]string{"entity", "action", "outcome"},
	)

	// Loads counts full collection reloads.
	Loads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_loads_total",
			Help: "Full collection loads by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)
)

// RecordMutation tags one mutation attempt.
func RecordMutation(entity, action string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	Mutations.WithLabelValues(entity, action, outcome).Inc()
}

// RecordLoad tags one collection load attempt.
func RecordLoad(entity string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	Loads.WithLabelValues(entity, outcome).Inc()
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
