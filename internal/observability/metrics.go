package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce      sync.Once
	requestsTotal     *prometheus.CounterVec
	latencySeconds    *prometheus.HistogramVec
	errorsTotal       *prometheus.CounterVec
	submissionsTotal  prometheus.Counter
	gradingsTotal     prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voyage_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "voyage_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voyage_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		submissionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voyage_submissions_total",
			Help: "Total number of assignment submissions recorded.",
		})

		gradingsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voyage_gradings_total",
			Help: "Total number of submissions graded.",
		})

		prometheus.MustRegister(requestsTotal, latencySeconds, errorsTotal, submissionsTotal, gradingsTotal)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram for API requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the counter for API error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// Submissions exposes the counter for recorded submissions.
func Submissions() prometheus.Counter {
	RegisterMetrics()
	return submissionsTotal
}

// Gradings exposes the counter for graded submissions.
func Gradings() prometheus.Counter {
	RegisterMetrics()
	return gradingsTotal
}
