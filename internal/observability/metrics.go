package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	apiRequestsTotal      *prometheus.CounterVec
	apiLatencySeconds     *prometheus.HistogramVec
	apiRequestErrorsTotal *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors for outbound API requests.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_api_requests_total",
			Help: "Total number of requests issued against the records backend.",
		}, []string{"method", "path", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campus_api_latency_seconds",
			Help:    "Latency distribution for backend requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "path"})

		apiRequestErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_api_request_errors_total",
			Help: "Total number of backend requests that failed or returned an error status.",
		}, []string{"method", "path", "status"})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, apiRequestErrorsTotal)
	})
}

// APIRequests exposes the counter for backend requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for backend requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIRequestErrors exposes the counter for failed backend requests.
func APIRequestErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestErrorsTotal
}
