package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "httpresptime_request_duration_seconds",
			Help: "Response time of polled GET requests",
		},
		[]string{"target"},
	)

	LastLatency = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "httpresptime_last_request_duration_seconds",
			Help: "Response time of the most recent polled GET request",
		},
		[]string{"target"},
	)

	FailedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "httpresptime_failed_requests_total",
			Help: "The total number of polled requests that failed",
		},
		[]string{"target"},
	)
)

// ServeMetrics exposes the prometheus registry on the configured address.
func ServeMetrics(listen string, logger *log.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Printf("Metrics endpoint active on %s", listen)
	if err := http.ListenAndServe(listen, mux); err != nil {
		logger.Printf("Metrics endpoint failed: %v", err)
	}
}
