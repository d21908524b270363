// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace is the prefix of every metric this service exports.
const Namespace = "stellar_payment"

// Ledger outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeNotFound    = "not_found"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
	OutcomeUnknown     = "unknown"
)

// NewCounter creates a CounterVec under the service namespace.
func NewCounter(name, subsystem, help string, labels []string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{Namespace: Namespace, Subsystem: subsystem, Name: name, Help: help}, labels)
}

// NewHistogram creates a HistogramVec under the service namespace.
func NewHistogram(name, subsystem, help string, labels []string) *prometheus.HistogramVec {
	return promauto.NewHistogramVec(prometheus.HistogramOpts{Namespace: Namespace, Subsystem: subsystem, Name: name, Help: help}, labels)
}

var (
	ledgerRequests = NewCounter(
		"requests_total",
		"ledger",
		"Calls to the ledger API by operation and outcome",
		[]string{"operation", "outcome"},
	)

	ledgerLatency = NewHistogram(
		"request_duration_seconds",
		"ledger",
		"Latency of calls to the ledger API",
		[]string{"operation"},
	)

	faucetRequests = NewCounter(
		"requests_total",
		"faucet",
		"Funding requests by HTTP status class",
		[]string{"status"},
	)

	httpRequests = NewCounter(
		"requests_total",
		"http",
		"HTTP requests served by route and status",
		[]string{"method", "route", "status"},
	)

	httpLatency = NewHistogram(
		"request_duration_seconds",
		"http",
		"Latency of HTTP requests by route",
		[]string{"method", "route"},
	)
)

// ReportLedgerCall records one ledger API call.
func ReportLedgerCall(operation, outcome string, took time.Duration) {
	ledgerRequests.WithLabelValues(operation, outcome).Inc()
	ledgerLatency.WithLabelValues(operation).Observe(took.Seconds())
}

// ReportFaucetCall records one faucet request; status is "2xx", "4xx", "5xx" or "error".
func ReportFaucetCall(status string) {
	faucetRequests.WithLabelValues(status).Inc()
}

// ReportHTTPRequest records one served HTTP request.
func ReportHTTPRequest(method, route, status string, took time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpLatency.WithLabelValues(method, route).Observe(took.Seconds())
}
