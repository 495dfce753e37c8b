// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of the service and the
// helpers that record into them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transaction outcomes recorded by RecordTransaction.
const (
	OutcomeCommitted     = "committed"
	OutcomeRolledBack    = "rolled_back"
	OutcomeBeginFailed   = "begin_failed"
	OutcomeIndeterminate = "indeterminate"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Remote transaction metrics
	remoteTransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "remote_transactions_total",
			Help: "Remote store transactions by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	remoteRollbackFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "remote_rollback_failures_total",
			Help: "Compensating rollbacks that did not succeed",
		},
	)

	remoteCommitRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "remote_commit_retries_total",
			Help: "Commit RPC attempts beyond the first one",
		},
	)

	// Auth metrics
	authSignInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_sign_ins_total",
			Help: "Sign-in attempts by result",
		},
		[]string{"result"},
	)
)

// RecordHTTPRequest records HTTP request metrics. endpoint should be a route
// pattern, never a raw path.
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordTransaction counts a finished remote transaction.
func RecordTransaction(operation, outcome string) {
	remoteTransactionsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordRollbackFailure increments the failed rollback counter.
func RecordRollbackFailure() {
	remoteRollbackFailures.Inc()
}

// RecordCommitRetry increments the commit retry counter.
func RecordCommitRetry() {
	remoteCommitRetries.Inc()
}

// RecordSignIn counts a sign-in attempt.
func RecordSignIn(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	authSignInsTotal.WithLabelValues(result).Inc()
}

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
