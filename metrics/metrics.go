// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for requests and poll activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickpoll",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quickpoll",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	PollsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quickpoll",
		Name:      "polls_created_total",
		Help:      "Polls created, including seeded polls.",
	})

	PollsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quickpoll",
		Name:      "polls_deleted_total",
		Help:      "Polls deleted.",
	})

	// outcome is one of recorded, not_found, invalid_option, error
	Votes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickpoll",
		Name:      "votes_total",
		Help:      "Vote submissions by outcome.",
	}, []string{"outcome"})
)

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
