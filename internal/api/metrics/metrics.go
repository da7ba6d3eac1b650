// Package metrics defines and registers all custom Prometheus metrics for
// the projects dashboard. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// DispatchTotal counts dispatched actions.
// Labels:
//   - model: the CMS resource ("projects", "tasks", ...)
//   - action: the abstract operation ("find", "create", ...)
//   - result: "ok", "error" (upstream failed), or "rejected" (validation)
var DispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_requests_total",
		Help:      "Total number of dispatched actions, by model, action, and result.",
	},
	[]string{"model", "action", "result"},
)

// UpstreamDuration measures a single CMS round trip as seen by the dispatcher.
var UpstreamDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of content API round trips issued by the dispatcher.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"model", "action"},
)

// SessionLookups counts session gate resolutions.
// Label:
//   - result: "ok", "expired" (record gone from the store), or "invalid"
//     (bad or missing cookie signature)
var SessionLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_lookups_total",
		Help:      "Total number of session gate checks, by result.",
	},
	[]string{"result"},
)
