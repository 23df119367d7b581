// Package metrics defines the custom Prometheus metrics for the adoption
// API. It is the single source of truth for metric names, labels, and help
// strings; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adoption_api"

// AdoptionsCreatedTotal counts adoptions that completed the full workflow.
var AdoptionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adoptions_created_total",
		Help:      "Total number of adoptions successfully created.",
	},
)

// AdoptionsReversedTotal counts adoption deletions, each of which reverses
// the pet flag and the user's pet reference.
var AdoptionsReversedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adoptions_reversed_total",
		Help:      "Total number of adoptions reversed (deleted).",
	},
)

// AdoptionFailuresTotal counts failed adoption attempts.
// Label:
//   - reason: the application error code (e.g. "RESOURCE_NOT_FOUND",
//     "INVALID_REQUEST", "INTERNAL_SERVER_ERROR")
var AdoptionFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adoption_failures_total",
		Help:      "Total number of failed adoption attempts, by error code.",
	},
	[]string{"reason"},
)

// MockRecordsGeneratedTotal counts generated mock records.
// Label:
//   - kind: "pet" or "user"
var MockRecordsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mock_records_generated_total",
		Help:      "Total number of mock records generated, by kind.",
	},
	[]string{"kind"},
)
