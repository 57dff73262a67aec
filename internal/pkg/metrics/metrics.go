// Package metrics defines and registers all custom Prometheus metrics for the
// commission marketplace API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commission"

// SignupsTotal counts new accounts, labelled by the role chosen at signup.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by initial role.",
	},
	[]string{"role"},
)

// ArtworksGeneratedTotal counts artworks stored after successful synthesis.
var ArtworksGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artworks_generated_total",
		Help:      "Total number of artworks generated and stored.",
	},
)

// JobsCreatedTotal counts commission jobs created by buyers.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of commission jobs created.",
	},
)

// JobTransitionsTotal counts status transitions that were applied.
// Label:
//   - status: the status the job moved to (e.g. "accepted")
var JobTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_transitions_total",
		Help:      "Total number of job status transitions applied, by target status.",
	},
	[]string{"status"},
)

// TransitionErrorsTotal counts rejected status transitions.
// Label:
//   - reason: "invalid_transition", "forbidden" or "conflict" (lost race)
var TransitionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_transition_errors_total",
		Help:      "Total number of rejected job status transitions, by reason.",
	},
	[]string{"reason"},
)

// MessagesPostedTotal counts chat messages appended to job threads.
var MessagesPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_posted_total",
		Help:      "Total number of chat messages appended to jobs.",
	},
)
