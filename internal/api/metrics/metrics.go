// Package metrics defines and registers all custom Prometheus metrics for
// the RankIO API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rankio"

// ── Availability metrics ─────────────────────────────────────────────────────

// AvailabilityLookups counts reservation lookups issued by the availability
// checker.
// Label:
//   - result: "available", "taken", or "error"
var AvailabilityLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_lookups_total",
		Help:      "Total number of reservation lookups, labelled by result.",
	},
	[]string{"result"},
)

// AvailabilityStaleDiscards counts lookup completions discarded because a
// newer candidate superseded them while the lookup was in flight.
var AvailabilityStaleDiscards = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_stale_discards_total",
		Help:      "Total number of availability results discarded as superseded.",
	},
)

// ── Reservation metrics ──────────────────────────────────────────────────────

// ReservationCommits counts atomic profile+reservation commit attempts.
// Label:
//   - outcome: "created", "conflict" (lost the commit race), "exists"
//     (identity already has a profile), or "error"
var ReservationCommits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservation_commits_total",
		Help:      "Total number of reservation commit attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Movie metadata metrics ───────────────────────────────────────────────────

// MetadataFetchDuration measures external provider round trips.
// Label:
//   - outcome: "ok", "not_found", "malformed", or "error"
var MetadataFetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "metadata_fetch_duration_seconds",
		Help:      "Duration of external movie metadata fetches.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// MovieCacheOps counts movie snapshot cache probes.
// Label:
//   - result: "hit" or "miss"
var MovieCacheOps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movie_cache_total",
		Help:      "Total number of movie cache probes, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
