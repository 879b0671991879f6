// Package metrics defines and registers all custom Prometheus metrics for
// the patient gateway. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// at init time via promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "patient_gateway"

// ── Provisioning metrics ─────────────────────────────────────────────────────

// SignupsTotal counts signup attempts by outcome.
// Labels:
//   - outcome: "ok", "backend_rejected", "incomplete", "profile_failed"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SignupRollbacksTotal counts compensating identity deletions after a
// profile-insert failure.
// Label:
//   - result: "ok" (identity deleted) or "failed" (identity orphaned)
var SignupRollbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_rollbacks_total",
		Help:      "Total number of compensating identity deletions, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts password logins by outcome ("ok" or "rejected").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Medical record metrics ───────────────────────────────────────────────────

// RecordOpsTotal counts successful medical-record operations.
// Label:
//   - op: "create", "read", "update"
var RecordOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_ops_total",
		Help:      "Total number of successful medical record operations, by op.",
	},
	[]string{"op"},
)

// DecryptFailuresTotal counts sensitive columns that failed to decrypt on
// the read path. Any non-zero value means rows exist that were sealed under
// a different key or corrupted in place.
// Label:
//   - column: the affected record column
var DecryptFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decrypt_failures_total",
		Help:      "Total number of field decryption failures on record reads, by column.",
	},
	[]string{"column"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// SessionCacheTotal counts token-resolution cache decisions.
// Label:
//   - result: "hit" or "miss"
var SessionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_cache_total",
		Help:      "Total number of session cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// SessionVerifyDuration measures the latency of resolving a bearer token
// against the identity backend (cache misses only).
var SessionVerifyDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "session_verify_duration_seconds",
		Help:      "Duration of bearer token resolution against the identity backend.",
		Buckets:   prometheus.DefBuckets,
	},
)
