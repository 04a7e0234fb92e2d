// Package metrics defines and registers the custom Prometheus metrics of the
// connects service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and served by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "connects"

// ── Ledger metrics ────────────────────────────────────────────────────────────

// LedgerMutationsTotal counts credit and debit attempts.
// Labels:
//   - type: "earned" or "spent"
//   - result: "ok", "replayed", "insufficient", "busy" or "error"
var LedgerMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_mutations_total",
		Help:      "Total number of connects ledger mutations, by entry type and result.",
	},
	[]string{"type", "result"},
)

// LedgerAmountTotal sums the connects moved by committed mutations.
// Label:
//   - type: "earned" or "spent"
var LedgerAmountTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_amount_total",
		Help:      "Total connects moved by committed ledger mutations.",
	},
	[]string{"type"},
)

// IdempotencyCacheTotal counts idempotency cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var IdempotencyCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_cache_total",
		Help:      "Total number of idempotency cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Directory metrics ─────────────────────────────────────────────────────────

// DirectoryAssignmentsTotal counts directory ids issued.
// Label:
//   - role: "freelancer" or "client"
var DirectoryAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_assignments_total",
		Help:      "Total number of directory ids assigned, by role.",
	},
	[]string{"role"},
)

// OnboardingCompletionsTotal counts onboarding submissions.
// Label:
//   - result: "completed", "replayed" or "failed"
var OnboardingCompletionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_completions_total",
		Help:      "Total number of onboarding submissions, by result.",
	},
	[]string{"result"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreTxnAttemptsTotal counts transaction attempts, including retries.
// Labels:
//   - store: "memory" or "mongo"
//   - outcome: "committed", "conflict" or "aborted"
var StoreTxnAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_txn_attempts_total",
		Help:      "Total number of document store transaction attempts, by outcome.",
	},
	[]string{"store", "outcome"},
)

// StoreTxnDuration measures a whole RunTransaction call, retries included.
var StoreTxnDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_txn_duration_seconds",
		Help:      "Duration of document store transactions including retries.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"store"},
)
