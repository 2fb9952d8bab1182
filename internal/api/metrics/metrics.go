// Package metrics defines and registers all custom Prometheus metrics for the
// studio API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role granted to the new user
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered, by role.",
	},
	[]string{"role"},
)

// TokensIssuedTotal counts access tokens handed out.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// AccessDeniedTotal counts requests rejected by the access gate.
// Label:
//   - reason: "missing_token", "expired_token", "invalid_token" or "insufficient_role"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by the access gate, by reason.",
	},
	[]string{"reason"},
)

// ── Schema metrics ────────────────────────────────────────────────────────────

// ProvisioningRunsTotal counts schema provisioning runs.
// Label:
//   - status: "success" or "failure"
var ProvisioningRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "schema_provisioning_runs_total",
		Help:      "Total number of schema provisioning runs, by outcome.",
	},
	[]string{"status"},
)

// TablesCreatedTotal counts tables created by provisioning.
var TablesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "schema_tables_created_total",
		Help:      "Total number of tables created by schema provisioning.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsBookedTotal counts newly created sessions.
// Label:
//   - status: the initial session status
var SessionsBookedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_booked_total",
		Help:      "Total number of tattoo sessions booked, by initial status.",
	},
	[]string{"status"},
)

// IdempotencyTotal counts Idempotency-Key decisions on session booking.
// Label:
//   - result: "hit" (replayed) or "miss" (new booking)
var IdempotencyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_total",
		Help:      "Total number of idempotency checks on session booking, by result (hit/miss).",
	},
	[]string{"result"},
)
