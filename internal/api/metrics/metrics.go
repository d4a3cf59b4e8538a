// Package metrics defines the custom Prometheus metrics of the portfolio API.
// HTTP request metrics come from echoprometheus; the collectors here cover
// the authentication flow and the visit counter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success", "exists", "invalid" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts requests refused by the token guard.
// Label:
//   - reason: "missing_header" or "invalid_token"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of protected requests rejected for lack of a valid token.",
	},
	[]string{"reason"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// VisitsTrackedTotal counts POST /analytics/track calls.
// Label:
//   - result: "counted" or "deduplicated"
var VisitsTrackedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visits_tracked_total",
		Help:      "Total number of visit tracking calls, by whether they were counted.",
	},
	[]string{"result"},
)

// MessagesReceivedTotal counts contact-form submissions that were stored.
var MessagesReceivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_received_total",
		Help:      "Total number of contact messages received.",
	},
)
