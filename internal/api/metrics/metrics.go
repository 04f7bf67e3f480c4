// Package metrics defines and registers all custom Prometheus metrics for
// the social API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register with the default registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "social"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations.",
	},
)

// TokenRefreshesTotal counts access-token refreshes.
// Label:
//   - result: "success", "missing_session", or "invalid"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of access-token refresh attempts, by result.",
	},
	[]string{"result"},
)

// FriendRequestsTotal counts friendship state-machine operations.
// Label:
//   - outcome: "sent", "accepted", "rejected", or "conflict"
var FriendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friend_requests_total",
		Help:      "Total number of friend request operations, by outcome.",
	},
	[]string{"outcome"},
)

// MessagesSentTotal counts persisted direct messages.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of direct messages persisted.",
	},
)

// MessagesBlockedTotal counts messages refused by the friendship gate.
var MessagesBlockedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_blocked_total",
		Help:      "Total number of messages refused because the users are not friends.",
	},
)
