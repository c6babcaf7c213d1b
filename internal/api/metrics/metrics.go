// Package metrics defines all custom Prometheus metrics for the admin console
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// DirectorySyncsTotal counts imports from the remote directory.
// Label:
//   - result: "ok" or "error"
var DirectorySyncsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_syncs_total",
		Help:      "Total number of directory sync attempts, by result.",
	},
	[]string{"result"},
)

// UserMutationsTotal counts successful record mutations in the store.
// Label:
//   - action: "add", "edit", or "delete"
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of user record mutations, by action.",
	},
	[]string{"action"},
)

// LoginsTotal counts successful logins by role.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// PermissionDenialsTotal counts requests rejected by the permission gate.
// Label:
//   - action: the action the caller was not allowed to perform
var PermissionDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denials_total",
		Help:      "Total number of requests rejected by role-based access control.",
	},
	[]string{"action"},
)

// ValidationFailuresTotal counts mutations blocked by field validation before
// reaching the store.
var ValidationFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of mutations blocked by field validation.",
	},
)
