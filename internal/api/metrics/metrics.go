// Package metrics defines and registers all custom Prometheus metrics for
// the user account API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userapi"

// SignupsTotal counts user accounts created successfully.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of user accounts created.",
	},
)

// SignupsRejectedTotal counts signups aborted before persistence.
// Label:
//   - reason: "validation", "conflict", "upload", "no_image"
var SignupsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_rejected_total",
		Help:      "Total number of signup attempts rejected, by reason.",
	},
	[]string{"reason"},
)

// ImageUploadsTotal counts forwards to the asset host.
// Label:
//   - result: "ok" or "error"
var ImageUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of image uploads to the asset host, by result.",
	},
	[]string{"result"},
)

// UsersDeletedTotal counts hard-deleted user records.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user records deleted.",
	},
)
