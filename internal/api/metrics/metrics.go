// Package metrics defines and registers all custom Prometheus metrics for
// the attendance API. It is the single source of truth for metric names,
// labels, and help strings.
//
// The promauto vars register with the default registry at init time; the
// echoprometheus middleware in the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "attendance"

// CheckInsTotal counts successful check-ins.
// Label:
//   - status: the classified record status ("present" or "late")
var CheckInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkins_total",
		Help:      "Total number of successful check-ins, by classified status.",
	},
	[]string{"status"},
)

// CheckOutsTotal counts successful check-outs.
// Label:
//   - status: the final record status after reclassification
var CheckOutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of successful check-outs, by final status.",
	},
	[]string{"status"},
)

// ConflictsTotal counts rejected duplicate check-in/out attempts.
// Label:
//   - op: "checkin" or "checkout"
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of duplicate check-in/out attempts rejected.",
	},
	[]string{"op"},
)

// ExportRowsTotal counts rows written to CSV exports.
// Label:
//   - result: "written" or "skipped" (record whose owner no longer exists)
var ExportRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "export_rows_total",
		Help:      "Total number of CSV export rows, by outcome.",
	},
	[]string{"result"},
)
