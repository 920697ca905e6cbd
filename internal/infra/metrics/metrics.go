// Package metrics provides Prometheus metrics for Dayflow — counters,
// gauges, and histograms for analyses, tasks, accounts, and health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Analysis ───────────────────────────────────────────────────────────────

// AnalysesTotal tracks completed workload analyses by level.
var AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dayflow",
	Name:      "analyses_total",
	Help:      "Total workload analyses by resulting level.",
}, []string{"level"})

// AnalysisDuration tracks analysis duration in seconds.
var AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "dayflow",
	Name:      "analysis_duration_seconds",
	Help:      "Workload analysis duration in seconds.",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
})

// FreeSlotsFound tracks free slots reported across all analyses.
var FreeSlotsFound = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "dayflow",
	Name:      "free_slots_found_total",
	Help:      "Total free time slots reported.",
})

// ─── Tasks ──────────────────────────────────────────────────────────────────

// TasksCreated tracks created tasks by category tag.
var TasksCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dayflow",
	Name:      "tasks_created_total",
	Help:      "Total tasks created.",
}, []string{"category"})

// TasksDeleted tracks deleted tasks.
var TasksDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "dayflow",
	Name:      "tasks_deleted_total",
	Help:      "Total tasks deleted.",
})

// ─── Accounts ───────────────────────────────────────────────────────────────

// UsersRegistered tracks account registrations.
var UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "dayflow",
	Name:      "users_registered_total",
	Help:      "Total registered accounts.",
})

// Logins tracks login attempts by result.
var Logins = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dayflow",
	Name:      "logins_total",
	Help:      "Total login attempts by result.",
}, []string{"result"})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks health check results (1=healthy, 0=unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "dayflow",
	Name:      "health_check_status",
	Help:      "Health check result per component (1=healthy, 0=unhealthy).",
}, []string{"check"})

// HealthRecoveries tracks auto-recovery attempts.
var HealthRecoveries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dayflow",
	Name:      "health_recoveries_total",
	Help:      "Total auto-recovery attempts per check.",
}, []string{"check"})
