// Package metrics exposes the orchestrator's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MissionsStarted counts missions that entered execution.
	MissionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worldmind_missions_started_total",
		Help: "Missions that entered execution.",
	})

	// MissionsCompleted counts missions by terminal status.
	MissionsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worldmind_missions_completed_total",
		Help: "Missions that reached a terminal status.",
	}, []string{"status"})

	// WavesExecuted counts scheduled waves.
	WavesExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worldmind_waves_executed_total",
		Help: "Task waves dispatched by the scheduler.",
	})

	// FileOverlapDeferrals counts tasks deferred from a wave because their
	// declared target files overlapped an already-admitted task.
	FileOverlapDeferrals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worldmind_file_overlap_deferrals_total",
		Help: "Wave candidates deferred due to target-file overlap.",
	})

	// MergeRetrySuccess counts merges that succeeded after at least one
	// rebase retry.
	MergeRetrySuccess = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worldmind_merge_retry_success_total",
		Help: "Branch merges that succeeded only after a rebase retry.",
	})

	// MergeConflicts counts branches that stayed conflicted after retries.
	MergeConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worldmind_merge_conflicts_total",
		Help: "Branch merges abandoned as conflicted after all retries.",
	})

	// OscillationFailures counts tasks force-failed by oscillation detection.
	OscillationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worldmind_oscillation_failures_total",
		Help: "Tasks force-failed after repeating identical file-change sets.",
	})

	// TasksDispatched counts sandbox dispatches by agent role.
	TasksDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worldmind_tasks_dispatched_total",
		Help: "Tasks dispatched to sandboxes.",
	}, []string{"agent"})

	// TaskDuration observes per-task wall-clock seconds by agent role.
	TaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "worldmind_task_duration_seconds",
		Help:    "Wall-clock duration of sandbox task executions.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"agent"})
)
