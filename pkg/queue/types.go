// Package queue provides the mission queue: a worker pool claiming mission
// rows from PostgreSQL and driving them through the engine.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/ent/mission"
)

// Sentinel errors for queue operations.
var (
	// ErrNoMissionsAvailable indicates no pending missions are in the queue.
	ErrNoMissionsAvailable = errors.New("no missions available")

	// ErrAtCapacity indicates the global concurrent mission limit is reached.
	ErrAtCapacity = errors.New("at capacity")
)

// MissionExecutor drives one claimed mission to a terminal or suspended
// state. The executor checkpoints progressively while running; the worker
// only handles claiming, heartbeat, and the queue-row status update.
type MissionExecutor interface {
	Execute(ctx context.Context, m *ent.Mission) *ExecutionResult
}

// ExecutionResult is the queue-level outcome of one execution. Fine-grained
// mission state lives in the checkpoint chain, not here.
type ExecutionResult struct {
	// Status is the terminal or suspended queue status.
	Status mission.Status
	// Suspended is set when the mission paused for user input (approval or
	// clarification); the row keeps no completed_at and can be resumed.
	Suspended bool
	// ErrorMessage carries failure detail for the queue row.
	ErrorMessage string
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveMissions   int            `json:"active_missions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string       `json:"id"`
	Status            WorkerStatus `json:"status"`
	CurrentMissionID  string       `json:"current_mission_id,omitempty"`
	MissionsProcessed int          `json:"missions_processed"`
	LastActivity      time.Time    `json:"last_activity"`
}
