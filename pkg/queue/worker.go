package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes missions.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor MissionExecutor
	pool     MissionRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentMissionID  string
	missionsProcessed int
	lastActivity      time.Time
}

// MissionRegistry is the subset of WorkerPool used by Worker for mission
// registration.
type MissionRegistry interface {
	RegisterMission(missionID string, cancel context.CancelFunc)
	UnregisterMission(missionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor MissionExecutor, pool MissionRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            w.status,
		CurrentMissionID:  w.currentMissionID,
		MissionsProcessed: w.missionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoMissionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing mission", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a mission, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check is best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.Mission.Query().
		Where(mission.StatusEQ(mission.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active missions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentMissions {
		return ErrAtCapacity
	}

	m, err := w.claimNextMission(ctx)
	if err != nil {
		return err
	}

	log := slog.With("mission_id", m.ID, "worker_id", w.id)
	log.Info("Mission claimed")

	w.setStatus(WorkerStatusWorking, m.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	missionCtx, cancelMission := context.WithTimeout(ctx, w.config.MissionTimeout)
	defer cancelMission()

	// Register the cancel function for API-triggered cancellation.
	w.pool.RegisterMission(m.ID, cancelMission)
	defer w.pool.UnregisterMission(m.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(missionCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, m.ID)

	result := w.executor.Execute(missionCtx, m)

	// Synthesize a safe result if the executor returned nil.
	if result == nil {
		switch {
		case errors.Is(missionCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status:       mission.StatusFailed,
				ErrorMessage: fmt.Sprintf("mission timed out after %v", w.config.MissionTimeout),
			}
		case errors.Is(missionCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status:       mission.StatusCancelled,
				ErrorMessage: context.Canceled.Error(),
			}
		default:
			result = &ExecutionResult{
				Status:       mission.StatusFailed,
				ErrorMessage: "executor returned nil result",
			}
		}
	}
	if result.Status == "" && errors.Is(missionCtx.Err(), context.DeadlineExceeded) {
		result = &ExecutionResult{
			Status:       mission.StatusFailed,
			ErrorMessage: fmt.Sprintf("mission timed out after %v", w.config.MissionTimeout),
		}
	}
	if result.Status == "" && errors.Is(missionCtx.Err(), context.Canceled) {
		result = &ExecutionResult{
			Status:       mission.StatusCancelled,
			ErrorMessage: context.Canceled.Error(),
		}
	}

	cancelHeartbeat()

	// Update the queue row with a background context; the mission context may
	// already be cancelled.
	if err := w.updateMissionStatus(context.Background(), m, result); err != nil {
		log.Error("Failed to update mission status", "error", err)
		return err
	}

	w.mu.Lock()
	w.missionsProcessed++
	w.mu.Unlock()

	log.Info("Mission processing complete", "status", result.Status, "suspended", result.Suspended)
	return nil
}

// claimNextMission atomically claims the next pending mission using
// FOR UPDATE SKIP LOCKED, ordered by created_at for FIFO processing.
func (w *Worker) claimNextMission(ctx context.Context) (*ent.Mission, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	m, err := tx.Mission.Query().
		Where(mission.StatusEQ(mission.StatusPending)).
		Order(ent.Asc(mission.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoMissionsAvailable
		}
		return nil, fmt.Errorf("failed to query pending mission: %w", err)
	}

	now := time.Now()
	m, err = m.Update().
		SetStatus(mission.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim mission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return m, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, missionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Mission.UpdateOneID(missionID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "mission_id", missionID, "error", err)
			}
		}
	}
}

// updateMissionStatus writes the final queue-row status. Suspended missions
// keep no completed_at: they are waiting for user input and resume later.
func (w *Worker) updateMissionStatus(ctx context.Context, m *ent.Mission, result *ExecutionResult) error {
	update := w.client.Mission.UpdateOneID(m.ID).
		SetStatus(result.Status)

	if !result.Suspended {
		update = update.SetCompletedAt(time.Now())
	}
	if result.ErrorMessage != "" {
		update = update.SetErrorMessage(result.ErrorMessage)
	}

	return update.Exec(ctx)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, missionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMissionID = missionID
	w.lastActivity = time.Now()
}
