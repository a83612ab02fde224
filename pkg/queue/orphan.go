package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/worldmind/worldmind/ent"
	entcheckpoint "github.com/worldmind/worldmind/ent/checkpoint"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/pkg/models"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned missions.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress missions with stale heartbeats.
// A mission whose checkpoint chain already reached a terminal state gets its
// queue row settled; anything else is reset to pending so another worker can
// resume it from its latest checkpoint.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Mission.Query().
		Where(
			mission.StatusEQ(mission.StatusInProgress),
			mission.LastInteractionAtNotNil(),
			mission.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned missions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned missions", "count", len(orphans))

	recovered := 0
	for _, m := range orphans {
		if err := p.recoverOrphanedMission(ctx, m); err != nil {
			slog.Error("Failed to recover orphaned mission",
				"mission_id", m.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedMission settles or re-queues a single orphaned mission.
func (p *WorkerPool) recoverOrphanedMission(ctx context.Context, m *ent.Mission) error {
	podID := "unknown"
	if m.PodID != nil {
		podID = *m.PodID
	}
	lastHeartbeat := "unknown"
	if m.LastInteractionAt != nil {
		lastHeartbeat = m.LastInteractionAt.Format(time.RFC3339)
	}
	log := slog.With("mission_id", m.ID, "old_pod_id", podID)

	if status, terminal := p.checkpointTerminalStatus(ctx, m.ID); terminal {
		err := m.Update().
			SetStatus(status).
			SetCompletedAt(time.Now()).
			SetErrorMessage(fmt.Sprintf("Orphaned after finishing: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to settle orphaned mission: %w", err)
		}
		log.Warn("Orphaned mission settled from terminal checkpoint", "status", status)
		return nil
	}

	// Re-queue: the next claim resumes from the latest checkpoint.
	err := m.Update().
		SetStatus(mission.StatusPending).
		ClearPodID().
		ClearStartedAt().
		ClearLastInteractionAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-queue orphaned mission: %w", err)
	}
	log.Warn("Orphaned mission re-queued", "last_heartbeat", lastHeartbeat)
	return nil
}

// checkpointTerminalStatus reads the mission's latest checkpoint and maps a
// terminal engine status to the queue-row status.
func (p *WorkerPool) checkpointTerminalStatus(ctx context.Context, missionID string) (mission.Status, bool) {
	cp, err := p.client.Checkpoint.Query().
		Where(entcheckpoint.ThreadIDEQ(missionID)).
		Order(ent.Desc(entcheckpoint.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return "", false
	}
	state, err := models.UnmarshalState(cp.State)
	if err != nil {
		slog.Warn("Failed to unmarshal checkpoint state during orphan scan",
			"mission_id", missionID, "error", err)
		return "", false
	}

	switch state.Status {
	case models.MissionCompleted:
		return mission.StatusCompleted, true
	case models.MissionFailed:
		return mission.StatusFailed, true
	case models.MissionCancelled:
		return mission.StatusCancelled, true
	}
	return "", false
}

// CleanupStartupOrphans re-queues missions claimed by this pod id that were
// in progress when the pod previously crashed. Called once during startup,
// before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Mission.Query().
		Where(
			mission.StatusEQ(mission.StatusInProgress),
			mission.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID, "count", len(orphans))

	for _, m := range orphans {
		err := m.Update().
			SetStatus(mission.StatusPending).
			ClearPodID().
			ClearStartedAt().
			ClearLastInteractionAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to re-queue startup orphan",
				"mission_id", m.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan re-queued", "mission_id", m.ID)
	}

	return nil
}
