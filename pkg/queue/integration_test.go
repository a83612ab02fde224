package queue

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/test/util"
)

// countingExecutor completes every mission instantly.
type countingExecutor struct {
	executed atomic.Int64
}

func (e *countingExecutor) Execute(ctx context.Context, m *ent.Mission) *ExecutionResult {
	e.executed.Add(1)
	return &ExecutionResult{Status: mission.StatusCompleted}
}

func createPendingMission(t *testing.T, client *ent.Client, id string) *ent.Mission {
	t.Helper()
	m, err := client.Mission.Create().
		SetID(id).
		SetRequest("test request").
		Save(context.Background())
	require.NoError(t, err)
	return m
}

func TestWorkerClaimsAndCompletesMission(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	createPendingMission(t, client, "mission-0001")

	cfg := testQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 0

	executor := &countingExecutor{}
	pool := NewWorkerPool("pod-test", client, cfg, executor)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		m, err := client.Mission.Get(context.Background(), "mission-0001")
		return err == nil && m.Status == mission.StatusCompleted
	}, 5*time.Second, 20*time.Millisecond)

	m, err := client.Mission.Get(context.Background(), "mission-0001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), executor.executed.Load())
	require.NotNil(t, m.PodID)
	assert.Equal(t, "pod-test", *m.PodID)
	assert.NotNil(t, m.StartedAt)
	assert.NotNil(t, m.CompletedAt)
}

func TestWorkerFIFOOrder(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	first := createPendingMission(t, client, "mission-0001")
	_, err := first.Update().SetCreatedAt(time.Now().Add(-time.Minute)).Save(context.Background())
	require.NoError(t, err)
	createPendingMission(t, client, "mission-0002")

	cfg := testQueueConfig()
	w := NewWorker("w", "pod-test", client, cfg, nil, nil)

	claimed, err := w.claimNextMission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mission-0001", claimed.ID, "oldest row is claimed first")

	claimed, err = w.claimNextMission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mission-0002", claimed.ID)

	_, err = w.claimNextMission(context.Background())
	assert.ErrorIs(t, err, ErrNoMissionsAvailable)
}

func TestSuspendedMissionKeepsNoCompletedAt(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	m := createPendingMission(t, client, "mission-0001")

	cfg := testQueueConfig()
	w := NewWorker("w", "pod-test", client, cfg, nil, nil)

	err := w.updateMissionStatus(context.Background(), m, &ExecutionResult{
		Status:    mission.StatusAwaitingApproval,
		Suspended: true,
	})
	require.NoError(t, err)

	got, err := client.Mission.Get(context.Background(), "mission-0001")
	require.NoError(t, err)
	assert.Equal(t, mission.StatusAwaitingApproval, got.Status)
	assert.Nil(t, got.CompletedAt)
}

func TestOrphanRecoveryRequeues(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	m := createPendingMission(t, client, "mission-0001")
	stale := time.Now().Add(-time.Hour)
	_, err := m.Update().
		SetStatus(mission.StatusInProgress).
		SetPodID("pod-dead").
		SetStartedAt(stale).
		SetLastInteractionAt(stale).
		Save(context.Background())
	require.NoError(t, err)

	pool := NewWorkerPool("pod-test", client, testQueueConfig(), nil)
	require.NoError(t, pool.detectAndRecoverOrphans(context.Background()))

	got, err := client.Mission.Get(context.Background(), "mission-0001")
	require.NoError(t, err)
	assert.Equal(t, mission.StatusPending, got.Status)
	assert.Nil(t, got.PodID)
	assert.Nil(t, got.LastInteractionAt)
}

func TestOrphanRecoverySettlesTerminalCheckpoint(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	m := createPendingMission(t, client, "mission-0001")
	stale := time.Now().Add(-time.Hour)
	_, err := m.Update().
		SetStatus(mission.StatusInProgress).
		SetPodID("pod-dead").
		SetLastInteractionAt(stale).
		Save(context.Background())
	require.NoError(t, err)

	// A terminal checkpoint means the mission finished but the pod died
	// before settling the queue row.
	state := &models.MissionState{MissionID: "mission-0001", Status: models.MissionCompleted}
	blob, err := state.Marshal()
	require.NoError(t, err)
	_, err = client.Checkpoint.Create().
		SetID("cp-1").
		SetThreadID("mission-0001").
		SetNodeID("finalize").
		SetState(blob).
		Save(context.Background())
	require.NoError(t, err)

	pool := NewWorkerPool("pod-test", client, testQueueConfig(), nil)
	require.NoError(t, pool.detectAndRecoverOrphans(context.Background()))

	got, err := client.Mission.Get(context.Background(), "mission-0001")
	require.NoError(t, err)
	assert.Equal(t, mission.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	mine := createPendingMission(t, client, "mission-0001")
	_, err := mine.Update().
		SetStatus(mission.StatusInProgress).
		SetPodID("pod-test").
		Save(context.Background())
	require.NoError(t, err)

	other := createPendingMission(t, client, "mission-0002")
	_, err = other.Update().
		SetStatus(mission.StatusInProgress).
		SetPodID("pod-other").
		Save(context.Background())
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(context.Background(), client, "pod-test"))

	got, err := client.Mission.Get(context.Background(), "mission-0001")
	require.NoError(t, err)
	assert.Equal(t, mission.StatusPending, got.Status, "own rows are re-queued")

	got, err = client.Mission.Get(context.Background(), "mission-0002")
	require.NoError(t, err)
	assert.Equal(t, mission.StatusInProgress, got.Status, "other pods' rows are untouched")
}
