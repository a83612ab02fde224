package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/worldmind/worldmind/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		MaxConcurrentMissions:   5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MissionTimeout:          15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		assert.Equal(t, 1*time.Second, w.pollInterval())
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Equal(t, "", h.CurrentMissionID)
	assert.Equal(t, 0, h.MissionsProcessed)

	w.setStatus(WorkerStatusWorking, "mission-0007")
	h = w.Health()
	assert.Equal(t, WorkerStatusWorking, h.Status)
	assert.Equal(t, "mission-0007", h.CurrentMissionID)

	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Equal(t, "", h.CurrentMissionID)
}
