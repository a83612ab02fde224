package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelMission(t *testing.T) {
	pool := &WorkerPool{
		activeMissions: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterMission("mission-0001", cancel)

	// Cancel should succeed for a registered mission
	assert.True(t, pool.CancelMission("mission-0001"))
	assert.Error(t, ctx.Err())

	// Cancel should return false for an unknown mission
	assert.False(t, pool.CancelMission("unknown"))
}

func TestPoolUnregisterMission(t *testing.T) {
	pool := &WorkerPool{
		activeMissions: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterMission("mission-0001", cancel)
	assert.True(t, pool.CancelMission("mission-0001"))

	pool.UnregisterMission("mission-0001")
	assert.False(t, pool.CancelMission("mission-0001"))
}

func TestPoolGetActiveMissionIDs(t *testing.T) {
	pool := &WorkerPool{
		activeMissions: make(map[string]context.CancelFunc),
	}

	assert.Empty(t, pool.getActiveMissionIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterMission("mission-0001", cancel1)
	pool.RegisterMission("mission-0002", cancel2)

	ids := pool.getActiveMissionIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "mission-0001")
	assert.Contains(t, ids, "mission-0002")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:         make(chan struct{}),
		activeMissions: make(map[string]context.CancelFunc),
	}

	pool.Stop()

	// sync.Once guards the close.
	assert.NotPanics(t, func() { pool.Stop() })
}
