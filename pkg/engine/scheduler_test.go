package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/pkg/models"
)

func pendingTask(id string, deps []string, targets ...string) *models.Task {
	return &models.Task{
		ID:           id,
		Agent:        models.RoleCoder,
		Status:       models.TaskPending,
		Dependencies: deps,
		TargetFiles:  targets,
	}
}

func TestScheduleNextWave(t *testing.T) {
	t.Run("sequential takes exactly one candidate, lowest id", func(t *testing.T) {
		tasks := []*models.Task{
			pendingTask("TASK-002", nil),
			pendingTask("TASK-001", nil),
		}
		sel := ScheduleNextWave(tasks, nil, models.StrategySequential, 4)
		require.Len(t, sel.Admitted, 1)
		assert.Equal(t, "TASK-001", sel.Admitted[0].ID)
	})

	t.Run("parallel admits up to maxParallel in id order", func(t *testing.T) {
		tasks := []*models.Task{
			pendingTask("TASK-003", nil, "c.go"),
			pendingTask("TASK-001", nil, "a.go"),
			pendingTask("TASK-002", nil, "b.go"),
		}
		sel := ScheduleNextWave(tasks, nil, models.StrategyParallel, 2)
		require.Len(t, sel.Admitted, 2)
		assert.Equal(t, "TASK-001", sel.Admitted[0].ID)
		assert.Equal(t, "TASK-002", sel.Admitted[1].ID)
		assert.Equal(t, 0, sel.Deferred)
	})

	t.Run("file overlap defers the later candidate", func(t *testing.T) {
		tasks := []*models.Task{
			pendingTask("TASK-001", nil, "pom.xml"),
			pendingTask("TASK-002", nil, "pom.xml"),
		}
		sel := ScheduleNextWave(tasks, nil, models.StrategyParallel, 2)
		require.Len(t, sel.Admitted, 1)
		assert.Equal(t, "TASK-001", sel.Admitted[0].ID)
		assert.Equal(t, 1, sel.Deferred)

		// Once TASK-001 completes, TASK-002 runs in the next wave.
		tasks[0].Status = models.TaskPassed
		sel = ScheduleNextWave(tasks, map[string]bool{"TASK-001": true}, models.StrategyParallel, 2)
		require.Len(t, sel.Admitted, 1)
		assert.Equal(t, "TASK-002", sel.Admitted[0].ID)
	})

	t.Run("unsatisfied dependencies hold a task back", func(t *testing.T) {
		tasks := []*models.Task{
			pendingTask("TASK-001", nil),
			pendingTask("TASK-002", []string{"TASK-001"}),
		}
		sel := ScheduleNextWave(tasks, nil, models.StrategyParallel, 4)
		require.Len(t, sel.Admitted, 1)
		assert.Equal(t, "TASK-001", sel.Admitted[0].ID)
	})

	t.Run("dependents of failed tasks are never admitted", func(t *testing.T) {
		failed := pendingTask("TASK-001", nil)
		failed.Status = models.TaskFailed
		tasks := []*models.Task{
			failed,
			pendingTask("TASK-002", []string{"TASK-001"}),
		}
		sel := ScheduleNextWave(tasks, map[string]bool{"TASK-001": true}, models.StrategyParallel, 4)
		assert.Empty(t, sel.Admitted)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		tasks := []*models.Task{
			pendingTask("TASK-003", nil, "x.go"),
			pendingTask("TASK-001", nil, "x.go"),
			pendingTask("TASK-002", nil, "y.go"),
		}
		first := ScheduleNextWave(tasks, nil, models.StrategyParallel, 3)
		second := ScheduleNextWave(tasks, nil, models.StrategyParallel, 3)
		assert.Equal(t, first, second)

		// Lexicographically first claimant wins the overlapping file.
		require.Len(t, first.Admitted, 2)
		assert.Equal(t, "TASK-001", first.Admitted[0].ID)
		assert.Equal(t, "TASK-002", first.Admitted[1].ID)
		assert.Equal(t, 1, first.Deferred)
	})

	t.Run("no candidates yields empty selection", func(t *testing.T) {
		done := pendingTask("TASK-001", nil)
		done.Status = models.TaskPassed
		sel := ScheduleNextWave([]*models.Task{done}, map[string]bool{"TASK-001": true}, models.StrategyParallel, 4)
		assert.Empty(t, sel.Admitted)
	})

	t.Run("tasks without target files never collide", func(t *testing.T) {
		tasks := []*models.Task{
			pendingTask("TASK-001", nil),
			pendingTask("TASK-002", nil),
		}
		sel := ScheduleNextWave(tasks, nil, models.StrategyParallel, 2)
		assert.Len(t, sel.Admitted, 2)
	})
}
