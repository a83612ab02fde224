package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/pkg/checkpoint"
	"github.com/worldmind/worldmind/pkg/engine"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/pkg/queue"
)

// Executor drives claimed missions through the engine. A mission with a
// checkpoint chain resumes from its latest checkpoint; anything else starts
// fresh from the queue row.
type Executor struct {
	engine      *engine.Engine
	checkpoints *checkpoint.Store
}

// NewExecutor creates the queue executor.
func NewExecutor(eng *engine.Engine, checkpoints *checkpoint.Store) *Executor {
	return &Executor{engine: eng, checkpoints: checkpoints}
}

// Execute implements queue.MissionExecutor.
func (e *Executor) Execute(ctx context.Context, m *ent.Mission) *queue.ExecutionResult {
	log := slog.With("mission_id", m.ID)

	var final *models.MissionState
	if state := e.resumableState(ctx, m.ID); state != nil {
		log.Info("Resuming mission from checkpoint", "status", state.Status)
		final = e.engine.RunWithState(ctx, state)
	} else {
		log.Info("Starting mission")
		final = e.engine.Run(ctx, m.ID, m.Request,
			models.InteractionMode(m.InteractionMode), runOptions(m))
	}

	return toExecutionResult(final)
}

// resumableState loads the latest checkpointed state, or nil when the
// mission has none (fresh intake) or the blob is unreadable.
func (e *Executor) resumableState(ctx context.Context, missionID string) *models.MissionState {
	cp, err := e.checkpoints.GetLatest(ctx, missionID)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("Failed to load latest checkpoint, starting fresh",
				"mission_id", missionID, "error", err)
		}
		return nil
	}
	state, err := models.UnmarshalState(cp.State)
	if err != nil {
		slog.Error("Corrupt checkpoint, starting fresh", "mission_id", missionID, "error", err)
		return nil
	}
	return state
}

func runOptions(m *ent.Mission) engine.RunOptions {
	opts := engine.RunOptions{
		ExecutionStrategy:    models.ExecutionStrategy(m.ExecutionStrategy),
		SkipPerTaskTests:     m.SkipPerTaskTests,
		CreateDeploymentTask: m.CreateDeploymentTask,
	}
	if m.ProjectPath != nil {
		opts.ProjectPath = *m.ProjectPath
	}
	if m.GitRemoteURL != nil {
		opts.GitRemoteURL = *m.GitRemoteURL
	}
	if m.ReasoningLevel != nil {
		opts.ReasoningLevel = *m.ReasoningLevel
	}
	return opts
}

// toExecutionResult maps the engine's terminal or suspended state onto the
// queue row. Both suspension states map to awaiting_approval: queue-level
// "waiting on user input".
func toExecutionResult(state *models.MissionState) *queue.ExecutionResult {
	switch state.Status {
	case models.MissionCompleted:
		return &queue.ExecutionResult{Status: mission.StatusCompleted}
	case models.MissionCancelled:
		return &queue.ExecutionResult{
			Status:       mission.StatusCancelled,
			ErrorMessage: lastError(state),
		}
	case models.MissionAwaitingApproval, models.MissionClarifying:
		return &queue.ExecutionResult{
			Status:    mission.StatusAwaitingApproval,
			Suspended: true,
		}
	case models.MissionFailed:
		return &queue.ExecutionResult{
			Status:       mission.StatusFailed,
			ErrorMessage: lastError(state),
		}
	default:
		return &queue.ExecutionResult{
			Status:       mission.StatusFailed,
			ErrorMessage: "engine returned non-terminal status " + string(state.Status),
		}
	}
}

func lastError(state *models.MissionState) string {
	if len(state.Errors) == 0 {
		return ""
	}
	// The queue row carries a short summary; the full list lives in the
	// checkpoint state.
	if len(state.Errors) == 1 {
		return state.Errors[0]
	}
	return state.Errors[len(state.Errors)-1] + " (" + strings.Join(state.Errors[:len(state.Errors)-1], "; ") + ")"
}
