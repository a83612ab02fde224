package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/pkg/checkpoint"
	"github.com/worldmind/worldmind/pkg/engine"
	"github.com/worldmind/worldmind/pkg/models"
)

// MissionCanceller cancels a mission currently running on this pod.
// Implemented by the queue worker pool.
type MissionCanceller interface {
	CancelMission(missionID string) bool
}

// MissionService manages the mission lifecycle: intake onto the queue and
// the user interactions that resume suspended missions.
type MissionService struct {
	client      *ent.Client
	checkpoints *checkpoint.Store
	engine      *engine.Engine
	canceller   MissionCanceller
}

// NewMissionService creates a MissionService. canceller may be nil (running
// missions cannot be interrupted in place, only re-queued rows cancelled).
func NewMissionService(client *ent.Client, checkpoints *checkpoint.Store,
	eng *engine.Engine, canceller MissionCanceller) *MissionService {
	return &MissionService{
		client:      client,
		checkpoints: checkpoints,
		engine:      eng,
		canceller:   canceller,
	}
}

// CreateMissionInput is the intake request for a new mission.
type CreateMissionInput struct {
	Request              string
	InteractionMode      models.InteractionMode
	ExecutionStrategy    models.ExecutionStrategy
	ProjectPath          string
	GitRemoteURL         string
	ReasoningLevel       string
	SkipPerTaskTests     bool
	CreateDeploymentTask bool
}

// Create validates the request and enqueues a pending mission row. A queue
// worker picks it up and drives it through the engine.
func (s *MissionService) Create(httpCtx context.Context, in CreateMissionInput) (*ent.Mission, error) {
	if in.Request == "" {
		return nil, NewValidationError("request", "required")
	}
	mode := in.InteractionMode
	if mode == "" {
		mode = models.ModeFullAuto
	}
	if !mode.Valid() {
		return nil, NewValidationError("interaction_mode", fmt.Sprintf("unknown mode %q", in.InteractionMode))
	}
	if in.ExecutionStrategy != "" && !in.ExecutionStrategy.Valid() {
		return nil, NewValidationError("execution_strategy", fmt.Sprintf("unknown strategy %q", in.ExecutionStrategy))
	}

	// Intake must survive a dropped HTTP connection.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Mission.Create().
		SetID(s.engine.NextMissionID()).
		SetRequest(in.Request).
		SetInteractionMode(string(mode)).
		SetStatus(mission.StatusPending).
		SetSkipPerTaskTests(in.SkipPerTaskTests).
		SetCreateDeploymentTask(in.CreateDeploymentTask)
	if in.ExecutionStrategy != "" {
		builder = builder.SetExecutionStrategy(string(in.ExecutionStrategy))
	}
	if in.ProjectPath != "" {
		builder = builder.SetProjectPath(in.ProjectPath)
	}
	if in.GitRemoteURL != "" {
		builder = builder.SetGitRemoteURL(in.GitRemoteURL)
	}
	if in.ReasoningLevel != "" {
		builder = builder.SetReasoningLevel(in.ReasoningLevel)
	}

	m, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}
	return m, nil
}

// List returns all mission rows, newest first.
func (s *MissionService) List(ctx context.Context) ([]*ent.Mission, error) {
	missions, err := s.client.Mission.Query().
		Order(ent.Desc(mission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, nil
}

// Get returns the mission row and its latest checkpointed state. The state
// is nil for missions no worker has started yet. For active missions the
// checkpoint is always fresher than the queue row.
func (s *MissionService) Get(ctx context.Context, missionID string) (*ent.Mission, *models.MissionState, error) {
	m, err := s.client.Mission.Get(ctx, missionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get mission %s: %w", missionID, err)
	}

	state, err := s.latestState(ctx, missionID)
	if err != nil {
		return nil, nil, err
	}
	return m, state, nil
}

// Approve resumes a mission suspended in AWAITING_APPROVAL. The plan is
// accepted as-is: the mission switches to FULL_AUTO and re-enters the queue
// at the execute node.
func (s *MissionService) Approve(ctx context.Context, missionID string) error {
	state, err := s.requireState(ctx, missionID)
	if err != nil {
		return err
	}
	if state.Status != models.MissionAwaitingApproval {
		return fmt.Errorf("%w: mission %s is %s, not %s",
			ErrInvalidState, missionID, state.Status, models.MissionAwaitingApproval)
	}

	state.InteractionMode = models.ModeFullAuto
	state.Status = models.MissionExecuting
	return s.requeueWithState(ctx, missionID, state, string(engine.NodePlan), string(engine.NodeExecute))
}

// Clarify records the user's answers to the classifier's questions and
// re-enters the queue at the classify node.
func (s *MissionService) Clarify(ctx context.Context, missionID string, answers []models.ClarifyingAnswer) error {
	if len(answers) == 0 {
		return NewValidationError("answers", "required")
	}

	state, err := s.requireState(ctx, missionID)
	if err != nil {
		return err
	}
	if state.Status != models.MissionClarifying {
		return fmt.Errorf("%w: mission %s is %s, not %s",
			ErrInvalidState, missionID, state.Status, models.MissionClarifying)
	}

	byID := make(map[string]string, len(answers))
	for _, a := range answers {
		if a.QuestionID == "" {
			return NewValidationError("answers", "question_id required on every answer")
		}
		byID[a.QuestionID] = a.Answer
	}
	blob, err := json.Marshal(byID)
	if err != nil {
		return fmt.Errorf("failed to marshal clarifying answers: %w", err)
	}

	state.ClarifyingAnswers = string(blob)
	state.Status = models.MissionClassifying
	return s.requeueWithState(ctx, missionID, state, string(engine.NodeClassify), string(engine.NodeClassify))
}

// Cancel stops a mission. A mission running on this pod is cancelled through
// its context; a pending or suspended row is settled directly.
func (s *MissionService) Cancel(ctx context.Context, missionID string) error {
	m, err := s.client.Mission.Get(ctx, missionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get mission %s: %w", missionID, err)
	}

	switch m.Status {
	case mission.StatusCompleted, mission.StatusFailed, mission.StatusCancelled:
		return fmt.Errorf("%w: mission %s already %s", ErrInvalidState, missionID, m.Status)
	}

	// The owning worker settles the row when its context dies.
	if s.canceller != nil && s.canceller.CancelMission(missionID) {
		return nil
	}

	err = m.Update().
		SetStatus(mission.StatusCancelled).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel mission %s: %w", missionID, err)
	}

	// Keep the checkpoint chain consistent with the queue row.
	if state, stateErr := s.latestState(ctx, missionID); stateErr == nil && state != nil && !state.Status.Terminal() {
		state.Status = models.MissionCancelled
		if blob, mErr := state.Marshal(); mErr == nil {
			if _, pErr := s.checkpoints.Put(ctx, missionID, string(engine.NodeFinalize), "", blob); pErr != nil {
				return fmt.Errorf("failed to checkpoint cancellation for %s: %w", missionID, pErr)
			}
		}
	}
	return nil
}

// Retry re-queues a failed mission with selected tasks reset. taskIDs names
// the tasks to reset; nil means every FAILED and SKIPPED task. An explicitly
// empty set is rejected: it would re-run nothing.
func (s *MissionService) Retry(ctx context.Context, missionID string, taskIDs []string) error {
	if taskIDs != nil && len(taskIDs) == 0 {
		return NewValidationError("task_ids", "must name at least one task when present")
	}

	state, err := s.requireState(ctx, missionID)
	if err != nil {
		return err
	}
	if state.Status != models.MissionFailed {
		return fmt.Errorf("%w: mission %s is %s, only FAILED missions can be retried",
			ErrInvalidState, missionID, state.Status)
	}

	reset := make(map[string]bool)
	if taskIDs == nil {
		for _, t := range state.Tasks {
			if t.Status == models.TaskFailed || t.Status == models.TaskSkipped {
				reset[t.ID] = true
			}
		}
	} else {
		for _, id := range taskIDs {
			if state.Task(id) == nil {
				return NewValidationError("task_ids", fmt.Sprintf("unknown task %s", id))
			}
			reset[id] = true
		}
		// A reset parent un-strands its skipped dependents.
		for changed := true; changed; {
			changed = false
			for _, t := range state.Tasks {
				if t.Status != models.TaskSkipped || reset[t.ID] {
					continue
				}
				for _, dep := range t.Dependencies {
					if reset[dep] {
						reset[t.ID] = true
						changed = true
						break
					}
				}
			}
		}
	}
	if len(reset) == 0 {
		return NewValidationError("task_ids", "mission has no failed or skipped tasks to retry")
	}

	for _, t := range state.Tasks {
		if !reset[t.ID] {
			continue
		}
		t.Status = models.TaskPending
		t.Iteration = 0
		t.InputContext = ""
		t.FilesAffected = nil
	}
	remaining := state.CompletedTaskIDs[:0]
	for _, id := range state.CompletedTaskIDs {
		if !reset[id] {
			remaining = append(remaining, id)
		}
	}
	state.CompletedTaskIDs = remaining
	state.Status = models.MissionExecuting
	state.QualityGateGranted = false

	return s.requeueWithState(ctx, missionID, state, string(engine.NodeExecute), string(engine.NodeExecute))
}

// TimelineEntry is one checkpoint summarized for the timeline endpoint.
type TimelineEntry struct {
	CheckpointID string               `json:"checkpoint_id"`
	Node         string               `json:"node"`
	NextNode     string               `json:"next_node,omitempty"`
	Status       models.MissionStatus `json:"status"`
	WaveCount    int                  `json:"wave_count"`
	TaskCount    int                  `json:"task_count"`
	ErrorCount   int                  `json:"error_count"`
	CreatedAt    time.Time            `json:"created_at"`
}

// Timeline returns the mission's checkpoint chain in chronological order.
func (s *MissionService) Timeline(ctx context.Context, missionID string) ([]TimelineEntry, error) {
	if _, err := s.client.Mission.Get(ctx, missionID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mission %s: %w", missionID, err)
	}

	cps, err := s.checkpoints.List(ctx, missionID)
	if err != nil {
		return nil, err
	}

	entries := make([]TimelineEntry, 0, len(cps))
	for _, cp := range cps {
		entry := TimelineEntry{
			CheckpointID: cp.ID,
			Node:         cp.NodeID,
			CreatedAt:    cp.CreatedAt,
		}
		if cp.NextNodeID != nil {
			entry.NextNode = *cp.NextNodeID
		}
		if state, err := models.UnmarshalState(cp.State); err == nil {
			entry.Status = state.Status
			entry.WaveCount = state.WaveCount
			entry.TaskCount = len(state.Tasks)
			entry.ErrorCount = len(state.Errors)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// latestState returns the freshest checkpointed state, or nil when the
// mission has no checkpoints yet.
func (s *MissionService) latestState(ctx context.Context, missionID string) (*models.MissionState, error) {
	cp, err := s.checkpoints.GetLatest(ctx, missionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	state, err := models.UnmarshalState(cp.State)
	if err != nil {
		return nil, fmt.Errorf("corrupt checkpoint for mission %s: %w", missionID, err)
	}
	return state, nil
}

// requireState loads the latest state and fails when none exists.
func (s *MissionService) requireState(ctx context.Context, missionID string) (*models.MissionState, error) {
	if _, err := s.client.Mission.Get(ctx, missionID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mission %s: %w", missionID, err)
	}
	state, err := s.latestState(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("%w: mission %s has not started yet", ErrInvalidState, missionID)
	}
	return state, nil
}

// requeueWithState checkpoints the updated state and flips the queue row
// back to pending so a worker resumes the mission.
func (s *MissionService) requeueWithState(ctx context.Context, missionID string,
	state *models.MissionState, node, nextNode string) error {

	blob, err := state.Marshal()
	if err != nil {
		return err
	}
	if _, err := s.checkpoints.Put(ctx, missionID, node, nextNode, blob); err != nil {
		return err
	}

	err = s.client.Mission.UpdateOneID(missionID).
		SetStatus(mission.StatusPending).
		ClearPodID().
		ClearStartedAt().
		ClearLastInteractionAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-queue mission %s: %w", missionID, err)
	}
	return nil
}
