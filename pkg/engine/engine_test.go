package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/pkg/checkpoint"
	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/events"
	"github.com/worldmind/worldmind/pkg/gitws"
	"github.com/worldmind/worldmind/pkg/llm"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/pkg/planner"
	"github.com/worldmind/worldmind/pkg/sandbox"
	"github.com/worldmind/worldmind/test/util"
)

// seqOracle replays one canned completion per call, in order.
type seqOracle struct {
	mu        sync.Mutex
	responses []string
}

func (o *seqOracle) Complete(ctx context.Context, req llm.Request) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.responses) == 0 {
		return "", context.Canceled
	}
	next := o.responses[0]
	o.responses = o.responses[1:]
	return next, nil
}

const featureClassification = `{"classification": "feature", "needs_specification": false}`

const singleCoderPlan = `{
  "execution_strategy": "PARALLEL",
  "tasks": [
    {
      "id": "TASK-001",
      "agent": "CODER",
      "description": "Add the health endpoint",
      "success_criteria": "GET /health returns 200",
      "target_files": ["src/api.go"],
      "on_failure": "RETRY"
    }
  ]
}`

// passingScripts makes every code task pass its verifiers.
func passingScripts() map[models.AgentRole]roleScript {
	return map[models.AgentRole]roleScript{
		models.RoleCoder: {
			output:  "implemented",
			changes: []models.FileRecord{{Path: "src/api.go", Action: models.FileCreated, LinesChanged: 20}},
		},
		models.RoleTester:   {output: "Tests run: 4, Failures: 0, Errors: 0"},
		models.RoleReviewer: {output: "Score: 9/10\nApproved: yes"},
	}
}

type engineFixture struct {
	engine *Engine
	store  *checkpoint.Store
	client *ent.Client
}

func newTestEngine(t *testing.T, oracle *seqOracle, scripts map[models.AgentRole]roleScript) engineFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	store := checkpoint.NewStore(client)

	cfg := config.Default()
	cfg.Engine.MaxParallel = 4
	cfg.Engine.MergeRetryBackoff = time.Millisecond

	providers := func(ws *gitws.Workspace) sandbox.Provider {
		return newScriptedProvider(scripts)
	}
	eng := New(cfg, store, events.NewBus(),
		planner.NewClassifier(oracle, 1024),
		planner.NewSpecifier(oracle, 4096),
		planner.NewPlanner(oracle, cfg.Deployer, 4096),
		&recordingRunner{}, providers)
	return engineFixture{engine: eng, store: store, client: client}
}

func createMissionRow(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Mission.Create().
		SetID(id).
		SetRequest("test request").
		Save(context.Background())
	require.NoError(t, err)
}

func TestEngineRunFullAuto(t *testing.T) {
	oracle := &seqOracle{responses: []string{featureClassification, singleCoderPlan}}
	fx := newTestEngine(t, oracle, passingScripts())
	createMissionRow(t, fx.client, "mission-0001")

	state := fx.engine.Run(context.Background(), "mission-0001", "add a health endpoint",
		models.ModeFullAuto, RunOptions{GitRemoteURL: "https://git.example.com/repo.git"})

	assert.Equal(t, models.MissionCompleted, state.Status)
	assert.True(t, state.QualityGateGranted)
	require.Len(t, state.Tasks, 1)
	assert.Equal(t, models.TaskPassed, state.Tasks[0].Status)
	assert.Equal(t, []string{"TASK-001"}, state.CompletedTaskIDs)
	assert.Equal(t, 1, state.WaveCount)

	// The terminal state is durable and round-trips through the checkpoint.
	cp, err := fx.store.GetLatest(context.Background(), "mission-0001")
	require.NoError(t, err)
	restored, err := models.UnmarshalState(cp.State)
	require.NoError(t, err)
	assert.Equal(t, models.MissionCompleted, restored.Status)
	assert.Equal(t, string(NodeFinalize), cp.NodeID)
}

const overlappingCoderPlan = `{
  "execution_strategy": "PARALLEL",
  "tasks": [
    {
      "id": "TASK-001",
      "agent": "CODER",
      "description": "Add the health endpoint",
      "success_criteria": "GET /health returns 200",
      "target_files": ["src/api.go"],
      "on_failure": "RETRY"
    },
    {
      "id": "TASK-002",
      "agent": "CODER",
      "description": "Report uptime in the health payload",
      "success_criteria": "GET /health includes uptime",
      "target_files": ["src/api.go"],
      "on_failure": "RETRY"
    }
  ]
}`

func TestEngineWaveCooldownDelaysNextWave(t *testing.T) {
	oracle := &seqOracle{responses: []string{featureClassification, overlappingCoderPlan}}
	fx := newTestEngine(t, oracle, passingScripts())
	fx.engine.cfg.Engine.WaveCooldown = 60 * time.Millisecond
	createMissionRow(t, fx.client, "mission-0001")

	start := time.Now()
	state := fx.engine.Run(context.Background(), "mission-0001", "add a health endpoint",
		models.ModeFullAuto, RunOptions{GitRemoteURL: "https://git.example.com/repo.git"})
	elapsed := time.Since(start)

	assert.Equal(t, models.MissionCompleted, state.Status)
	// Overlapping target files push the second task into its own wave.
	assert.Equal(t, 2, state.WaveCount)
	assert.GreaterOrEqual(t, elapsed, 2*fx.engine.cfg.Engine.WaveCooldown,
		"expected a cooldown after each wave")
}

func TestEngineSpecificationPath(t *testing.T) {
	oracle := &seqOracle{responses: []string{
		`{"classification": "feature", "needs_specification": true}`,
		"# Spec\nBuild the health endpoint with uptime reporting.",
		singleCoderPlan,
	}}
	fx := newTestEngine(t, oracle, passingScripts())
	createMissionRow(t, fx.client, "mission-0001")

	state := fx.engine.Run(context.Background(), "mission-0001", "add a health endpoint",
		models.ModeFullAuto, RunOptions{GitRemoteURL: "https://git.example.com/repo.git"})

	assert.Equal(t, models.MissionCompleted, state.Status)
	assert.Contains(t, state.ProductSpec, "uptime")
}

func TestEngineAwaitsApprovalAndResumes(t *testing.T) {
	oracle := &seqOracle{responses: []string{featureClassification, singleCoderPlan}}
	fx := newTestEngine(t, oracle, passingScripts())
	createMissionRow(t, fx.client, "mission-0001")

	state := fx.engine.Run(context.Background(), "mission-0001", "add a health endpoint",
		models.ModeApprovePlan, RunOptions{GitRemoteURL: "https://git.example.com/repo.git"})

	assert.Equal(t, models.MissionAwaitingApproval, state.Status)
	require.Len(t, state.Tasks, 1)
	assert.Equal(t, models.TaskPending, state.Tasks[0].Status)

	// Approval flips the mission to executing and resumes it.
	resumed := state.Clone()
	resumed.InteractionMode = models.ModeFullAuto
	resumed.Status = models.MissionExecuting
	final := fx.engine.RunWithState(context.Background(), resumed)

	assert.Equal(t, models.MissionCompleted, final.Status)
	assert.Equal(t, models.TaskPassed, final.Tasks[0].Status)
}

func TestEngineClarification(t *testing.T) {
	oracle := &seqOracle{responses: []string{
		`{
  "classification": "feature",
  "needs_specification": false,
  "clarifying_questions": [{"question_id": "Q1", "question": "Which endpoint path?"}]
}`,
		featureClassification,
		singleCoderPlan,
	}}
	fx := newTestEngine(t, oracle, passingScripts())
	createMissionRow(t, fx.client, "mission-0001")

	state := fx.engine.Run(context.Background(), "mission-0001", "add an endpoint",
		models.ModeClarify, RunOptions{GitRemoteURL: "https://git.example.com/repo.git"})

	assert.Equal(t, models.MissionClarifying, state.Status)
	require.Len(t, state.ClarifyingQuestions, 1)
	assert.Equal(t, "Q1", state.ClarifyingQuestions[0].ID)

	answered := state.Clone()
	answered.ClarifyingAnswers = `{"Q1": "/health"}`
	final := fx.engine.RunWithState(context.Background(), answered)

	assert.Equal(t, models.MissionCompleted, final.Status)
}

func TestEnginePlanningFailure(t *testing.T) {
	oracle := &seqOracle{responses: []string{featureClassification, "this is not a plan"}}
	fx := newTestEngine(t, oracle, passingScripts())
	createMissionRow(t, fx.client, "mission-0001")

	state := fx.engine.Run(context.Background(), "mission-0001", "add a health endpoint",
		models.ModeFullAuto, RunOptions{GitRemoteURL: "https://git.example.com/repo.git"})

	assert.Equal(t, models.MissionFailed, state.Status)
	require.NotEmpty(t, state.Errors)
	assert.Contains(t, state.Errors[0], "planning failed")
}

func TestEngineCancellation(t *testing.T) {
	oracle := &seqOracle{responses: []string{featureClassification, singleCoderPlan}}
	fx := newTestEngine(t, oracle, passingScripts())
	createMissionRow(t, fx.client, "mission-0001")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	state := fx.engine.Run(ctx, "mission-0001", "add a health endpoint",
		models.ModeFullAuto, RunOptions{GitRemoteURL: "https://git.example.com/repo.git"})

	assert.Equal(t, models.MissionCancelled, state.Status)

	cp, err := fx.store.GetLatest(context.Background(), "mission-0001")
	require.NoError(t, err)
	restored, err := models.UnmarshalState(cp.State)
	require.NoError(t, err)
	assert.Equal(t, models.MissionCancelled, restored.Status)
}

func TestNextMissionID(t *testing.T) {
	fx := newTestEngine(t, &seqOracle{}, nil)
	assert.Equal(t, "mission-0001", fx.engine.NextMissionID())
	assert.Equal(t, "mission-0002", fx.engine.NextMissionID())
}
