package engine

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/pkg/agent"
	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/events"
	"github.com/worldmind/worldmind/pkg/gitws"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/pkg/sandbox"
)

// roleScript is the canned behavior of one agent role in tests.
type roleScript struct {
	exitCode int
	output   string
	changes  []models.FileRecord
}

// scriptedProvider plays a roleScript per agent role.
type scriptedProvider struct {
	mu      sync.Mutex
	scripts map[models.AgentRole]roleScript
	opened  []sandbox.OpenRequest
	byID    map[string]sandbox.OpenRequest
}

func newScriptedProvider(scripts map[models.AgentRole]roleScript) *scriptedProvider {
	return &scriptedProvider{scripts: scripts, byID: make(map[string]sandbox.OpenRequest)}
}

func (p *scriptedProvider) Open(ctx context.Context, req sandbox.OpenRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opened = append(p.opened, req)
	id := req.TaskID + "-sbx"
	p.byID[id] = req
	return id, nil
}

func (p *scriptedProvider) WaitForCompletion(ctx context.Context, id string, timeout time.Duration) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scripts[p.byID[id].Agent].exitCode, nil
}

func (p *scriptedProvider) CaptureOutput(ctx context.Context, id string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scripts[p.byID[id].Agent].output, nil
}

func (p *scriptedProvider) DetectChanges(ctx context.Context, taskID, projectPath string) ([]models.FileRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, req := range p.byID {
		if req.TaskID == taskID {
			return p.scripts[req.Agent].changes, nil
		}
	}
	return nil, nil
}

func (p *scriptedProvider) Teardown(ctx context.Context, id string) {}

// recordingRunner is a git runner that records commands and succeeds.
type recordingRunner struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, strings.Join(args, " "))
	return "", nil
}

func (r *recordingRunner) contains(prefix string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func newTestEvaluator(t *testing.T, scripts map[models.AgentRole]roleScript) (*Evaluator, *recordingRunner) {
	t.Helper()
	cfg := config.Default()
	cfg.Engine.MaxParallel = 4
	cfg.Engine.MergeRetryBackoff = time.Millisecond

	git := &recordingRunner{}
	ws := gitws.NewWorkspace(git, "https://git.example.com/repo.git", "worldmind", "main")
	provider := newScriptedProvider(scripts)
	dispatcher := agent.NewDispatcher(provider,
		agent.NewInstructionBuilder(cfg.Truncation, cfg.Deployer),
		cfg.Sandbox, cfg.Engine, cfg.Truncation)
	return NewEvaluator(dispatcher, ws, events.NewBus(), cfg.Engine), git
}

func missionWith(tasks ...*models.Task) *models.MissionState {
	return &models.MissionState{
		MissionID:         "mission-0001",
		Status:            models.MissionExecuting,
		ExecutionStrategy: models.StrategyParallel,
		GitRemoteURL:      "https://git.example.com/repo.git",
		Tasks:             tasks,
	}
}

func TestExecuteWaveHappyPath(t *testing.T) {
	ev, git := newTestEvaluator(t, map[models.AgentRole]roleScript{
		models.RoleCoder: {
			output:  "implemented",
			changes: []models.FileRecord{{Path: "src/X.go", Action: models.FileCreated, LinesChanged: 10}},
		},
		models.RoleTester:   {output: "Tests run: 3, Failures: 0, Errors: 0"},
		models.RoleReviewer: {output: "Score: 8/10\nApproved: yes"},
	})

	task := &models.Task{ID: "TASK-001", Agent: models.RoleCoder, Status: models.TaskPending, MaxIterations: 5, OnFailure: models.OnFailureRetry}
	state := missionWith(task)

	outcome := ev.ExecuteWave(context.Background(), state, []*models.Task{task})
	assert.False(t, outcome.Abort)

	assert.Equal(t, models.TaskPassed, task.Status)
	assert.Equal(t, []string{"TASK-001"}, state.CompletedTaskIDs)
	assert.Equal(t, 1, state.WaveCount)
	assert.Empty(t, state.WaveTaskIDs)
	require.Len(t, state.TestResults, 1)
	assert.True(t, state.TestResults[0].Passed)
	require.Len(t, state.ReviewFeedback, 1)
	assert.Equal(t, 8, state.ReviewFeedback[0].Score)

	assert.True(t, git.contains("merge --no-ff worldmind/TASK-001"), "wave merge must run")
}

func TestExecuteWaveQualityGateDenied(t *testing.T) {
	ev, _ := newTestEvaluator(t, map[models.AgentRole]roleScript{
		models.RoleCoder: {
			output:  "attempt",
			changes: []models.FileRecord{{Path: "src/X.go", Action: models.FileModified, LinesChanged: 3}},
		},
		models.RoleTester:   {output: "Tests run: 3, Failures: 1, Errors: 0"},
		models.RoleReviewer: {output: "Score: 7/10\nApproved: yes"},
	})

	task := &models.Task{ID: "TASK-001", Agent: models.RoleCoder, Status: models.TaskPending, MaxIterations: 5, OnFailure: models.OnFailureRetry}
	state := missionWith(task)

	ev.ExecuteWave(context.Background(), state, []*models.Task{task})

	assert.Equal(t, models.TaskPending, task.Status, "denied task is re-queued")
	assert.Equal(t, 1, task.Iteration)
	assert.NotEmpty(t, task.InputContext, "feedback is copied into the retry context")
	assert.Empty(t, state.CompletedTaskIDs)
}

func TestExecuteWaveOscillation(t *testing.T) {
	// Same change set each iteration, gate always denies, budget of 5.
	ev, _ := newTestEvaluator(t, map[models.AgentRole]roleScript{
		models.RoleCoder: {
			output:  "attempt",
			changes: []models.FileRecord{{Path: "src/X.go", Action: models.FileModified, LinesChanged: 3}},
		},
		models.RoleTester:   {output: "Tests run: 3, Failures: 1, Errors: 0"},
		models.RoleReviewer: {output: "Score: 4/10\nApproved: no"},
	})

	task := &models.Task{ID: "TASK-001", Agent: models.RoleCoder, Status: models.TaskPending, MaxIterations: 5, OnFailure: models.OnFailureRetry}
	state := missionWith(task)

	for wave := 0; wave < 3 && task.Status != models.TaskFailed; wave++ {
		ev.ExecuteWave(context.Background(), state, []*models.Task{task})
	}

	assert.Equal(t, models.TaskFailed, task.Status, "oscillation must force failure before the budget runs out")
	assert.Equal(t, 3, task.Iteration)
	require.NotEmpty(t, state.Errors)
	assert.Contains(t, state.Errors[len(state.Errors)-1], "oscillation")
}

func TestExecuteWaveSkipPerTaskTests(t *testing.T) {
	ev, _ := newTestEvaluator(t, map[models.AgentRole]roleScript{
		models.RoleCoder: {
			changes: []models.FileRecord{{Path: "src/X.go", Action: models.FileCreated, LinesChanged: 1}},
		},
	})

	task := &models.Task{ID: "TASK-001", Agent: models.RoleCoder, Status: models.TaskPending, MaxIterations: 5, OnFailure: models.OnFailureRetry}
	state := missionWith(task)
	state.SkipPerTaskTests = true

	ev.ExecuteWave(context.Background(), state, []*models.Task{task})

	assert.Equal(t, models.TaskPassed, task.Status)
	assert.Empty(t, state.TestResults, "no verifiers run when per-task tests are skipped")
}

func TestExecuteWaveDeployer(t *testing.T) {
	t.Run("service binding failure retries with diagnostic", func(t *testing.T) {
		ev, _ := newTestEvaluator(t, map[models.AgentRole]roleScript{
			models.RoleDeployer: {output: "Could not find service todo-db"},
		})

		task := &models.Task{ID: "TASK-DEPLOY", Agent: models.RoleDeployer, Status: models.TaskPending, MaxIterations: 3, OnFailure: models.OnFailureRetry}
		state := missionWith(task)

		ev.ExecuteWave(context.Background(), state, []*models.Task{task})

		assert.NotEqual(t, models.TaskPassed, task.Status)
		assert.Equal(t, 1, task.Iteration)
		assert.Contains(t, task.InputContext, "SERVICE_BINDING_FAILURE")
		assert.Contains(t, task.InputContext, "todo-db")
		assert.Contains(t, task.InputContext, "cf create-service")
	})

	t.Run("success records the deployment url", func(t *testing.T) {
		ev, _ := newTestEvaluator(t, map[models.AgentRole]roleScript{
			models.RoleDeployer: {output: "App started\nroutes: myapp.apps.cloud.example.com"},
		})

		task := &models.Task{ID: "TASK-DEPLOY", Agent: models.RoleDeployer, Status: models.TaskPending, MaxIterations: 3, OnFailure: models.OnFailureRetry}
		state := missionWith(task)

		ev.ExecuteWave(context.Background(), state, []*models.Task{task})

		assert.Equal(t, models.TaskPassed, task.Status)
		assert.Equal(t, "myapp.apps.cloud.example.com", state.DeploymentURL)
	})
}

func TestExecuteWaveFailurePropagation(t *testing.T) {
	ev, _ := newTestEvaluator(t, map[models.AgentRole]roleScript{
		// Clean exit with no changes trips the lazy-model guard.
		models.RoleCoder: {output: "nothing to do"},
	})

	failing := &models.Task{ID: "TASK-001", Agent: models.RoleCoder, Status: models.TaskPending, MaxIterations: 0, OnFailure: models.OnFailureAbort}
	dependent := &models.Task{ID: "TASK-002", Agent: models.RoleCoder, Status: models.TaskPending, Dependencies: []string{"TASK-001"}, MaxIterations: 5, OnFailure: models.OnFailureRetry}
	transitive := &models.Task{ID: "TASK-003", Agent: models.RoleCoder, Status: models.TaskPending, Dependencies: []string{"TASK-002"}, MaxIterations: 5, OnFailure: models.OnFailureRetry}
	state := missionWith(failing, dependent, transitive)

	outcome := ev.ExecuteWave(context.Background(), state, []*models.Task{failing})

	assert.True(t, outcome.Abort)
	assert.Equal(t, models.TaskFailed, failing.Status)
	assert.Equal(t, models.TaskSkipped, dependent.Status)
	assert.Equal(t, models.TaskSkipped, transitive.Status, "skips cascade transitively")
	assert.ElementsMatch(t, []string{"TASK-001", "TASK-002", "TASK-003"}, state.CompletedTaskIDs)
}

func TestExecuteWaveSkipPolicy(t *testing.T) {
	ev, _ := newTestEvaluator(t, map[models.AgentRole]roleScript{
		models.RoleResearcher: {exitCode: 1, output: "could not reach docs"},
	})

	task := &models.Task{ID: "TASK-001", Agent: models.RoleResearcher, Status: models.TaskPending, MaxIterations: 0, OnFailure: models.OnFailureSkip}
	state := missionWith(task)

	outcome := ev.ExecuteWave(context.Background(), state, []*models.Task{task})

	assert.False(t, outcome.Abort)
	assert.Equal(t, models.TaskSkipped, task.Status)
	assert.Equal(t, []string{"TASK-001"}, state.CompletedTaskIDs)
}
