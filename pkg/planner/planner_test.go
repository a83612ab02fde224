package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/llm"
	"github.com/worldmind/worldmind/pkg/models"
)

// cannedOracle replays a fixed completion.
type cannedOracle struct {
	response string
	err      error
	requests []llm.Request
}

func (o *cannedOracle) Complete(ctx context.Context, req llm.Request) (string, error) {
	o.requests = append(o.requests, req)
	return o.response, o.err
}

func newTestPlanner(response string) *Planner {
	return NewPlanner(&cannedOracle{response: response}, config.Default().Deployer, 4096)
}

func planState() *models.MissionState {
	return &models.MissionState{
		MissionID:      "m-1",
		Request:        "add a health endpoint",
		Classification: "feature",
	}
}

const validPlanJSON = `{
  "execution_strategy": "PARALLEL",
  "tasks": [
    {"id": "TASK-001", "agent": "CODER", "description": "implement endpoint",
     "success_criteria": "returns 200", "target_files": ["src/health.go"]},
    {"id": "TASK-002", "agent": "CODER", "description": "wire router",
     "dependencies": ["TASK-001"], "target_files": ["src/router.go"]}
  ]
}`

func TestPlan(t *testing.T) {
	t.Run("valid plan parses", func(t *testing.T) {
		p := newTestPlanner(validPlanJSON)
		plan, err := p.Plan(context.Background(), planState())
		require.NoError(t, err)

		assert.Equal(t, models.StrategyParallel, plan.Strategy)
		require.Len(t, plan.Tasks, 2)
		assert.Equal(t, "TASK-001", plan.Tasks[0].ID)
		assert.Equal(t, models.TaskPending, plan.Tasks[0].Status)
		assert.Equal(t, defaultMaxIterations, plan.Tasks[0].MaxIterations)
		assert.Equal(t, models.OnFailureRetry, plan.Tasks[0].OnFailure)
		assert.False(t, plan.ManifestCreatedByTask)
	})

	t.Run("fenced JSON parses", func(t *testing.T) {
		p := newTestPlanner("Here is the plan:\n```json\n" + validPlanJSON + "\n```\nDone.")
		plan, err := p.Plan(context.Background(), planState())
		require.NoError(t, err)
		assert.Len(t, plan.Tasks, 2)
	})

	t.Run("deployment task appended on code tasks only", func(t *testing.T) {
		p := newTestPlanner(`{
		  "execution_strategy": "SEQUENTIAL",
		  "tasks": [
		    {"id": "TASK-001", "agent": "RESEARCHER", "description": "investigate"},
		    {"id": "TASK-002", "agent": "CODER", "description": "implement", "dependencies": ["TASK-001"]}
		  ]
		}`)
		state := planState()
		state.CreateDeploymentTask = true

		plan, err := p.Plan(context.Background(), state)
		require.NoError(t, err)
		require.Len(t, plan.Tasks, 3)

		deploy := plan.Tasks[2]
		assert.Equal(t, DeployTaskID, deploy.ID)
		assert.Equal(t, models.RoleDeployer, deploy.Agent)
		assert.Equal(t, deployMaxIterations, deploy.MaxIterations)
		assert.Equal(t, models.OnFailureRetry, deploy.OnFailure)
		assert.Equal(t, []string{"TASK-002"}, deploy.Dependencies, "researcher must not gate deployment")
	})

	t.Run("manifest target file is detected", func(t *testing.T) {
		p := newTestPlanner(`{
		  "tasks": [{"id": "TASK-001", "agent": "CODER", "description": "x",
		             "target_files": ["manifest.yml", "src/app.go"]}]
		}`)
		plan, err := p.Plan(context.Background(), planState())
		require.NoError(t, err)
		assert.True(t, plan.ManifestCreatedByTask)
	})

	t.Run("unknown strategy falls back to sequential", func(t *testing.T) {
		p := newTestPlanner(`{"execution_strategy": "CHAOS",
		  "tasks": [{"id": "TASK-001", "agent": "CODER", "description": "x"}]}`)
		plan, err := p.Plan(context.Background(), planState())
		require.NoError(t, err)
		assert.Equal(t, models.StrategySequential, plan.Strategy)
	})

	t.Run("oracle failure surfaces", func(t *testing.T) {
		p := NewPlanner(&cannedOracle{err: errors.New("rate limited")}, config.Default().Deployer, 4096)
		_, err := p.Plan(context.Background(), planState())
		assert.ErrorContains(t, err, "planning completion")
	})

	t.Run("non-JSON output is a planning failure", func(t *testing.T) {
		p := newTestPlanner("I cannot produce a plan for this.")
		_, err := p.Plan(context.Background(), planState())
		assert.ErrorContains(t, err, "planning output")
	})

	t.Run("unknown agent role is rejected", func(t *testing.T) {
		p := newTestPlanner(`{"tasks": [{"id": "TASK-001", "agent": "ARCHITECT", "description": "x"}]}`)
		_, err := p.Plan(context.Background(), planState())
		assert.ErrorContains(t, err, "unknown agent role")
	})
}

func TestValidateDAG(t *testing.T) {
	t.Run("cycle rejected", func(t *testing.T) {
		tasks := []*models.Task{
			{ID: "TASK-001", Dependencies: []string{"TASK-002"}},
			{ID: "TASK-002", Dependencies: []string{"TASK-001"}},
		}
		assert.ErrorContains(t, ValidateDAG(tasks), "cycle")
	})

	t.Run("dangling reference rejected", func(t *testing.T) {
		tasks := []*models.Task{{ID: "TASK-001", Dependencies: []string{"TASK-999"}}}
		assert.ErrorContains(t, ValidateDAG(tasks), "unknown task")
	})

	t.Run("self dependency rejected", func(t *testing.T) {
		tasks := []*models.Task{{ID: "TASK-001", Dependencies: []string{"TASK-001"}}}
		assert.ErrorContains(t, ValidateDAG(tasks), "depends on itself")
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		tasks := []*models.Task{{ID: "TASK-001"}, {ID: "TASK-001"}}
		assert.ErrorContains(t, ValidateDAG(tasks), "duplicate")
	})

	t.Run("diamond is fine", func(t *testing.T) {
		tasks := []*models.Task{
			{ID: "TASK-001"},
			{ID: "TASK-002", Dependencies: []string{"TASK-001"}},
			{ID: "TASK-003", Dependencies: []string{"TASK-001"}},
			{ID: "TASK-004", Dependencies: []string{"TASK-002", "TASK-003"}},
		}
		assert.NoError(t, ValidateDAG(tasks))
	})
}
