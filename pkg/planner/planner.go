package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/llm"
	"github.com/worldmind/worldmind/pkg/models"
)

// DeployTaskID is the id of the virtual deployment task appended to plans.
const DeployTaskID = "TASK-DEPLOY"

// defaultMaxIterations is the retry budget for planned tasks that don't
// declare one.
const defaultMaxIterations = 5

// deployMaxIterations is the fixed retry budget of the virtual DEPLOYER task.
const deployMaxIterations = 3

const plannerSystemPrompt = `You decompose software change requests into tasks for an autonomous engineering pipeline.
Respond with a single JSON object:
{
  "execution_strategy": "<SEQUENTIAL|PARALLEL>",
  "tasks": [
    {
      "id": "TASK-001",
      "agent": "<CODER|TESTER|REVIEWER|RESEARCHER|REFACTORER>",
      "description": "...",
      "success_criteria": "...",
      "dependencies": ["TASK-000"],
      "target_files": ["src/..."],
      "on_failure": "<RETRY|REPLAN|SKIP|ABORT>"
    }
  ]
}
Rules: task ids are TASK-NNN, zero-padded, unique, and ordered; dependencies
reference earlier ids only; declare target_files for every CODER and
REFACTORER task; prefer PARALLEL when tasks touch disjoint files.`

// taskPlan is the wire shape of one planned task.
type taskPlan struct {
	ID              string   `json:"id"`
	Agent           string   `json:"agent"`
	Description     string   `json:"description"`
	SuccessCriteria string   `json:"success_criteria"`
	Dependencies    []string `json:"dependencies"`
	TargetFiles     []string `json:"target_files"`
	OnFailure       string   `json:"on_failure"`
	MaxIterations   int      `json:"max_iterations"`
}

// missionPlan is the wire shape of the planner's JSON response.
type missionPlan struct {
	ExecutionStrategy string     `json:"execution_strategy"`
	Tasks             []taskPlan `json:"tasks"`
}

// Plan is the validated result of planning.
type Plan struct {
	Strategy models.ExecutionStrategy
	Tasks    []*models.Task

	// ManifestCreatedByTask is true when a planned task declares the
	// deployment manifest among its target files.
	ManifestCreatedByTask bool
}

// Planner turns a classified mission into a validated task DAG.
type Planner struct {
	oracle    llm.Oracle
	deployer  *config.DeployerConfig
	maxTokens int
}

// NewPlanner creates a planner over the oracle.
func NewPlanner(oracle llm.Oracle, deployer *config.DeployerConfig, maxTokens int) *Planner {
	return &Planner{oracle: oracle, deployer: deployer, maxTokens: maxTokens}
}

// Plan asks the oracle for a task breakdown and validates it. When
// state.CreateDeploymentTask is set, a virtual DEPLOYER task is appended
// depending on every code-producing task.
func (p *Planner) Plan(ctx context.Context, state *models.MissionState) (*Plan, error) {
	var user strings.Builder
	user.WriteString("Request:\n")
	user.WriteString(state.Request)
	fmt.Fprintf(&user, "\n\nClassification: %s\n", state.Classification)
	if state.ProductSpec != "" {
		user.WriteString("\nProduct spec:\n")
		user.WriteString(state.ProductSpec)
	}
	if pc := state.ProjectContext; pc != nil && pc.Language != "" {
		fmt.Fprintf(&user, "\nProject language: %s, framework: %s\n", pc.Language, pc.Framework)
	}

	raw, err := p.oracle.Complete(ctx, llm.Request{
		System:    plannerSystemPrompt,
		User:      user.String(),
		MaxTokens: p.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("planning completion: %w", err)
	}

	blob, err := ExtractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("planning output: %w", err)
	}
	var wire missionPlan
	if err := json.Unmarshal([]byte(blob), &wire); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return p.build(state, &wire)
}

// build converts the wire plan into tasks and validates the DAG.
func (p *Planner) build(state *models.MissionState, wire *missionPlan) (*Plan, error) {
	if len(wire.Tasks) == 0 {
		return nil, fmt.Errorf("planner produced no tasks")
	}

	strategy := models.ExecutionStrategy(wire.ExecutionStrategy)
	if !strategy.Valid() {
		strategy = models.StrategySequential
	}

	plan := &Plan{Strategy: strategy}
	for _, tp := range wire.Tasks {
		role := models.AgentRole(tp.Agent)
		if !role.Valid() {
			return nil, fmt.Errorf("plan task %s has unknown agent role %q", tp.ID, tp.Agent)
		}
		if tp.ID == "" {
			return nil, fmt.Errorf("plan contains a task without an id")
		}

		onFailure := models.FailurePolicy(tp.OnFailure)
		switch onFailure {
		case models.OnFailureRetry, models.OnFailureReplan, models.OnFailureSkip, models.OnFailureAbort:
		default:
			onFailure = models.OnFailureRetry
		}
		maxIterations := tp.MaxIterations
		if maxIterations <= 0 {
			maxIterations = defaultMaxIterations
		}

		plan.Tasks = append(plan.Tasks, &models.Task{
			ID:              tp.ID,
			Agent:           role,
			Description:     tp.Description,
			SuccessCriteria: tp.SuccessCriteria,
			Dependencies:    tp.Dependencies,
			TargetFiles:     tp.TargetFiles,
			Status:          models.TaskPending,
			MaxIterations:   maxIterations,
			OnFailure:       onFailure,
		})

		for _, f := range tp.TargetFiles {
			if f == p.deployer.ManifestPath {
				plan.ManifestCreatedByTask = true
			}
		}
	}

	if state.CreateDeploymentTask {
		plan.Tasks = append(plan.Tasks, p.deployTask(plan.Tasks))
	}

	if err := ValidateDAG(plan.Tasks); err != nil {
		return nil, err
	}
	return plan, nil
}

// deployTask builds the virtual DEPLOYER task. It depends on every
// code-producing task so it runs strictly after all merges, but not on
// RESEARCHER tasks whose output it doesn't need.
func (p *Planner) deployTask(tasks []*models.Task) *models.Task {
	var deps []string
	for _, t := range tasks {
		if t.Agent.ProducesBranch() {
			deps = append(deps, t.ID)
		}
	}
	return &models.Task{
		ID:            DeployTaskID,
		Agent:         models.RoleDeployer,
		Description:   "Deploy the application from the updated mainline and verify it is reachable.",
		Dependencies:  deps,
		Status:        models.TaskPending,
		MaxIterations: deployMaxIterations,
		OnFailure:     models.OnFailureRetry,
	}
}

// ValidateDAG rejects plans with duplicate ids, dangling dependency
// references, or cycles. A bad plan is a fatal planning error; no tasks are
// created from it.
func ValidateDAG(tasks []*models.Task) error {
	byID := make(map[string]*models.Task, len(tasks))
	for _, t := range tasks {
		if _, dup := byID[t.ID]; dup {
			return fmt.Errorf("plan contains duplicate task id %s", t.ID)
		}
		byID[t.ID] = t
	}

	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			if _, ok := byID[dep]; !ok {
				return fmt.Errorf("task %s depends on unknown task %s", t.ID, dep)
			}
			if dep == t.ID {
				return fmt.Errorf("task %s depends on itself", t.ID)
			}
		}
	}

	// Depth-first cycle detection: 0 unvisited, 1 on stack, 2 done.
	colors := make(map[string]int, len(tasks))
	var visit func(id string) error
	visit = func(id string) error {
		switch colors[id] {
		case 1:
			return fmt.Errorf("plan contains a dependency cycle through %s", id)
		case 2:
			return nil
		}
		colors[id] = 1
		for _, dep := range byID[id].Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}
		colors[id] = 2
		return nil
	}
	for _, t := range tasks {
		if err := visit(t.ID); err != nil {
			return err
		}
	}
	return nil
}
