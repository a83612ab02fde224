package agent

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/models"
)

func newTestBuilder() *InstructionBuilder {
	cfg := config.Default()
	return NewInstructionBuilder(cfg.Truncation, cfg.Deployer)
}

func TestBuildCoderInstruction(t *testing.T) {
	b := newTestBuilder()
	task := &models.Task{
		ID:              "TASK-001",
		Agent:           models.RoleCoder,
		Description:     "Add a /health endpoint",
		SuccessCriteria: "GET /health returns 200",
		TargetFiles:     []string{"src/server.go"},
	}
	bc := BuildContext{Project: &models.ProjectContext{
		Language:     "Go",
		Framework:    "gin",
		Dependencies: []string{"github.com/gin-gonic/gin"},
		FileTree:     []string{"src/server.go", "src/main.go"},
	}}

	doc, err := b.Build(task, bc)
	require.NoError(t, err)

	assert.Contains(t, doc, "# Objective\n\nAdd a /health endpoint")
	assert.Contains(t, doc, "Language: Go")
	assert.Contains(t, doc, "Framework: gin")
	assert.Contains(t, doc, "github.com/gin-gonic/gin")
	assert.Contains(t, doc, "# Success Criteria\n\nGET /health returns 200")
	assert.Contains(t, doc, "src/server.go")
	assert.NotContains(t, doc, "retry attempt")
}

func TestBuildInstructionDeterministic(t *testing.T) {
	b := newTestBuilder()
	task := &models.Task{ID: "TASK-001", Agent: models.RoleCoder, Description: "x"}
	bc := BuildContext{Project: &models.ProjectContext{Language: "Go"}}

	first, err := b.Build(task, bc)
	require.NoError(t, err)
	second, err := b.Build(task, bc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildInstructionCaps(t *testing.T) {
	b := newTestBuilder()

	t.Run("file tree capped at 200 with marker", func(t *testing.T) {
		tree := make([]string, 250)
		for i := range tree {
			tree[i] = fmt.Sprintf("src/file%03d.go", i)
		}
		doc, err := b.Build(
			&models.Task{ID: "TASK-001", Agent: models.RoleCoder, Description: "x"},
			BuildContext{Project: &models.ProjectContext{FileTree: tree}})
		require.NoError(t, err)

		assert.Contains(t, doc, "src/file199.go")
		assert.NotContains(t, doc, "src/file200.go")
		assert.Contains(t, doc, "and 50 more")
	})

	t.Run("dependencies capped at 50 with marker", func(t *testing.T) {
		deps := make([]string, 60)
		for i := range deps {
			deps[i] = fmt.Sprintf("dep-%02d", i)
		}
		doc, err := b.Build(
			&models.Task{ID: "TASK-001", Agent: models.RoleCoder, Description: "x"},
			BuildContext{Project: &models.ProjectContext{Dependencies: deps}})
		require.NoError(t, err)

		assert.Contains(t, doc, "dep-49")
		assert.NotContains(t, doc, "dep-50")
		assert.Contains(t, doc, "and 10 more")
	})

	t.Run("oversized input context is truncated", func(t *testing.T) {
		doc, err := b.Build(&models.Task{
			ID:           "TASK-001",
			Agent:        models.RoleCoder,
			Description:  "x",
			InputContext: strings.Repeat("c", 20_000),
		}, BuildContext{})
		require.NoError(t, err)
		assert.Contains(t, doc, "[context truncated]")
	})
}

func TestBuildRetryInstruction(t *testing.T) {
	b := newTestBuilder()
	doc, err := b.Build(&models.Task{
		ID:            "TASK-001",
		Agent:         models.RoleCoder,
		Description:   "x",
		InputContext:  "Review feedback: fix the nil check",
		Iteration:     2,
		MaxIterations: 5,
	}, BuildContext{})
	require.NoError(t, err)

	assert.Contains(t, doc, "retry attempt 2 of 5")
	assert.Contains(t, doc, "Review feedback: fix the nil check")
}

func TestBuildVerifierInstructions(t *testing.T) {
	b := newTestBuilder()

	t.Run("tester names the parent task and the summary line", func(t *testing.T) {
		doc, err := b.Build(
			&models.Task{ID: "TASK-001-test", Agent: models.RoleTester, Description: "verify"},
			BuildContext{ParentTaskID: "TASK-001"})
		require.NoError(t, err)
		assert.Contains(t, doc, "work of task TASK-001")
		assert.Contains(t, doc, "Tests run: <total>, Failures: <failures>, Errors: <errors>")
	})

	t.Run("reviewer names the score and approval lines", func(t *testing.T) {
		doc, err := b.Build(
			&models.Task{ID: "TASK-001-review", Agent: models.RoleReviewer, Description: "review"},
			BuildContext{ParentTaskID: "TASK-001"})
		require.NoError(t, err)
		assert.Contains(t, doc, "Score: <1-10>/10")
		assert.Contains(t, doc, "Approved: <yes|no>")
	})
}

func TestBuildDeployerInstruction(t *testing.T) {
	b := newTestBuilder()
	task := &models.Task{ID: "TASK-DEPLOY", Agent: models.RoleDeployer, Description: "deploy"}

	t.Run("embeds generated manifest when no task created one", func(t *testing.T) {
		doc, err := b.Build(task, BuildContext{})
		require.NoError(t, err)
		assert.Contains(t, doc, "manifest.yml")
		assert.Contains(t, doc, "memory: 1G")
		assert.Contains(t, doc, "instances: 1")
		assert.Contains(t, doc, "java_buildpack_offline")
		assert.Contains(t, doc, "health-check-http-endpoint: /actuator/health")
		assert.Contains(t, doc, "timeout: 180")
	})

	t.Run("reuses task-committed manifest", func(t *testing.T) {
		doc, err := b.Build(task, BuildContext{ManifestCreatedByTask: true})
		require.NoError(t, err)
		assert.Contains(t, doc, "Do not regenerate it")
		assert.NotContains(t, doc, "applications:")
	})

	t.Run("includes service bindings", func(t *testing.T) {
		cfg := config.Default()
		cfg.Deployer.ServiceBindings = []string{"my-postgres", "my-redis"}
		withBindings := NewInstructionBuilder(cfg.Truncation, cfg.Deployer)

		doc, err := withBindings.Build(task, BuildContext{})
		require.NoError(t, err)
		assert.Contains(t, doc, "- my-postgres")
		assert.Contains(t, doc, "- my-redis")
	})
}

func TestBuildUnknownRole(t *testing.T) {
	b := newTestBuilder()
	_, err := b.Build(&models.Task{ID: "TASK-001", Agent: "ARCHITECT", Description: "x"}, BuildContext{})
	assert.ErrorContains(t, err, "no instruction template")
}
