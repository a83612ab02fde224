package sandbox

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/gitws"
	"github.com/worldmind/worldmind/pkg/models"
)

// fakeCommandRunner records docker invocations and returns canned responses
// keyed on the subcommand.
type fakeCommandRunner struct {
	calls     [][]string
	responses map[string]string
	errors    map[string]error
}

func (f *fakeCommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if len(args) == 0 {
		return "", nil
	}
	if err, ok := f.errors[args[0]]; ok {
		return "", err
	}
	return f.responses[args[0]], nil
}

// fakeGitRunner answers every git command with success so branch setup in
// Open does not fail.
type fakeGitRunner struct {
	calls [][]string
}

func (f *fakeGitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return "", nil
}

func newTestProvider(t *testing.T, docker *fakeCommandRunner) (*LocalProvider, *fakeGitRunner) {
	t.Helper()
	git := &fakeGitRunner{}
	ws := gitws.NewWorkspace(git, "https://git.example.com/repo.git", "worldmind", "main")
	cfg := &config.SandboxConfig{
		Provider: "local",
		Image:    "worldmind/agent-runner:latest",
		Memory:   "2G",
		CPU:      "2",
	}
	return NewLocalProvider(cfg, ws, docker), git
}

func TestLocalProviderOpen(t *testing.T) {
	docker := &fakeCommandRunner{
		responses: map[string]string{"run": "abcdef1234567890"},
	}
	provider, git := newTestProvider(t, docker)

	id, err := provider.Open(context.Background(), OpenRequest{
		Agent:        models.RoleCoder,
		TaskID:       "TASK-001",
		MissionID:    "mission-1",
		Instruction:  "# Objective\nDo the thing.",
		BranchTaskID: "TASK-001",
		Env:          map[string]string{"GIT_REMOTE": "https://git.example.com/repo.git"},
	})
	require.NoError(t, err)
	defer provider.Teardown(context.Background(), id)

	assert.Equal(t, "TASK-001-abcdef123456", id)

	// Coder role prepares a fresh branch from mainline.
	var branched bool
	for _, call := range git.calls {
		if len(call) >= 2 && call[0] == "checkout" && call[1] == "-b" {
			branched = true
		}
	}
	assert.True(t, branched, "expected a fresh task branch checkout")

	// The docker run carries resource limits and the workspace mount.
	require.NotEmpty(t, docker.calls)
	run := strings.Join(docker.calls[0], " ")
	assert.Contains(t, run, "--memory 2G")
	assert.Contains(t, run, "--cpus 2")
	assert.Contains(t, run, ":/workspace")
	assert.Contains(t, run, "--env GIT_REMOTE=")
}

func TestLocalProviderOpenRuntimeTagOverridesImage(t *testing.T) {
	docker := &fakeCommandRunner{
		responses: map[string]string{"run": "abcdef1234567890"},
	}
	provider, _ := newTestProvider(t, docker)

	id, err := provider.Open(context.Background(), OpenRequest{
		Agent:      models.RoleResearcher,
		TaskID:     "TASK-002",
		RuntimeTag: "python311",
	})
	require.NoError(t, err)
	defer provider.Teardown(context.Background(), id)

	run := strings.Join(docker.calls[0], " ")
	assert.Contains(t, run, "worldmind/agent-runner:python311")
	assert.NotContains(t, run, ":latest")
}

func TestLocalProviderWaitForCompletion(t *testing.T) {
	t.Run("returns the container exit code", func(t *testing.T) {
		docker := &fakeCommandRunner{
			responses: map[string]string{"run": "abc123456789def", "wait": "3"},
		}
		provider, _ := newTestProvider(t, docker)
		id, err := provider.Open(context.Background(), OpenRequest{
			Agent: models.RoleResearcher, TaskID: "TASK-003",
		})
		require.NoError(t, err)
		defer provider.Teardown(context.Background(), id)

		code, err := provider.WaitForCompletion(context.Background(), id, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 3, code)
	})

	t.Run("unknown sandbox errors", func(t *testing.T) {
		provider, _ := newTestProvider(t, &fakeCommandRunner{})
		_, err := provider.WaitForCompletion(context.Background(), "nope", time.Second)
		assert.Error(t, err)
	})

	t.Run("unparsable exit code errors", func(t *testing.T) {
		docker := &fakeCommandRunner{
			responses: map[string]string{"run": "abc123456789def", "wait": "garbage"},
		}
		provider, _ := newTestProvider(t, docker)
		id, err := provider.Open(context.Background(), OpenRequest{
			Agent: models.RoleResearcher, TaskID: "TASK-004",
		})
		require.NoError(t, err)
		defer provider.Teardown(context.Background(), id)

		code, err := provider.WaitForCompletion(context.Background(), id, time.Minute)
		assert.Error(t, err)
		assert.Equal(t, ExitInterrupted, code)
	})
}

func TestLocalProviderCaptureOutput(t *testing.T) {
	docker := &fakeCommandRunner{
		responses: map[string]string{"run": "abc123456789def", "logs": "build ok\ntests ok"},
	}
	provider, _ := newTestProvider(t, docker)
	id, err := provider.Open(context.Background(), OpenRequest{
		Agent: models.RoleTester, TaskID: "TASK-005", BranchTaskID: "TASK-001",
	})
	require.NoError(t, err)
	defer provider.Teardown(context.Background(), id)

	out, err := provider.CaptureOutput(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "build ok\ntests ok", out)
}

func TestLocalProviderDetectChanges(t *testing.T) {
	t.Run("non-branch roles report nothing", func(t *testing.T) {
		docker := &fakeCommandRunner{
			responses: map[string]string{"run": "abc123456789def"},
		}
		provider, _ := newTestProvider(t, docker)
		id, err := provider.Open(context.Background(), OpenRequest{
			Agent: models.RoleResearcher, TaskID: "TASK-006",
		})
		require.NoError(t, err)
		defer provider.Teardown(context.Background(), id)

		records, err := provider.DetectChanges(context.Background(), "TASK-006", "")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("unknown task errors", func(t *testing.T) {
		provider, _ := newTestProvider(t, &fakeCommandRunner{})
		_, err := provider.DetectChanges(context.Background(), "TASK-404", "")
		assert.Error(t, err)
	})
}

func TestLocalProviderTeardown(t *testing.T) {
	docker := &fakeCommandRunner{
		responses: map[string]string{"run": "abc123456789def"},
	}
	provider, _ := newTestProvider(t, docker)
	id, err := provider.Open(context.Background(), OpenRequest{
		Agent: models.RoleResearcher, TaskID: "TASK-007",
	})
	require.NoError(t, err)

	provider.Teardown(context.Background(), id)

	var removed bool
	for _, call := range docker.calls {
		if len(call) >= 3 && call[1] == "rm" && call[2] == "--force" {
			removed = true
		}
	}
	assert.True(t, removed, "expected a forced container removal")

	// Second teardown of the same sandbox is a no-op.
	before := len(docker.calls)
	provider.Teardown(context.Background(), id)
	assert.Equal(t, before, len(docker.calls))
}

func TestLocalProviderWorktrees(t *testing.T) {
	docker := &fakeCommandRunner{
		responses: map[string]string{"run": "abcdef1234567890"},
	}
	provider, git := newTestProvider(t, docker)
	provider.EnableWorktrees()

	open := func(task string) string {
		t.Helper()
		id, err := provider.Open(context.Background(), OpenRequest{
			Agent:        models.RoleCoder,
			TaskID:       task,
			BranchTaskID: task,
			Instruction:  "# Objective\nDo the thing.",
		})
		require.NoError(t, err)
		return id
	}
	first := open("TASK-001")
	second := open("TASK-002")

	gitCalls := func(verb, sub string) int {
		n := 0
		for _, call := range git.calls {
			if len(call) > 0 && call[0] == verb && (sub == "" || (len(call) > 1 && call[1] == sub)) {
				n++
			}
		}
		return n
	}

	// One shared clone serves both tasks; each task mounts its own worktree.
	assert.Equal(t, 1, gitCalls("clone", ""))
	assert.Equal(t, 2, gitCalls("worktree", "add"))

	run := strings.Join(docker.calls[0], " ")
	assert.Contains(t, run, "trees/TASK-001:/workspace")

	provider.Teardown(context.Background(), first)
	provider.Teardown(context.Background(), second)
	assert.Equal(t, 2, gitCalls("worktree", "remove"))
}

func TestLocalProviderOpenFailureCleansUp(t *testing.T) {
	docker := &fakeCommandRunner{
		errors: map[string]error{"run": fmt.Errorf("daemon unavailable")},
	}
	provider, _ := newTestProvider(t, docker)

	_, err := provider.Open(context.Background(), OpenRequest{
		Agent: models.RoleResearcher, TaskID: "TASK-008",
	})
	assert.ErrorContains(t, err, "starting sandbox container")
}
