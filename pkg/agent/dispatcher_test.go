package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/pkg/sandbox"
)

// fakeProvider scripts the sandbox lifecycle for dispatcher tests.
type fakeProvider struct {
	openErr   error
	exitCode  int
	waitErr   error
	output    string
	changes   []models.FileRecord
	changeErr error

	opened    []sandbox.OpenRequest
	tornDown  []string
	sandboxID string
}

func (f *fakeProvider) Open(ctx context.Context, req sandbox.OpenRequest) (string, error) {
	f.opened = append(f.opened, req)
	if f.openErr != nil {
		return "", f.openErr
	}
	if f.sandboxID == "" {
		f.sandboxID = "sbx-1"
	}
	return f.sandboxID, nil
}

func (f *fakeProvider) WaitForCompletion(ctx context.Context, id string, timeout time.Duration) (int, error) {
	return f.exitCode, f.waitErr
}

func (f *fakeProvider) CaptureOutput(ctx context.Context, id string) (string, error) {
	return f.output, nil
}

func (f *fakeProvider) DetectChanges(ctx context.Context, taskID, projectPath string) ([]models.FileRecord, error) {
	return f.changes, f.changeErr
}

func (f *fakeProvider) Teardown(ctx context.Context, id string) {
	f.tornDown = append(f.tornDown, id)
}

func newTestDispatcher(p sandbox.Provider) *Dispatcher {
	cfg := config.Default()
	return NewDispatcher(p, NewInstructionBuilder(cfg.Truncation, cfg.Deployer),
		cfg.Sandbox, cfg.Engine, cfg.Truncation)
}

func coderTask() *models.Task {
	return &models.Task{ID: "TASK-001", Agent: models.RoleCoder, Description: "build it", MaxIterations: 5}
}

func TestDispatch(t *testing.T) {
	t.Run("coder with changes goes to VERIFYING", func(t *testing.T) {
		p := &fakeProvider{
			output:  "done",
			changes: []models.FileRecord{{Path: "src/x.go", Action: models.FileCreated, LinesChanged: 10}},
		}
		d := newTestDispatcher(p)

		result := d.Dispatch(context.Background(), coderTask(), DispatchContext{MissionID: "m-1"})
		assert.Equal(t, models.TaskVerifying, result.Status)
		assert.Len(t, result.FileChanges, 1)
		assert.Equal(t, []string{"sbx-1"}, p.tornDown, "teardown must run")
		assert.Equal(t, "TASK-001", p.opened[0].BranchTaskID)
	})

	t.Run("clean exit with no changes fails the lazy-model guard", func(t *testing.T) {
		p := &fakeProvider{output: "I did nothing"}
		d := newTestDispatcher(p)

		result := d.Dispatch(context.Background(), coderTask(), DispatchContext{})
		assert.Equal(t, models.TaskFailed, result.Status)
		assert.Contains(t, result.Output, "no file changes produced")
		assert.Len(t, p.tornDown, 1)
	})

	t.Run("researcher passes on exit 0 without change detection", func(t *testing.T) {
		p := &fakeProvider{output: "findings"}
		d := newTestDispatcher(p)

		task := &models.Task{ID: "TASK-002", Agent: models.RoleResearcher, Description: "investigate"}
		result := d.Dispatch(context.Background(), task, DispatchContext{})
		assert.Equal(t, models.TaskPassed, result.Status)
		assert.Empty(t, result.FileChanges)
		assert.Empty(t, p.opened[0].BranchTaskID)
	})

	t.Run("tester rides the parent branch", func(t *testing.T) {
		p := &fakeProvider{output: "Tests run: 3, Failures: 0, Errors: 0"}
		d := newTestDispatcher(p)

		task := &models.Task{ID: "TASK-001-test", Agent: models.RoleTester, Description: "verify"}
		result := d.Dispatch(context.Background(), task, DispatchContext{
			Build: BuildContext{ParentTaskID: "TASK-001"},
		})
		assert.Equal(t, models.TaskPassed, result.Status)
		assert.Equal(t, "TASK-001", p.opened[0].BranchTaskID)
	})

	t.Run("nonzero exit fails", func(t *testing.T) {
		p := &fakeProvider{exitCode: 2, output: "compilation error"}
		d := newTestDispatcher(p)

		result := d.Dispatch(context.Background(), coderTask(), DispatchContext{})
		assert.Equal(t, models.TaskFailed, result.Status)
		assert.Contains(t, result.Output, "worker exited with code 2")
	})

	t.Run("timeout fails with a dedicated reason", func(t *testing.T) {
		p := &fakeProvider{exitCode: sandbox.ExitTimeout}
		d := newTestDispatcher(p)

		result := d.Dispatch(context.Background(), coderTask(), DispatchContext{})
		assert.Equal(t, models.TaskFailed, result.Status)
		assert.Contains(t, result.Output, "timed out")
		assert.Len(t, p.tornDown, 1)
	})

	t.Run("open failure fails without teardown", func(t *testing.T) {
		p := &fakeProvider{openErr: errors.New("no capacity")}
		d := newTestDispatcher(p)

		result := d.Dispatch(context.Background(), coderTask(), DispatchContext{})
		assert.Equal(t, models.TaskFailed, result.Status)
		assert.Contains(t, result.Output, "sandbox open failed")
		assert.Empty(t, p.tornDown)
	})

	t.Run("change detection failure fails the task", func(t *testing.T) {
		p := &fakeProvider{changeErr: errors.New("diff failed")}
		d := newTestDispatcher(p)

		result := d.Dispatch(context.Background(), coderTask(), DispatchContext{})
		assert.Equal(t, models.TaskFailed, result.Status)
		assert.Contains(t, result.Output, "change detection failed")
		assert.Len(t, p.tornDown, 1)
	})
}
