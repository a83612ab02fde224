package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/metrics"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/pkg/sandbox"
)

// DispatchContext carries the mission-level inputs for one dispatch.
type DispatchContext struct {
	MissionID    string
	ProjectPath  string
	GitRemoteURL string
	Env          map[string]string

	Build BuildContext
}

// Dispatcher runs one task through the sandbox lifecycle: build the
// instruction, open a worker, wait, capture, detect changes, tear down.
type Dispatcher struct {
	provider   sandbox.Provider
	builder    *InstructionBuilder
	sandboxCfg *config.SandboxConfig
	timeout    time.Duration
	outputMax  int
}

// NewDispatcher wires a dispatcher from its collaborators.
func NewDispatcher(provider sandbox.Provider, builder *InstructionBuilder,
	sandboxCfg *config.SandboxConfig, engine *config.EngineConfig, truncation *config.TruncationConfig) *Dispatcher {
	return &Dispatcher{
		provider:   provider,
		builder:    builder,
		sandboxCfg: sandboxCfg,
		timeout:    engine.TaskTimeout,
		outputMax:  truncation.OutputBytesMax,
	}
}

// Dispatch executes the task in a sandbox and returns the raw result.
//
// Status rules: CODER/REFACTORER exit as VERIFYING when they produced file
// changes (quality gate pending) and FAILED when they exit clean with no
// changes. Other roles are PASSED on exit 0. Teardown runs on every path.
func (d *Dispatcher) Dispatch(ctx context.Context, task *models.Task, dc DispatchContext) models.WaveDispatchResult {
	start := time.Now()
	result := models.WaveDispatchResult{TaskID: task.ID, Status: models.TaskFailed}
	log := slog.With("mission_id", dc.MissionID, "task_id", task.ID, "agent", task.Agent)

	instruction, err := d.builder.Build(task, dc.Build)
	if err != nil {
		result.Output = err.Error()
		result.ElapsedMs = time.Since(start).Milliseconds()
		return result
	}

	branchTaskID := ""
	switch {
	case task.Agent.ProducesBranch():
		branchTaskID = task.ID
	case task.Agent == models.RoleTester || task.Agent == models.RoleReviewer:
		branchTaskID = dc.Build.ParentTaskID
	}

	sandboxID, err := d.provider.Open(ctx, sandbox.OpenRequest{
		Agent:        task.Agent,
		TaskID:       task.ID,
		MissionID:    dc.MissionID,
		ProjectPath:  dc.ProjectPath,
		Instruction:  instruction,
		Env:          dc.Env,
		Memory:       d.sandboxCfg.Memory,
		CPU:          d.sandboxCfg.CPU,
		GitRemoteURL: dc.GitRemoteURL,
		RuntimeTag:   d.sandboxCfg.RuntimeTag,
		Iteration:    task.Iteration,
		BranchTaskID: branchTaskID,
	})
	if err != nil {
		log.Error("Failed to open sandbox", "error", err)
		result.Output = fmt.Sprintf("sandbox open failed: %v", err)
		result.ElapsedMs = time.Since(start).Milliseconds()
		return result
	}
	defer d.provider.Teardown(ctx, sandboxID)

	metrics.TasksDispatched.WithLabelValues(string(task.Agent)).Inc()

	exitCode, err := d.provider.WaitForCompletion(ctx, sandboxID, d.timeout)
	if err != nil {
		log.Error("Sandbox wait failed", "error", err)
		result.Output = fmt.Sprintf("sandbox wait failed: %v", err)
		result.ElapsedMs = time.Since(start).Milliseconds()
		return result
	}

	output, err := d.provider.CaptureOutput(ctx, sandboxID)
	if err != nil {
		log.Warn("Failed to capture sandbox output", "error", err)
	}
	result.Output = sandbox.TruncateOutput(output, d.outputMax)

	switch exitCode {
	case sandbox.ExitTimeout:
		log.Warn("Task timed out", "timeout", d.timeout)
		result.Output = appendNote(result.Output,
			fmt.Sprintf("task timed out after %s", d.timeout))
		result.ElapsedMs = time.Since(start).Milliseconds()
		return result
	case sandbox.ExitInterrupted:
		result.Output = appendNote(result.Output, "task interrupted")
		result.ElapsedMs = time.Since(start).Milliseconds()
		return result
	}

	if task.Agent.ProducesBranch() {
		changes, err := d.provider.DetectChanges(ctx, task.ID, dc.ProjectPath)
		if err != nil {
			log.Error("Failed to detect changes", "error", err)
			result.Output = appendNote(result.Output, fmt.Sprintf("change detection failed: %v", err))
			result.ElapsedMs = time.Since(start).Milliseconds()
			return result
		}
		result.FileChanges = changes

		if exitCode == 0 && len(changes) == 0 {
			// Lazy-model guard: a clean exit with no file changes is not
			// success for a code-producing role.
			log.Warn("Task exited clean with no file changes")
			result.Output = appendNote(result.Output, "no file changes produced")
			result.ElapsedMs = time.Since(start).Milliseconds()
			return result
		}
		if exitCode == 0 {
			result.Status = models.TaskVerifying
		}
	} else if exitCode == 0 {
		result.Status = models.TaskPassed
	}

	if exitCode != 0 {
		result.Output = appendNote(result.Output, fmt.Sprintf("worker exited with code %d", exitCode))
	}

	result.ElapsedMs = time.Since(start).Milliseconds()
	metrics.TaskDuration.WithLabelValues(string(task.Agent)).Observe(time.Since(start).Seconds())
	log.Info("Task dispatched", "status", result.Status,
		"exit_code", exitCode, "files_changed", len(result.FileChanges),
		"elapsed_ms", result.ElapsedMs)
	return result
}

func appendNote(output, note string) string {
	if output == "" {
		return note
	}
	return output + "\n\n" + note
}
