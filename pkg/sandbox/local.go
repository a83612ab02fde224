package sandbox

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/gitws"
	"github.com/worldmind/worldmind/pkg/models"
)

// CommandRunner executes container CLI commands. Seam for tests.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecCommandRunner runs commands via os/exec.
type ExecCommandRunner struct{}

// Run executes the command and returns trimmed stdout.
func (ExecCommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s",
			name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// localSandbox tracks one container-backed worker.
type localSandbox struct {
	containerID string
	workDir     string
	repoDir     string
	pooled      bool
	req         OpenRequest
}

// LocalProvider runs each task in its own container with a clone of the
// mission repository mounted as the workspace. The orchestrator performs
// the git branch protocol around the container run; the container only edits
// the mounted tree. With worktrees enabled, branch-producing tasks share one
// clone and mount per-task worktrees instead of cloning per task.
type LocalProvider struct {
	cfg          *config.SandboxConfig
	ws           *gitws.Workspace
	runner       CommandRunner
	useWorktrees bool

	treesOnce sync.Once
	trees     *gitws.WorktreePool
	treesErr  error

	mu        sync.Mutex
	sandboxes map[string]*localSandbox // sandboxID → sandbox
	byTask    map[string]string        // taskID → sandboxID
}

// NewLocalProvider creates a container-per-task provider.
func NewLocalProvider(cfg *config.SandboxConfig, ws *gitws.Workspace, runner CommandRunner) *LocalProvider {
	if runner == nil {
		runner = ExecCommandRunner{}
	}
	return &LocalProvider{
		cfg:       cfg,
		ws:        ws,
		runner:    runner,
		sandboxes: make(map[string]*localSandbox),
		byTask:    make(map[string]string),
	}
}

// EnableWorktrees switches branch-producing tasks from a clone per task to
// worktrees off one shared clone. Call before the first Open.
func (p *LocalProvider) EnableWorktrees() {
	p.useWorktrees = true
}

// worktreePool lazily creates the shared clone backing the worktrees.
func (p *LocalProvider) worktreePool(ctx context.Context) (*gitws.WorktreePool, error) {
	p.treesOnce.Do(func() {
		root, err := os.MkdirTemp("", "worldmind-shared-*")
		if err != nil {
			p.treesErr = fmt.Errorf("creating shared clone dir: %w", err)
			return
		}
		baseDir := filepath.Join(root, "repo")
		treeDir := filepath.Join(root, "trees")
		if err := p.ws.CloneMainline(ctx, baseDir); err != nil {
			_ = os.RemoveAll(root)
			p.treesErr = err
			return
		}
		if err := os.MkdirAll(treeDir, 0o755); err != nil {
			_ = os.RemoveAll(root)
			p.treesErr = fmt.Errorf("creating worktree dir: %w", err)
			return
		}
		p.trees = gitws.NewWorktreePool(p.ws, baseDir, treeDir)
	})
	return p.trees, p.treesErr
}

// Open materializes the task's working tree (a fresh clone, or a worktree
// off the shared clone), prepares the task branch, writes the instruction
// file, and starts the worker container detached.
func (p *LocalProvider) Open(ctx context.Context, req OpenRequest) (string, error) {
	workDir, err := os.MkdirTemp("", fmt.Sprintf("worldmind-%s-*", req.TaskID))
	if err != nil {
		return "", fmt.Errorf("creating sandbox workdir: %w", err)
	}

	repoDir := filepath.Join(workDir, "repo")
	pooled := p.useWorktrees && req.BranchTaskID != "" && req.Agent.ProducesBranch()
	if pooled {
		// Acquire checks the task branch out from the mainline head, so the
		// branch protocol below is already done.
		pool, perr := p.worktreePool(ctx)
		if perr == nil {
			repoDir, perr = pool.Acquire(ctx, req.BranchTaskID)
		}
		if perr != nil {
			_ = os.RemoveAll(workDir)
			return "", perr
		}
	} else {
		if err := p.ws.CloneMainline(ctx, repoDir); err != nil {
			_ = os.RemoveAll(workDir)
			return "", err
		}

		if req.BranchTaskID != "" {
			if req.Agent.ProducesBranch() {
				err = p.ws.PrepareTaskBranch(ctx, repoDir, req.BranchTaskID)
			} else {
				err = p.ws.CheckoutTaskBranch(ctx, repoDir, req.BranchTaskID)
			}
			if err != nil {
				_ = os.RemoveAll(workDir)
				return "", err
			}
		}
	}

	cleanup := func() {
		if pooled {
			p.trees.Release(ctx, req.BranchTaskID)
		}
		_ = os.RemoveAll(workDir)
	}

	instructionPath := filepath.Join(workDir, "instruction.md")
	if err := os.WriteFile(instructionPath, []byte(req.Instruction), 0o644); err != nil {
		cleanup()
		return "", fmt.Errorf("writing instruction file: %w", err)
	}

	image := p.cfg.Image
	if req.RuntimeTag != "" {
		if idx := strings.LastIndex(image, ":"); idx > 0 {
			image = image[:idx]
		}
		image = image + ":" + req.RuntimeTag
	}

	args := []string{
		"run", "--detach",
		"--memory", firstNonEmpty(req.Memory, p.cfg.Memory),
		"--cpus", firstNonEmpty(req.CPU, p.cfg.CPU),
		"--volume", repoDir + ":/workspace",
		"--volume", instructionPath + ":/instruction.md:ro",
		"--workdir", "/workspace",
	}
	for k, v := range req.Env {
		args = append(args, "--env", k+"="+v)
	}
	args = append(args, image)

	containerID, err := p.runner.Run(ctx, "docker", args...)
	if err != nil {
		cleanup()
		return "", fmt.Errorf("starting sandbox container: %w", err)
	}

	sandboxID := req.TaskID + "-" + containerID[:min(12, len(containerID))]
	p.mu.Lock()
	p.sandboxes[sandboxID] = &localSandbox{
		containerID: containerID,
		workDir:     workDir,
		repoDir:     repoDir,
		pooled:      pooled,
		req:         req,
	}
	p.byTask[req.TaskID] = sandboxID
	p.mu.Unlock()

	slog.Info("Sandbox opened", "sandbox_id", sandboxID, "task", Info(req))
	return sandboxID, nil
}

// WaitForCompletion blocks on `docker wait` up to timeout. Returns the
// container's exit code, ExitTimeout on timeout, or ExitInterrupted on
// context cancellation.
func (p *LocalProvider) WaitForCompletion(ctx context.Context, sandboxID string, timeout time.Duration) (int, error) {
	sb, err := p.lookup(sandboxID)
	if err != nil {
		return ExitInterrupted, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := p.runner.Run(waitCtx, "docker", "wait", sb.containerID)
	if err != nil {
		switch {
		case waitCtx.Err() == context.DeadlineExceeded:
			return ExitTimeout, nil
		case ctx.Err() != nil:
			return ExitInterrupted, nil
		}
		return ExitInterrupted, fmt.Errorf("waiting for sandbox %s: %w", sandboxID, err)
	}

	code, convErr := strconv.Atoi(strings.TrimSpace(out))
	if convErr != nil {
		return ExitInterrupted, fmt.Errorf("unparsable exit code %q from sandbox %s", out, sandboxID)
	}
	return code, nil
}

// CaptureOutput returns the container logs.
func (p *LocalProvider) CaptureOutput(ctx context.Context, sandboxID string) (string, error) {
	sb, err := p.lookup(sandboxID)
	if err != nil {
		return "", err
	}
	out, err := p.runner.Run(ctx, "docker", "logs", sb.containerID)
	if err != nil {
		return "", fmt.Errorf("capturing sandbox output: %w", err)
	}
	return out, nil
}

// DetectChanges commits and pushes whatever the worker left in the mounted
// tree, then diffs the task branch against mainline.
func (p *LocalProvider) DetectChanges(ctx context.Context, taskID, projectPath string) ([]models.FileRecord, error) {
	p.mu.Lock()
	sandboxID, ok := p.byTask[taskID]
	p.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no sandbox recorded for task %s", taskID)
	}
	sb, err := p.lookup(sandboxID)
	if err != nil {
		return nil, err
	}
	if !sb.req.Agent.ProducesBranch() {
		return nil, nil
	}

	repoDir := sb.repoDir
	committed, err := p.ws.CommitAndPush(ctx, repoDir, taskID,
		fmt.Sprintf("%s: %s iteration %d", taskID, sb.req.Agent, sb.req.Iteration))
	if err != nil {
		return nil, err
	}
	if !committed {
		return nil, nil
	}
	return p.ws.DetectChanges(ctx, repoDir, taskID)
}

// Teardown force-removes the container, releases the task's worktree when
// pooled, and deletes the workdir. Best-effort.
func (p *LocalProvider) Teardown(ctx context.Context, sandboxID string) {
	p.mu.Lock()
	sb, ok := p.sandboxes[sandboxID]
	if ok {
		delete(p.sandboxes, sandboxID)
		delete(p.byTask, sb.req.TaskID)
	}
	p.mu.Unlock()
	if !ok {
		return
	}

	if _, err := p.runner.Run(ctx, "docker", "rm", "--force", sb.containerID); err != nil {
		slog.Warn("Failed to remove sandbox container",
			"sandbox_id", sandboxID, "container_id", sb.containerID, "error", err)
	}
	if sb.pooled {
		p.trees.Release(ctx, sb.req.BranchTaskID)
	}
	if err := os.RemoveAll(sb.workDir); err != nil {
		slog.Warn("Failed to remove sandbox workdir",
			"sandbox_id", sandboxID, "dir", sb.workDir, "error", err)
	}
}

func (p *LocalProvider) lookup(sandboxID string) (*localSandbox, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sb, ok := p.sandboxes[sandboxID]
	if !ok {
		return nil, fmt.Errorf("unknown sandbox %s", sandboxID)
	}
	return sb, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
