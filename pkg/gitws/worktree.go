package gitws

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
)

// WorktreePool manages worktrees off a single shared clone so parallel local
// sandboxes don't each pay for a full clone. One worktree per task id.
type WorktreePool struct {
	ws      *Workspace
	baseDir string // the shared clone
	treeDir string // parent directory for worktrees

	mu    sync.Mutex
	trees map[string]string // taskID → worktree path
}

// NewWorktreePool creates a pool rooted at the shared clone in baseDir.
// Worktrees are created under treeDir.
func NewWorktreePool(ws *Workspace, baseDir, treeDir string) *WorktreePool {
	return &WorktreePool{
		ws:      ws,
		baseDir: baseDir,
		treeDir: treeDir,
		trees:   make(map[string]string),
	}
}

// Acquire creates (or returns) the worktree for a task, checked out on the
// task's branch from the current mainline head.
func (p *WorktreePool) Acquire(ctx context.Context, taskID string) (string, error) {
	p.mu.Lock()
	if path, ok := p.trees[taskID]; ok {
		p.mu.Unlock()
		return path, nil
	}
	p.mu.Unlock()

	if _, err := p.ws.runner.Run(ctx, p.baseDir, "fetch", "origin", p.ws.mainline); err != nil {
		return "", fmt.Errorf("fetching mainline for worktree: %w", err)
	}

	path := filepath.Join(p.treeDir, taskID)
	branch := p.ws.BranchName(taskID)
	if _, err := p.ws.runner.Run(ctx, p.baseDir,
		"worktree", "add", "-B", branch, path, "origin/"+p.ws.mainline); err != nil {
		return "", fmt.Errorf("adding worktree for %s: %w", taskID, err)
	}

	p.mu.Lock()
	p.trees[taskID] = path
	p.mu.Unlock()
	return path, nil
}

// Release removes the task's worktree. Best-effort.
func (p *WorktreePool) Release(ctx context.Context, taskID string) {
	p.mu.Lock()
	path, ok := p.trees[taskID]
	delete(p.trees, taskID)
	p.mu.Unlock()
	if !ok {
		return
	}

	if _, err := p.ws.runner.Run(ctx, p.baseDir, "worktree", "remove", "--force", path); err != nil {
		slog.Warn("Failed to remove worktree", "task_id", taskID, "path", path, "error", err)
	}
}
