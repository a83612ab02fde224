// Package gitws wraps the git CLI: per-task branch lifecycle, diff-stat
// parsing into FileRecords, and the per-wave rebase+merge protocol.
package gitws

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/worldmind/worldmind/pkg/models"
)

// Workspace drives git for one mission's repository.
type Workspace struct {
	runner    Runner
	remoteURL string
	prefix    string
	mainline  string
}

// NewWorkspace creates a workspace for the given remote. prefix names the
// per-task branch namespace (<prefix>/<taskId>); mainline defaults to "main".
func NewWorkspace(runner Runner, remoteURL, prefix, mainline string) *Workspace {
	if runner == nil {
		runner = ExecRunner{}
	}
	if mainline == "" {
		mainline = "main"
	}
	return &Workspace{
		runner:    runner,
		remoteURL: remoteURL,
		prefix:    prefix,
		mainline:  mainline,
	}
}

// BranchName returns the branch for a task: <prefix>/<taskId>.
func (w *Workspace) BranchName(taskID string) string {
	return w.prefix + "/" + taskID
}

// Mainline returns the mainline branch name.
func (w *Workspace) Mainline() string {
	return w.mainline
}

// CloneMainline clones the remote's mainline into dir.
func (w *Workspace) CloneMainline(ctx context.Context, dir string) error {
	if _, err := w.runner.Run(ctx, ".", "clone", "--branch", w.mainline, w.remoteURL, dir); err != nil {
		return fmt.Errorf("cloning mainline: %w", err)
	}
	return nil
}

// PrepareTaskBranch makes repoDir ready for a task run: any pre-existing
// task branch is deleted remote and local, then the branch is recreated from
// the current mainline head. Retries and restarts therefore always start
// from fresh mainline instead of a stale branch.
func (w *Workspace) PrepareTaskBranch(ctx context.Context, repoDir, taskID string) error {
	branch := w.BranchName(taskID)

	// Best-effort deletes: the branch usually doesn't exist yet.
	if _, err := w.runner.Run(ctx, repoDir, "push", "origin", "--delete", branch); err != nil {
		slog.Debug("No remote branch to delete", "branch", branch)
	}
	if _, err := w.runner.Run(ctx, repoDir, "branch", "-D", branch); err != nil {
		slog.Debug("No local branch to delete", "branch", branch)
	}

	if _, err := w.runner.Run(ctx, repoDir, "checkout", w.mainline); err != nil {
		return fmt.Errorf("checking out mainline: %w", err)
	}
	if _, err := w.runner.Run(ctx, repoDir, "pull", "--rebase", "origin", w.mainline); err != nil {
		return fmt.Errorf("updating mainline: %w", err)
	}
	if _, err := w.runner.Run(ctx, repoDir, "checkout", "-b", branch); err != nil {
		return fmt.Errorf("creating branch %s: %w", branch, err)
	}
	return nil
}

// CheckoutTaskBranch fetches and checks out another task's branch read-only.
// Used by TESTER and REVIEWER tasks inspecting their parent CODER's work.
func (w *Workspace) CheckoutTaskBranch(ctx context.Context, repoDir, taskID string) error {
	branch := w.BranchName(taskID)
	if _, err := w.runner.Run(ctx, repoDir, "fetch", "origin", branch); err != nil {
		return fmt.Errorf("fetching branch %s: %w", branch, err)
	}
	if _, err := w.runner.Run(ctx, repoDir, "checkout", "-B", branch, "FETCH_HEAD"); err != nil {
		return fmt.Errorf("checking out branch %s: %w", branch, err)
	}
	return nil
}

// CommitAndPush stages everything, commits if there is any staged diff, and
// force-pushes the task branch. Returns whether a commit was created.
func (w *Workspace) CommitAndPush(ctx context.Context, repoDir, taskID, message string) (bool, error) {
	branch := w.BranchName(taskID)

	if _, err := w.runner.Run(ctx, repoDir, "add", "-A"); err != nil {
		return false, fmt.Errorf("staging changes: %w", err)
	}

	// Empty staged diff means nothing to commit.
	if _, err := w.runner.Run(ctx, repoDir, "diff", "--cached", "--quiet"); err == nil {
		return false, nil
	}

	if _, err := w.runner.Run(ctx, repoDir, "commit", "-m", message); err != nil {
		return false, fmt.Errorf("committing: %w", err)
	}
	if _, err := w.runner.Run(ctx, repoDir, "push", "--force", "origin", branch); err != nil {
		return true, fmt.Errorf("pushing branch %s: %w", branch, err)
	}
	return true, nil
}

// DetectChanges diffs the task branch against mainline and returns the file
// records. Call after CommitAndPush.
func (w *Workspace) DetectChanges(ctx context.Context, repoDir, taskID string) ([]models.FileRecord, error) {
	branch := w.BranchName(taskID)
	base := "origin/" + w.mainline

	numstat, err := w.runner.Run(ctx, repoDir, "diff", "--numstat", base, branch)
	if err != nil {
		return nil, fmt.Errorf("diffing %s against %s: %w", branch, base, err)
	}
	nameStatus, err := w.runner.Run(ctx, repoDir, "diff", "--name-status", base, branch)
	if err != nil {
		return nil, fmt.Errorf("diffing %s against %s: %w", branch, base, err)
	}
	return ParseDiff(numstat, nameStatus), nil
}

// DeleteTaskBranch removes the task branch, remote and local. Best-effort.
func (w *Workspace) DeleteTaskBranch(ctx context.Context, repoDir, taskID string) {
	branch := w.BranchName(taskID)
	if _, err := w.runner.Run(ctx, repoDir, "push", "origin", "--delete", branch); err != nil {
		slog.Debug("Remote branch delete failed", "branch", branch, "error", err)
	}
	if _, err := w.runner.Run(ctx, repoDir, "branch", "-D", branch); err != nil {
		slog.Debug("Local branch delete failed", "branch", branch, "error", err)
	}
}

// ParseDiff combines `git diff --numstat` and `git diff --name-status`
// output into FileRecords. Binary files report "-" in numstat and count as
// zero lines changed.
func ParseDiff(numstat, nameStatus string) []models.FileRecord {
	actions := make(map[string]models.FileAction)
	for _, line := range strings.Split(nameStatus, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		var action models.FileAction
		switch fields[0][0] {
		case 'A':
			action = models.FileCreated
		case 'D':
			action = models.FileDeleted
		default:
			// M, R, C, T all count as modifications of the final path.
			action = models.FileModified
		}
		// Renames/copies list "old new"; the final path is last.
		actions[fields[len(fields)-1]] = action
	}

	var records []models.FileRecord
	for _, line := range strings.Split(numstat, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		added := parseCount(fields[0])
		deleted := parseCount(fields[1])
		path := fields[len(fields)-1]
		// Rename numstat paths look like "old => new" or "{a => b}/c".
		if idx := strings.LastIndex(path, "=> "); idx >= 0 {
			path = strings.TrimSuffix(path[idx+3:], "}")
		}

		action, ok := actions[path]
		if !ok {
			action = models.FileModified
		}
		records = append(records, models.FileRecord{
			Path:         path,
			Action:       action,
			LinesChanged: added + deleted,
		})
	}
	return records
}

func parseCount(s string) int {
	if s == "-" {
		return 0
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
