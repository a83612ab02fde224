package gitws

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/worldmind/worldmind/pkg/metrics"
)

// MergeResult partitions a wave's task ids into merged and conflicted.
// Conflicted branches are left in place; their tasks are re-queued for a
// fresh run against the updated mainline.
type MergeResult struct {
	MergedIDs     []string
	ConflictedIDs []string
}

// MergeOptions tunes the per-wave merge.
type MergeOptions struct {
	// RetryCount is how many times a conflicted rebase is retried after
	// pull-rebasing mainline.
	RetryCount int
	// RetryBackoff is the pause between retries.
	RetryBackoff time.Duration
}

// MergeWave merges the wave's task branches into mainline.
//
// The ordering is the contract: task ids are sorted lexicographically, and
// each branch is rebased onto mainline, merged --no-ff, and pushed before
// the next branch is touched. Each push advances mainline, so the next
// rebase already sees the previous task's changes — this sequential
// push-between-each discipline is what prevents intra-wave conflicts.
func (w *Workspace) MergeWave(ctx context.Context, taskIDs []string, opts MergeOptions) (MergeResult, error) {
	result := MergeResult{}
	if len(taskIDs) == 0 {
		return result, nil
	}

	sorted := append([]string(nil), taskIDs...)
	sort.Strings(sorted)

	scratch, err := os.MkdirTemp("", "worldmind-merge-*")
	if err != nil {
		return result, fmt.Errorf("creating merge scratch dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			slog.Warn("Failed to remove merge scratch dir", "dir", scratch, "error", err)
		}
	}()

	repoDir := scratch + "/repo"
	if err := w.CloneMainline(ctx, repoDir); err != nil {
		return result, err
	}

	for _, taskID := range sorted {
		if err := w.mergeOne(ctx, repoDir, taskID, opts); err != nil {
			slog.Warn("Branch left conflicted after retries",
				"task_id", taskID, "branch", w.BranchName(taskID), "error", err)
			metrics.MergeConflicts.Inc()
			result.ConflictedIDs = append(result.ConflictedIDs, taskID)
			continue
		}
		result.MergedIDs = append(result.MergedIDs, taskID)
	}
	return result, nil
}

// mergeOne rebases one task branch onto mainline, merges it --no-ff, and
// pushes mainline. Conflicts abort the rebase, refresh mainline, and retry.
func (w *Workspace) mergeOne(ctx context.Context, repoDir, taskID string, opts MergeOptions) error {
	branch := w.BranchName(taskID)
	log := slog.With("task_id", taskID, "branch", branch)

	var lastErr error
	for attempt := 0; attempt <= opts.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(opts.RetryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			// Conflicting push may have advanced mainline; refresh it.
			if _, err := w.runner.Run(ctx, repoDir, "checkout", w.mainline); err != nil {
				return err
			}
			if _, err := w.runner.Run(ctx, repoDir, "pull", "--rebase", "origin", w.mainline); err != nil {
				return fmt.Errorf("refreshing mainline: %w", err)
			}
		}

		if err := w.rebaseAndMerge(ctx, repoDir, taskID); err != nil {
			lastErr = err
			log.Info("Merge attempt failed", "attempt", attempt+1, "error", err)
			continue
		}

		if attempt > 0 {
			metrics.MergeRetrySuccess.Inc()
		}
		return nil
	}
	return lastErr
}

func (w *Workspace) rebaseAndMerge(ctx context.Context, repoDir, taskID string) error {
	branch := w.BranchName(taskID)

	if _, err := w.runner.Run(ctx, repoDir, "fetch", "origin", branch); err != nil {
		return fmt.Errorf("fetching %s: %w", branch, err)
	}
	if _, err := w.runner.Run(ctx, repoDir, "checkout", "-B", branch, "FETCH_HEAD"); err != nil {
		return fmt.Errorf("checking out %s: %w", branch, err)
	}

	if _, err := w.runner.Run(ctx, repoDir, "rebase", w.mainline); err != nil {
		// Leave the tree clean for the next attempt.
		if _, abortErr := w.runner.Run(ctx, repoDir, "rebase", "--abort"); abortErr != nil {
			slog.Debug("Rebase abort failed", "branch", branch, "error", abortErr)
		}
		return fmt.Errorf("rebasing %s onto %s: %w", branch, w.mainline, err)
	}

	if _, err := w.runner.Run(ctx, repoDir, "checkout", w.mainline); err != nil {
		return err
	}
	msg := fmt.Sprintf("Merge %s", branch)
	if _, err := w.runner.Run(ctx, repoDir, "merge", "--no-ff", branch, "-m", msg); err != nil {
		if _, abortErr := w.runner.Run(ctx, repoDir, "merge", "--abort"); abortErr != nil {
			slog.Debug("Merge abort failed", "branch", branch, "error", abortErr)
		}
		return fmt.Errorf("merging %s: %w", branch, err)
	}
	if _, err := w.runner.Run(ctx, repoDir, "push", "origin", w.mainline); err != nil {
		return fmt.Errorf("pushing %s: %w", w.mainline, err)
	}
	return nil
}

// CleanupBranches deletes the remote branches of the given tasks at mission
// end. preserve lists task ids whose branches must be kept (FAILED tasks on
// a completed mission, retained for debugging).
func (w *Workspace) CleanupBranches(ctx context.Context, taskIDs, preserve []string) {
	keep := make(map[string]bool, len(preserve))
	for _, id := range preserve {
		keep[id] = true
	}

	scratch, err := os.MkdirTemp("", "worldmind-cleanup-*")
	if err != nil {
		slog.Warn("Failed to create cleanup scratch dir", "error", err)
		return
	}
	defer os.RemoveAll(scratch)

	repoDir := scratch + "/repo"
	if err := w.CloneMainline(ctx, repoDir); err != nil {
		slog.Warn("Failed to clone for branch cleanup", "error", err)
		return
	}

	for _, id := range taskIDs {
		if keep[id] {
			continue
		}
		w.DeleteTaskBranch(ctx, repoDir, id)
	}
}
