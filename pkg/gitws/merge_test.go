package gitws

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyRunner fails a command the first failCount times it runs, then
// succeeds. Used to model rebase conflicts that resolve after mainline is
// refreshed.
type flakyRunner struct {
	calls []string
	fails map[string]int
}

func (r *flakyRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	r.calls = append(r.calls, key)
	if n, ok := r.fails[key]; ok && n > 0 {
		r.fails[key] = n - 1
		return "", errors.New("conflict")
	}
	return "", nil
}

func (r *flakyRunner) countPrefix(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func mergeOpts() MergeOptions {
	return MergeOptions{RetryCount: 2, RetryBackoff: time.Millisecond}
}

func TestMergeWave(t *testing.T) {
	t.Run("merges in lexicographic order with a push between each", func(t *testing.T) {
		r := &flakyRunner{}
		ws := newTestWorkspace(r)

		result, err := ws.MergeWave(context.Background(), []string{"TASK-003", "TASK-001", "TASK-002"}, mergeOpts())
		require.NoError(t, err)
		assert.Equal(t, []string{"TASK-001", "TASK-002", "TASK-003"}, result.MergedIDs)
		assert.Empty(t, result.ConflictedIDs)

		// Each branch is fetched, merged, and mainline pushed before the
		// next branch is touched.
		var ordered []string
		for _, c := range r.calls {
			if strings.HasPrefix(c, "fetch origin worldmind/") || c == "push origin main" {
				ordered = append(ordered, c)
			}
		}
		assert.Equal(t, []string{
			"fetch origin worldmind/TASK-001", "push origin main",
			"fetch origin worldmind/TASK-002", "push origin main",
			"fetch origin worldmind/TASK-003", "push origin main",
		}, ordered)
	})

	t.Run("empty wave is a no-op", func(t *testing.T) {
		r := &flakyRunner{}
		ws := newTestWorkspace(r)

		result, err := ws.MergeWave(context.Background(), nil, mergeOpts())
		require.NoError(t, err)
		assert.Empty(t, result.MergedIDs)
		assert.Empty(t, r.calls)
	})

	t.Run("rebase conflict retries after refreshing mainline", func(t *testing.T) {
		r := &flakyRunner{fails: map[string]int{"rebase main": 1}}
		ws := newTestWorkspace(r)

		result, err := ws.MergeWave(context.Background(), []string{"TASK-001"}, mergeOpts())
		require.NoError(t, err)
		assert.Equal(t, []string{"TASK-001"}, result.MergedIDs)

		// Failed rebase is aborted, mainline refreshed, then retried.
		assert.Equal(t, 1, r.countPrefix("rebase --abort"))
		assert.Equal(t, 1, r.countPrefix("pull --rebase origin main"))
		assert.Equal(t, 2, r.countPrefix("rebase main"))
	})

	t.Run("persistent conflict lands in ConflictedIDs", func(t *testing.T) {
		// Exactly three failures: TASK-001 burns all its attempts, TASK-002
		// then rebases cleanly.
		r := &flakyRunner{fails: map[string]int{"rebase main": 3}}
		ws := newTestWorkspace(r)

		result, err := ws.MergeWave(context.Background(), []string{"TASK-001", "TASK-002"}, mergeOpts())
		require.NoError(t, err)
		assert.Equal(t, []string{"TASK-002"}, result.MergedIDs)
		assert.Equal(t, []string{"TASK-001"}, result.ConflictedIDs)

		// RetryCount=2 means three attempts total.
		assert.Equal(t, 3, r.countPrefix("rebase --abort"))
	})

	t.Run("one conflicted branch does not block the rest of the wave", func(t *testing.T) {
		r := &flakyRunner{fails: map[string]int{"fetch origin worldmind/TASK-002": 10}}
		ws := newTestWorkspace(r)

		result, err := ws.MergeWave(context.Background(), []string{"TASK-001", "TASK-002", "TASK-003"}, mergeOpts())
		require.NoError(t, err)
		assert.Equal(t, []string{"TASK-001", "TASK-003"}, result.MergedIDs)
		assert.Equal(t, []string{"TASK-002"}, result.ConflictedIDs)
	})
}

func TestMergeWaveContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &flakyRunner{fails: map[string]int{"rebase main": 10}}
	ws := newTestWorkspace(r)

	// With the context already cancelled, the retry backoff exits early and
	// the branch counts as conflicted.
	result, err := ws.MergeWave(ctx, []string{"TASK-001"}, mergeOpts())
	require.NoError(t, err)
	assert.Equal(t, []string{"TASK-001"}, result.ConflictedIDs)
}
