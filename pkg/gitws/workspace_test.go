package gitws

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/pkg/models"
)

// scriptedRunner replays canned results keyed on the joined git args. Commands
// without a script succeed with empty output.
type scriptedRunner struct {
	calls   []string
	results map[string]string
	fails   map[string]error
}

func (r *scriptedRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	r.calls = append(r.calls, key)
	if err, ok := r.fails[key]; ok {
		return "", err
	}
	return r.results[key], nil
}

func (r *scriptedRunner) called(prefix string) bool {
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func newTestWorkspace(runner Runner) *Workspace {
	return NewWorkspace(runner, "https://git.example.com/repo.git", "worldmind", "main")
}

func TestBranchName(t *testing.T) {
	ws := newTestWorkspace(&scriptedRunner{})
	assert.Equal(t, "worldmind/TASK-001", ws.BranchName("TASK-001"))
}

func TestPrepareTaskBranch(t *testing.T) {
	t.Run("deletes stale branches then branches off fresh mainline", func(t *testing.T) {
		r := &scriptedRunner{}
		ws := newTestWorkspace(r)
		require.NoError(t, ws.PrepareTaskBranch(context.Background(), "/repo", "TASK-001"))

		assert.Equal(t, []string{
			"push origin --delete worldmind/TASK-001",
			"branch -D worldmind/TASK-001",
			"checkout main",
			"pull --rebase origin main",
			"checkout -b worldmind/TASK-001",
		}, r.calls)
	})

	t.Run("missing stale branches are ignored", func(t *testing.T) {
		r := &scriptedRunner{fails: map[string]error{
			"push origin --delete worldmind/TASK-001": errors.New("remote ref does not exist"),
			"branch -D worldmind/TASK-001":            errors.New("branch not found"),
		}}
		ws := newTestWorkspace(r)
		assert.NoError(t, ws.PrepareTaskBranch(context.Background(), "/repo", "TASK-001"))
	})

	t.Run("mainline pull failure is fatal", func(t *testing.T) {
		r := &scriptedRunner{fails: map[string]error{
			"pull --rebase origin main": errors.New("network down"),
		}}
		ws := newTestWorkspace(r)
		assert.ErrorContains(t, ws.PrepareTaskBranch(context.Background(), "/repo", "TASK-001"), "updating mainline")
	})
}

func TestCommitAndPush(t *testing.T) {
	t.Run("empty staged diff means no commit", func(t *testing.T) {
		// diff --cached --quiet exits zero when nothing is staged.
		r := &scriptedRunner{}
		ws := newTestWorkspace(r)

		committed, err := ws.CommitAndPush(context.Background(), "/repo", "TASK-001", "msg")
		require.NoError(t, err)
		assert.False(t, committed)
		assert.False(t, r.called("commit"))
	})

	t.Run("staged changes are committed and force-pushed", func(t *testing.T) {
		r := &scriptedRunner{fails: map[string]error{
			"diff --cached --quiet": errors.New("exit status 1"),
		}}
		ws := newTestWorkspace(r)

		committed, err := ws.CommitAndPush(context.Background(), "/repo", "TASK-001", "msg")
		require.NoError(t, err)
		assert.True(t, committed)
		assert.True(t, r.called("push --force origin worldmind/TASK-001"))
	})
}

func TestParseDiff(t *testing.T) {
	t.Run("actions come from name-status", func(t *testing.T) {
		numstat := "10\t2\tsrc/app.go\n5\t0\tsrc/new.go\n0\t30\tsrc/old.go"
		nameStatus := "M\tsrc/app.go\nA\tsrc/new.go\nD\tsrc/old.go"

		records := ParseDiff(numstat, nameStatus)
		require.Len(t, records, 3)

		byPath := map[string]models.FileRecord{}
		for _, rec := range records {
			byPath[rec.Path] = rec
		}
		assert.Equal(t, models.FileModified, byPath["src/app.go"].Action)
		assert.Equal(t, 12, byPath["src/app.go"].LinesChanged)
		assert.Equal(t, models.FileCreated, byPath["src/new.go"].Action)
		assert.Equal(t, models.FileDeleted, byPath["src/old.go"].Action)
		assert.Equal(t, 30, byPath["src/old.go"].LinesChanged)
	})

	t.Run("binary files count zero lines", func(t *testing.T) {
		records := ParseDiff("-\t-\tassets/logo.png", "A\tassets/logo.png")
		require.Len(t, records, 1)
		assert.Equal(t, 0, records[0].LinesChanged)
		assert.Equal(t, models.FileCreated, records[0].Action)
	})

	t.Run("renames resolve to the new path", func(t *testing.T) {
		records := ParseDiff("3\t1\told.go => new.go", "R100\told.go\tnew.go")
		require.Len(t, records, 1)
		assert.Equal(t, "new.go", records[0].Path)
		assert.Equal(t, models.FileModified, records[0].Action)
	})

	t.Run("empty diffs yield no records", func(t *testing.T) {
		assert.Empty(t, ParseDiff("", ""))
	})
}
