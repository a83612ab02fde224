package sandbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/exchange"
	"github.com/worldmind/worldmind/pkg/gitws"
	"github.com/worldmind/worldmind/pkg/models"
)

func newRemoteFixture(t *testing.T, handler http.Handler) (*RemoteProvider, *exchange.Store, *exchange.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	git := &fakeGitRunner{}
	ws := gitws.NewWorkspace(git, "https://git.example.com/repo.git", "worldmind", "main")
	instructions := exchange.NewStore("instructions", 0)
	outputs := exchange.NewStore("outputs", 0)
	cfg := &config.SandboxConfig{
		Provider:      "remote",
		RemoteBaseURL: srv.URL,
		PollInterval:  10 * time.Millisecond,
	}
	return NewRemoteProvider(cfg, ws, instructions, outputs), instructions, outputs
}

func TestRemoteProviderOpen(t *testing.T) {
	var posted remoteTask
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(remoteTask{ID: "sbx-1", Status: "pending"})
	})
	provider, instructions, _ := newRemoteFixture(t, mux)

	id, err := provider.Open(context.Background(), OpenRequest{
		Agent:        models.RoleCoder,
		TaskID:       "TASK-001",
		MissionID:    "mission-1",
		Instruction:  "do it",
		GitRemoteURL: "https://git.example.com/repo.git",
		BranchTaskID: "TASK-001",
	})
	require.NoError(t, err)
	assert.Equal(t, "sbx-1", id)
	assert.Equal(t, "worldmind/TASK-001", posted.Branch)
	assert.Equal(t, "CODER", posted.Agent)

	// The instruction is parked for the worker to fetch.
	text, ok := instructions.Get(exchange.Key(models.RoleCoder, "TASK-001"))
	require.True(t, ok)
	assert.Equal(t, "do it", text)
}

func TestRemoteProviderOpenRejection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "fleet at capacity", http.StatusServiceUnavailable)
	})
	provider, instructions, _ := newRemoteFixture(t, mux)

	_, err := provider.Open(context.Background(), OpenRequest{
		Agent: models.RoleCoder, TaskID: "TASK-002", Instruction: "do it",
	})
	assert.ErrorContains(t, err, "rejected task")
	assert.Equal(t, 0, instructions.Len(), "instruction should be withdrawn on rejection")
}

func TestRemoteProviderWaitForCompletion(t *testing.T) {
	t.Run("polls until terminal", func(t *testing.T) {
		var polls atomic.Int32
		exitCode := 0
		mux := http.NewServeMux()
		mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(remoteTask{ID: "sbx-2", Status: "pending"})
		})
		mux.HandleFunc("GET /tasks/sbx-2", func(w http.ResponseWriter, r *http.Request) {
			task := remoteTask{ID: "sbx-2", Status: "running"}
			if polls.Add(1) >= 3 {
				task.Status = "completed"
				task.ExitCode = &exitCode
			}
			json.NewEncoder(w).Encode(task)
		})
		provider, _, _ := newRemoteFixture(t, mux)

		id, err := provider.Open(context.Background(), OpenRequest{
			Agent: models.RoleCoder, TaskID: "TASK-003",
		})
		require.NoError(t, err)

		code, err := provider.WaitForCompletion(context.Background(), id, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.GreaterOrEqual(t, polls.Load(), int32(3))
	})

	t.Run("timeout cancels and reports ExitTimeout", func(t *testing.T) {
		var cancelled atomic.Bool
		mux := http.NewServeMux()
		mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(remoteTask{ID: "sbx-3", Status: "pending"})
		})
		mux.HandleFunc("GET /tasks/sbx-3", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(remoteTask{ID: "sbx-3", Status: "running"})
		})
		mux.HandleFunc("DELETE /tasks/sbx-3", func(w http.ResponseWriter, r *http.Request) {
			cancelled.Store(true)
			w.WriteHeader(http.StatusNoContent)
		})
		provider, _, _ := newRemoteFixture(t, mux)

		id, err := provider.Open(context.Background(), OpenRequest{
			Agent: models.RoleCoder, TaskID: "TASK-004",
		})
		require.NoError(t, err)

		code, err := provider.WaitForCompletion(context.Background(), id, 30*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, ExitTimeout, code)
		assert.True(t, cancelled.Load())
	})

	t.Run("failed without exit code maps to 1", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(remoteTask{ID: "sbx-4", Status: "pending"})
		})
		mux.HandleFunc("GET /tasks/sbx-4", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(remoteTask{ID: "sbx-4", Status: "failed"})
		})
		provider, _, _ := newRemoteFixture(t, mux)

		id, err := provider.Open(context.Background(), OpenRequest{
			Agent: models.RoleCoder, TaskID: "TASK-005",
		})
		require.NoError(t, err)

		code, err := provider.WaitForCompletion(context.Background(), id, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, code)
	})
}

func TestRemoteProviderCaptureOutput(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(remoteTask{ID: "sbx-5", Status: "pending"})
	})
	provider, _, outputs := newRemoteFixture(t, mux)

	id, err := provider.Open(context.Background(), OpenRequest{
		Agent: models.RoleTester, TaskID: "TASK-006",
	})
	require.NoError(t, err)

	t.Run("missing output is empty not error", func(t *testing.T) {
		out, err := provider.CaptureOutput(context.Background(), id)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("posted output is taken once", func(t *testing.T) {
		key := exchange.Key(models.RoleTester, "TASK-006")
		outputs.Put(key, "Tests run: 12, Failures: 0, Errors: 0")

		out, err := provider.CaptureOutput(context.Background(), id)
		require.NoError(t, err)
		assert.Contains(t, out, "Tests run: 12")
		assert.Equal(t, 0, outputs.Len())
	})
}

func TestRemoteProviderTeardown(t *testing.T) {
	var cancelled atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(remoteTask{ID: "sbx-6", Status: "pending"})
	})
	mux.HandleFunc("DELETE /tasks/sbx-6", func(w http.ResponseWriter, r *http.Request) {
		cancelled.Store(true)
		w.WriteHeader(http.StatusNoContent)
	})
	provider, instructions, outputs := newRemoteFixture(t, mux)

	id, err := provider.Open(context.Background(), OpenRequest{
		Agent: models.RoleCoder, TaskID: "TASK-007", Instruction: "do it",
	})
	require.NoError(t, err)
	outputs.Put(exchange.Key(models.RoleCoder, "TASK-007"), "stale")

	provider.Teardown(context.Background(), id)

	assert.True(t, cancelled.Load())
	assert.Equal(t, 0, instructions.Len())
	assert.Equal(t, 0, outputs.Len())
}
