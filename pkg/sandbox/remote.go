package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/exchange"
	"github.com/worldmind/worldmind/pkg/gitws"
	"github.com/worldmind/worldmind/pkg/models"
)

// remoteTask is the wire shape of the worker fleet's task API.
type remoteTask struct {
	ID        string `json:"id"`
	Agent     string `json:"agent"`
	TaskID    string `json:"taskId"`
	MissionID string `json:"missionId"`
	Branch    string `json:"branch"`
	RemoteURL string `json:"remoteUrl"`
	Status    string `json:"status"`
	ExitCode  *int   `json:"exitCode,omitempty"`
}

// RemoteProvider submits tasks to a fleet of pre-deployed worker apps over
// HTTP. Instructions and captured output move through the exchange stores:
// the worker fetches its instruction from the orchestrator's internal API
// and posts its output back before exiting, so the provider never talks to
// the worker's filesystem.
type RemoteProvider struct {
	cfg          *config.SandboxConfig
	ws           *gitws.Workspace
	client       *http.Client
	instructions *exchange.Store
	outputs      *exchange.Store

	mu     sync.Mutex
	tasks  map[string]*remoteTask // sandboxID → submitted task
	byTask map[string]string      // taskID → sandboxID
}

// NewRemoteProvider creates a provider against cfg.RemoteBaseURL.
func NewRemoteProvider(cfg *config.SandboxConfig, ws *gitws.Workspace, instructions, outputs *exchange.Store) *RemoteProvider {
	return &RemoteProvider{
		cfg:          cfg,
		ws:           ws,
		client:       &http.Client{Timeout: 30 * time.Second},
		instructions: instructions,
		outputs:      outputs,
		tasks:        make(map[string]*remoteTask),
		byTask:       make(map[string]string),
	}
}

// Open stashes the instruction for the worker to fetch and submits the task.
func (p *RemoteProvider) Open(ctx context.Context, req OpenRequest) (string, error) {
	key := exchange.Key(req.Agent, req.TaskID)
	p.instructions.Put(key, req.Instruction)

	branch := ""
	if req.BranchTaskID != "" {
		branch = p.ws.BranchName(req.BranchTaskID)
	}
	body, err := json.Marshal(remoteTask{
		Agent:     string(req.Agent),
		TaskID:    req.TaskID,
		MissionID: req.MissionID,
		Branch:    branch,
		RemoteURL: req.GitRemoteURL,
	})
	if err != nil {
		return "", fmt.Errorf("encoding task request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.cfg.RemoteBaseURL+"/tasks", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		p.instructions.Delete(key)
		return "", fmt.Errorf("submitting task %s: %w", req.TaskID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		p.instructions.Delete(key)
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("worker fleet rejected task %s: %d %s", req.TaskID, resp.StatusCode, data)
	}

	var created remoteTask
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		p.instructions.Delete(key)
		return "", fmt.Errorf("decoding task response: %w", err)
	}

	p.mu.Lock()
	created.Agent = string(req.Agent)
	created.TaskID = req.TaskID
	p.tasks[created.ID] = &created
	p.byTask[req.TaskID] = created.ID
	p.mu.Unlock()

	slog.Info("Remote sandbox opened", "sandbox_id", created.ID, "task", Info(req))
	return created.ID, nil
}

// WaitForCompletion polls the task status until it reaches a terminal state
// or the timeout elapses. A timed-out task is cancelled on the fleet before
// ExitTimeout is returned.
func (p *RemoteProvider) WaitForCompletion(ctx context.Context, sandboxID string, timeout time.Duration) (int, error) {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		task, err := p.fetchTask(ctx, sandboxID)
		if err != nil {
			return ExitInterrupted, err
		}
		switch task.Status {
		case "completed", "failed":
			if task.ExitCode != nil {
				return *task.ExitCode, nil
			}
			if task.Status == "completed" {
				return 0, nil
			}
			return 1, nil
		}

		if time.Now().After(deadline) {
			p.cancelTask(ctx, sandboxID)
			return ExitTimeout, nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			p.cancelTask(ctx, sandboxID)
			return ExitInterrupted, nil
		}
	}
}

// CaptureOutput takes the output the worker posted back. Missing output is
// not an error; a crashed worker posts nothing.
func (p *RemoteProvider) CaptureOutput(ctx context.Context, sandboxID string) (string, error) {
	p.mu.Lock()
	task, ok := p.tasks[sandboxID]
	p.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("unknown sandbox %s", sandboxID)
	}

	key := exchange.Key(models.AgentRole(task.Agent), task.TaskID)
	out, ok := p.outputs.Take(key)
	if !ok {
		slog.Warn("No output posted for remote sandbox", "sandbox_id", sandboxID, "key", key)
		return "", nil
	}
	return out, nil
}

// DetectChanges clones a scratch copy and diffs the task branch the remote
// worker pushed against mainline.
func (p *RemoteProvider) DetectChanges(ctx context.Context, taskID, projectPath string) ([]models.FileRecord, error) {
	scratch, err := os.MkdirTemp("", "worldmind-detect-*")
	if err != nil {
		return nil, fmt.Errorf("creating detect scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	repoDir := scratch + "/repo"
	if err := p.ws.CloneMainline(ctx, repoDir); err != nil {
		return nil, err
	}
	if err := p.ws.CheckoutTaskBranch(ctx, repoDir, taskID); err != nil {
		// Worker may have produced no commits, so no branch exists.
		slog.Info("No task branch to diff", "task_id", taskID)
		return nil, nil
	}
	return p.ws.DetectChanges(ctx, repoDir, taskID)
}

// Teardown cancels the task if still running and drops exchange leftovers.
func (p *RemoteProvider) Teardown(ctx context.Context, sandboxID string) {
	p.mu.Lock()
	task, ok := p.tasks[sandboxID]
	if ok {
		delete(p.tasks, sandboxID)
		delete(p.byTask, task.TaskID)
	}
	p.mu.Unlock()
	if !ok {
		return
	}

	p.cancelTask(ctx, sandboxID)
	key := exchange.Key(models.AgentRole(task.Agent), task.TaskID)
	p.instructions.Delete(key)
	p.outputs.Delete(key)
}

func (p *RemoteProvider) fetchTask(ctx context.Context, sandboxID string) (*remoteTask, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.cfg.RemoteBaseURL+"/tasks/"+sandboxID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("polling sandbox %s: %w", sandboxID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("polling sandbox %s: status %d", sandboxID, resp.StatusCode)
	}
	var task remoteTask
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("decoding sandbox %s status: %w", sandboxID, err)
	}
	return &task, nil
}

// cancelTask is best-effort; a finished task returns 404 or 409 and both are
// fine.
func (p *RemoteProvider) cancelTask(ctx context.Context, sandboxID string) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		p.cfg.RemoteBaseURL+"/tasks/"+sandboxID, nil)
	if err != nil {
		return
	}
	resp, err := p.client.Do(httpReq)
	if err != nil {
		slog.Debug("Cancel request failed", "sandbox_id", sandboxID, "error", err)
		return
	}
	resp.Body.Close()
}
