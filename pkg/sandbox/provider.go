// Package sandbox abstracts the ephemeral workers that execute one agent
// instruction against a git branch. The engine only ever sees the five
// operations of the Provider interface; the local variant runs a container
// per task, the remote variant submits tasks to a fleet of pre-deployed
// worker apps.
package sandbox

import (
	"context"
	"fmt"
	"time"

	"github.com/worldmind/worldmind/pkg/models"
)

// Exit code sentinels returned by WaitForCompletion. Zero is success,
// positive values are explicit worker failures, negative values mean the
// worker never reported.
const (
	ExitTimeout     = -1
	ExitInterrupted = -2
)

// OpenRequest carries everything a provider needs to start one worker.
type OpenRequest struct {
	Agent        models.AgentRole
	TaskID       string
	MissionID    string
	ProjectPath  string
	Instruction  string
	Env          map[string]string
	Memory       string
	CPU          string
	GitRemoteURL string
	RuntimeTag   string
	Iteration    int

	// BranchTaskID names the task whose branch the worker operates on.
	// For CODER/REFACTORER it is the task itself; for TESTER/REVIEWER it is
	// the parent CODER task. Empty for roles that never touch a branch.
	BranchTaskID string
}

// Provider opens sandbox workers and reports their results.
//
// Teardown must be called on every exit path; it is best-effort and must
// not block mission finalization.
type Provider interface {
	Open(ctx context.Context, req OpenRequest) (string, error)
	WaitForCompletion(ctx context.Context, sandboxID string, timeout time.Duration) (int, error)
	CaptureOutput(ctx context.Context, sandboxID string) (string, error)
	DetectChanges(ctx context.Context, taskID, projectPath string) ([]models.FileRecord, error)
	Teardown(ctx context.Context, sandboxID string)
}

// elisionMarker separates the preserved head and tail of truncated output.
const elisionMarker = "\n\n... [output truncated] ...\n\n"

// TruncateOutput caps captured output at maxBytes, preserving the head and
// tail around an explicit elision marker. Head gets two thirds of the
// budget: the beginning of a build log usually carries the failing command,
// the tail the final error.
func TruncateOutput(output string, maxBytes int) string {
	if maxBytes <= 0 || len(output) <= maxBytes {
		return output
	}
	budget := maxBytes - len(elisionMarker)
	if budget <= 0 {
		return output[:maxBytes]
	}
	head := budget * 2 / 3
	tail := budget - head
	return output[:head] + elisionMarker + output[len(output)-tail:]
}

// Info returns a human-readable sandbox identifier for logs.
func Info(req OpenRequest) string {
	return fmt.Sprintf("%s/%s iter=%d", req.Agent, req.TaskID, req.Iteration)
}
