package models

import "time"

// TestResult is the structured outcome parsed from a TESTER task's output.
type TestResult struct {
	TaskID      string `json:"task_id"`
	Passed      bool   `json:"passed"`
	TotalTests  int    `json:"total_tests"`
	FailedTests int    `json:"failed_tests"`
	Summary     string `json:"summary,omitempty"`
	DurationMs  int64  `json:"duration_ms,omitempty"`
}

// ReviewFeedback is the structured outcome parsed from a REVIEWER task's output.
type ReviewFeedback struct {
	TaskID      string   `json:"task_id"`
	Approved    bool     `json:"approved"`
	Summary     string   `json:"summary,omitempty"`
	Issues      []string `json:"issues,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Score       int      `json:"score"` // 1-10
}

// SandboxInfo describes one sandbox worker execution.
type SandboxInfo struct {
	WorkerID    string        `json:"worker_id"`
	Agent       AgentRole     `json:"agent"`
	TaskID      string        `json:"task_id"`
	Status      SandboxStatus `json:"status"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// ClarifyingQuestion is one question the classifier wants answered before
// planning.
type ClarifyingQuestion struct {
	ID       string `json:"question_id"`
	Question string `json:"question"`
}

// ClarifyingAnswer pairs a question with the user's free-text answer.
type ClarifyingAnswer struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question,omitempty"`
	Answer     string `json:"answer"`
}

// ProjectContext is what the orchestrator knows about the target repository.
// It feeds the instruction templates.
type ProjectContext struct {
	Language     string   `json:"language,omitempty"`
	Framework    string   `json:"framework,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	FileTree     []string `json:"file_tree,omitempty"`
}
