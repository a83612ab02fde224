package models

// Task is one unit of LLM-driven work performed by exactly one agent role in
// one sandbox. Task ids (e.g. TASK-001) are unique within a mission and their
// lexicographic order is the canonical merge order.
type Task struct {
	ID              string        `json:"id"`
	Agent           AgentRole     `json:"agent"`
	Description     string        `json:"description"`
	InputContext    string        `json:"input_context,omitempty"`
	SuccessCriteria string        `json:"success_criteria,omitempty"`
	Dependencies    []string      `json:"dependencies,omitempty"`
	Status          TaskStatus    `json:"status"`
	Iteration       int           `json:"iteration"`
	MaxIterations   int           `json:"max_iterations"`
	OnFailure       FailurePolicy `json:"on_failure"`
	TargetFiles     []string      `json:"target_files,omitempty"`
	FilesAffected   []FileRecord  `json:"files_affected,omitempty"`
	ElapsedMs       int64         `json:"elapsed_ms,omitempty"`
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	c.Dependencies = append([]string(nil), t.Dependencies...)
	c.TargetFiles = append([]string(nil), t.TargetFiles...)
	c.FilesAffected = append([]FileRecord(nil), t.FilesAffected...)
	return &c
}

// DependsOn reports whether the task directly depends on the given task id.
func (t *Task) DependsOn(id string) bool {
	for _, d := range t.Dependencies {
		if d == id {
			return true
		}
	}
	return false
}

// FileRecord describes a single file change observed on a task branch.
type FileRecord struct {
	Path         string     `json:"path"`
	Action       FileAction `json:"action"`
	LinesChanged int        `json:"lines_changed"`
}

// WaveDispatchResult is the raw outcome of dispatching one task to a sandbox,
// before quality gates are applied.
type WaveDispatchResult struct {
	TaskID      string       `json:"task_id"`
	Status      TaskStatus   `json:"status"`
	FileChanges []FileRecord `json:"file_changes,omitempty"`
	Output      string       `json:"output,omitempty"`
	ElapsedMs   int64        `json:"elapsed_ms"`
}
