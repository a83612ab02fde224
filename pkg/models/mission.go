package models

import (
	"encoding/json"
	"fmt"
)

// StateSchemaVersion is bumped whenever the checkpoint blob layout changes.
const StateSchemaVersion = 1

// MissionState is the single channel through which engine nodes communicate.
// It is treated as an immutable value: nodes Clone() the incoming state,
// mutate the copy, and return it. The latest checkpointed state is the
// authoritative snapshot of a mission.
type MissionState struct {
	SchemaVersion int `json:"schema_version"`

	MissionID       string          `json:"mission_id"`
	Request         string          `json:"request"`
	InteractionMode InteractionMode `json:"interaction_mode"`
	Status          MissionStatus   `json:"status"`

	Classification      string               `json:"classification,omitempty"`
	ProjectContext      *ProjectContext      `json:"project_context,omitempty"`
	ProductSpec         string               `json:"product_spec,omitempty"`
	ClarifyingQuestions []ClarifyingQuestion `json:"clarifying_questions,omitempty"`
	ClarifyingAnswers   string               `json:"clarifying_answers,omitempty"`

	Tasks []*Task `json:"tasks,omitempty"`

	// CompletedTaskIDs preserves insertion order for stable display.
	CompletedTaskIDs []string `json:"completed_task_ids,omitempty"`
	// WaveTaskIDs holds the tasks dispatched in the in-flight wave.
	WaveTaskIDs []string `json:"wave_task_ids,omitempty"`

	WaveCount         int               `json:"wave_count"`
	ReplanCount       int               `json:"replan_count,omitempty"`
	ExecutionStrategy ExecutionStrategy `json:"execution_strategy"`

	TestResults    []TestResult     `json:"test_results,omitempty"`
	ReviewFeedback []ReviewFeedback `json:"review_feedback,omitempty"`

	QualityGateGranted bool     `json:"quality_gate_granted"`
	DeploymentURL      string   `json:"deployment_url,omitempty"`
	Metrics            string   `json:"metrics,omitempty"`
	Errors             []string `json:"errors,omitempty"`

	ProjectPath  string `json:"project_path,omitempty"`
	GitRemoteURL string `json:"git_remote_url,omitempty"`

	ReasoningLevel        string `json:"reasoning_level,omitempty"`
	SkipPerTaskTests      bool   `json:"skip_per_task_tests,omitempty"`
	CreateDeploymentTask  bool   `json:"create_deployment_task,omitempty"`
	ManifestCreatedByTask bool   `json:"manifest_created_by_task,omitempty"`
}

// Clone returns a deep copy of the state. Nodes must never mutate their
// input state; they clone, change the clone, and return it.
func (s *MissionState) Clone() *MissionState {
	c := *s
	if s.ProjectContext != nil {
		pc := *s.ProjectContext
		pc.Dependencies = append([]string(nil), s.ProjectContext.Dependencies...)
		pc.FileTree = append([]string(nil), s.ProjectContext.FileTree...)
		c.ProjectContext = &pc
	}
	c.ClarifyingQuestions = append([]ClarifyingQuestion(nil), s.ClarifyingQuestions...)
	c.Tasks = make([]*Task, len(s.Tasks))
	for i, t := range s.Tasks {
		c.Tasks[i] = t.Clone()
	}
	c.CompletedTaskIDs = append([]string(nil), s.CompletedTaskIDs...)
	c.WaveTaskIDs = append([]string(nil), s.WaveTaskIDs...)
	c.TestResults = append([]TestResult(nil), s.TestResults...)
	c.ReviewFeedback = append([]ReviewFeedback(nil), s.ReviewFeedback...)
	c.Errors = append([]string(nil), s.Errors...)
	return &c
}

// Task returns the task with the given id, or nil.
func (s *MissionState) Task(id string) *Task {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// IsCompleted reports whether the task id has been finalized for the mission.
func (s *MissionState) IsCompleted(id string) bool {
	for _, c := range s.CompletedTaskIDs {
		if c == id {
			return true
		}
	}
	return false
}

// MarkCompleted appends the task id to CompletedTaskIDs exactly once.
func (s *MissionState) MarkCompleted(id string) {
	if s.IsCompleted(id) {
		return
	}
	s.CompletedTaskIDs = append(s.CompletedTaskIDs, id)
}

// AddError appends a mission-level error message.
func (s *MissionState) AddError(format string, args ...any) {
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}

// Marshal serializes the state into the opaque checkpoint blob.
func (s *MissionState) Marshal() (string, error) {
	s.SchemaVersion = StateSchemaVersion
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshaling mission state: %w", err)
	}
	return string(data), nil
}

// UnmarshalState parses a checkpoint blob back into a MissionState.
func UnmarshalState(blob string) (*MissionState, error) {
	var s MissionState
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return nil, fmt.Errorf("unmarshaling mission state: %w", err)
	}
	if s.SchemaVersion > StateSchemaVersion {
		return nil, fmt.Errorf("unsupported state schema version %d", s.SchemaVersion)
	}
	return &s, nil
}
