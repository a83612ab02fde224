package api

import (
	"time"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/pkg/models"
)

// CreateMissionRequest is the intake payload for POST /api/v1/missions.
// Either request or prd_document carries the mission text; request wins
// when both are set.
type CreateMissionRequest struct {
	Request              string `json:"request"`
	PrdDocument          string `json:"prd_document"`
	InteractionMode      string `json:"interaction_mode"`
	ExecutionStrategy    string `json:"execution_strategy"`
	ProjectPath          string `json:"project_path"`
	GitRemoteURL         string `json:"git_remote_url"`
	ReasoningLevel       string `json:"reasoning_level"`
	SkipPerTaskTests     bool   `json:"skip_per_task_tests"`
	CreateDeploymentTask bool   `json:"create_deployment_task"`
}

// ClarifyRequest carries the user's answers for POST .../clarify.
type ClarifyRequest struct {
	Answers []models.ClarifyingAnswer `json:"answers"`
}

// RetryRequest selects the tasks to reset for POST .../retry. A missing
// task_ids field retries every failed and skipped task; an empty list is
// rejected.
type RetryRequest struct {
	TaskIDs *[]string `json:"task_ids"`
}

// MissionSummary is the queue-row view of a mission.
type MissionSummary struct {
	MissionID         string     `json:"mission_id"`
	Request           string     `json:"request"`
	InteractionMode   string     `json:"interaction_mode"`
	ExecutionStrategy string     `json:"execution_strategy,omitempty"`
	Status            string     `json:"status"`
	ErrorMessage      string     `json:"error_message,omitempty"`
	PodID             string     `json:"pod_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// MissionDetail adds the latest checkpointed execution state. State is null
// until a worker has started the mission.
type MissionDetail struct {
	MissionSummary
	State *models.MissionState `json:"state"`
}

func toSummary(m *ent.Mission) MissionSummary {
	s := MissionSummary{
		MissionID:         m.ID,
		Request:           m.Request,
		InteractionMode:   m.InteractionMode,
		ExecutionStrategy: m.ExecutionStrategy,
		Status:            string(m.Status),
		CreatedAt:         m.CreatedAt,
		StartedAt:         m.StartedAt,
		CompletedAt:       m.CompletedAt,
	}
	if m.ErrorMessage != nil {
		s.ErrorMessage = *m.ErrorMessage
	}
	if m.PodID != nil {
		s.PodID = *m.PodID
	}
	return s
}
