package events

import (
	"time"

	"github.com/worldmind/worldmind/pkg/models"
)

// BasePayload carries the fields common to every event payload.
type BasePayload struct {
	Type      string `json:"type"`
	MissionID string `json:"mission_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// NewBase builds a BasePayload stamped with the current time.
func NewBase(eventType, missionID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		MissionID: missionID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// MissionStatusPayload is published on every mission status transition.
type MissionStatusPayload struct {
	BasePayload
	Status models.MissionStatus `json:"status"`
}

// MissionFailedPayload is published when a mission reaches FAILED.
type MissionFailedPayload struct {
	BasePayload
	Errors []string `json:"errors,omitempty"`
}

// TaskStatusPayload is published for task.started / task.completed /
// task.failed events.
type TaskStatusPayload struct {
	BasePayload
	TaskID    string            `json:"task_id"`
	Agent     models.AgentRole  `json:"agent"`
	Status    models.TaskStatus `json:"status"`
	Iteration int               `json:"iteration"`
	Reason    string            `json:"reason,omitempty"`
}

// WavePayload is published for wave.started / wave.completed events.
type WavePayload struct {
	BasePayload
	Wave          int      `json:"wave"`
	TaskIDs       []string `json:"task_ids"`
	MergedIDs     []string `json:"merged_ids,omitempty"`
	ConflictedIDs []string `json:"conflicted_ids,omitempty"`
}

// QualityGateDeniedPayload is published when a quality gate denies a task.
type QualityGateDeniedPayload struct {
	BasePayload
	TaskID  string `json:"task_id"`
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}

// PlanCreatedPayload is published when the planner produces a task plan.
type PlanCreatedPayload struct {
	BasePayload
	TaskCount int    `json:"task_count"`
	Strategy  string `json:"strategy"`
}

// DeploymentCompletedPayload is published when the DEPLOYER task succeeds.
type DeploymentCompletedPayload struct {
	BasePayload
	URL string `json:"url"`
}
