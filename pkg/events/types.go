// Package events provides per-mission event topics driving the SSE and
// WebSocket streams. Publishers post typed payloads; subscribers drain them
// in publish order. The bus is in-process: missions are pinned to the worker
// that claimed them, so cross-pod fan-out is not required.
package events

// Event type constants carried in every payload's "type" field.
const (
	// Mission lifecycle
	EventTypeMissionStatus = "mission.status"
	EventTypeMissionFailed = "mission.failed"

	// Task lifecycle
	EventTypeTaskStarted   = "task.started"
	EventTypeTaskCompleted = "task.completed"
	EventTypeTaskFailed    = "task.failed"

	// Wave lifecycle
	EventTypeWaveStarted   = "wave.started"
	EventTypeWaveCompleted = "wave.completed"

	// Quality gates and planning
	EventTypeQualityGateDenied = "quality_gate.denied"
	EventTypePlanCreated       = "plan.created"

	// Deployment
	EventTypeDeploymentCompleted = "deployment.completed"
)

// MissionChannel returns the topic name for a mission's events.
// Format: "mission:{mission_id}"
func MissionChannel(missionID string) string {
	return "mission:" + missionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // Channel name (e.g., "mission:abc-123")
}
