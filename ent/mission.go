// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/worldmind/worldmind/ent/mission"
)

// Mission is the model entity for the Mission schema.
type Mission struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Natural-language request or PRD document
	Request string `json:"request,omitempty"`
	// InteractionMode holds the value of the "interaction_mode" field.
	InteractionMode string `json:"interaction_mode,omitempty"`
	// Queue-level status; fine-grained MissionStatus lives in the checkpoint state
	Status mission.Status `json:"status,omitempty"`
	// ExecutionStrategy holds the value of the "execution_strategy" field.
	ExecutionStrategy string `json:"execution_strategy,omitempty"`
	// ProjectPath holds the value of the "project_path" field.
	ProjectPath *string `json:"project_path,omitempty"`
	// GitRemoteURL holds the value of the "git_remote_url" field.
	GitRemoteURL *string `json:"git_remote_url,omitempty"`
	// ReasoningLevel holds the value of the "reasoning_level" field.
	ReasoningLevel *string `json:"reasoning_level,omitempty"`
	// SkipPerTaskTests holds the value of the "skip_per_task_tests" field.
	SkipPerTaskTests bool `json:"skip_per_task_tests,omitempty"`
	// CreateDeploymentTask holds the value of the "create_deployment_task" field.
	CreateDeploymentTask bool `json:"create_deployment_task,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the mission
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MissionQuery when eager-loading is set.
	Edges        MissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MissionEdges holds the relations/edges for other nodes in the graph.
type MissionEdges struct {
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e MissionEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[0] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mission.FieldSkipPerTaskTests, mission.FieldCreateDeploymentTask:
			values[i] = new(sql.NullBool)
		case mission.FieldID, mission.FieldRequest, mission.FieldInteractionMode, mission.FieldStatus, mission.FieldExecutionStrategy, mission.FieldProjectPath, mission.FieldGitRemoteURL, mission.FieldReasoningLevel, mission.FieldErrorMessage, mission.FieldPodID:
			values[i] = new(sql.NullString)
		case mission.FieldCreatedAt, mission.FieldStartedAt, mission.FieldCompletedAt, mission.FieldLastInteractionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mission fields.
func (_m *Mission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mission.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mission.FieldRequest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request", values[i])
			} else if value.Valid {
				_m.Request = value.String
			}
		case mission.FieldInteractionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_mode", values[i])
			} else if value.Valid {
				_m.InteractionMode = value.String
			}
		case mission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = mission.Status(value.String)
			}
		case mission.FieldExecutionStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_strategy", values[i])
			} else if value.Valid {
				_m.ExecutionStrategy = value.String
			}
		case mission.FieldProjectPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_path", values[i])
			} else if value.Valid {
				_m.ProjectPath = new(string)
				*_m.ProjectPath = value.String
			}
		case mission.FieldGitRemoteURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field git_remote_url", values[i])
			} else if value.Valid {
				_m.GitRemoteURL = new(string)
				*_m.GitRemoteURL = value.String
			}
		case mission.FieldReasoningLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_level", values[i])
			} else if value.Valid {
				_m.ReasoningLevel = new(string)
				*_m.ReasoningLevel = value.String
			}
		case mission.FieldSkipPerTaskTests:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_per_task_tests", values[i])
			} else if value.Valid {
				_m.SkipPerTaskTests = value.Bool
			}
		case mission.FieldCreateDeploymentTask:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field create_deployment_task", values[i])
			} else if value.Valid {
				_m.CreateDeploymentTask = value.Bool
			}
		case mission.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case mission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mission.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case mission.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case mission.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case mission.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mission.
// This includes values selected through modifiers, order, etc.
func (_m *Mission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCheckpoints queries the "checkpoints" edge of the Mission entity.
func (_m *Mission) QueryCheckpoints() *CheckpointQuery {
	return NewMissionClient(_m.config).QueryCheckpoints(_m)
}

// Update returns a builder for updating this Mission.
// Note that you need to call Mission.Unwrap() before calling this method if this Mission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mission) Update() *MissionUpdateOne {
	return NewMissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mission) Unwrap() *Mission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mission) String() string {
	var builder strings.Builder
	builder.WriteString("Mission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request=")
	builder.WriteString(_m.Request)
	builder.WriteString(", ")
	builder.WriteString("interaction_mode=")
	builder.WriteString(_m.InteractionMode)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("execution_strategy=")
	builder.WriteString(_m.ExecutionStrategy)
	builder.WriteString(", ")
	if v := _m.ProjectPath; v != nil {
		builder.WriteString("project_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GitRemoteURL; v != nil {
		builder.WriteString("git_remote_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReasoningLevel; v != nil {
		builder.WriteString("reasoning_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("skip_per_task_tests=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipPerTaskTests))
	builder.WriteString(", ")
	builder.WriteString("create_deployment_task=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreateDeploymentTask))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Missions is a parsable slice of Mission.
type Missions []*Mission
