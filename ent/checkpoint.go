// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/worldmind/worldmind/ent/checkpoint"
	"github.com/worldmind/worldmind/ent/mission"
)

// Checkpoint is the model entity for the Checkpoint schema.
type Checkpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Mission id owning this checkpoint chain
	ThreadID string `json:"thread_id,omitempty"`
	// Engine node that produced the state
	NodeID string `json:"node_id,omitempty"`
	// NextNodeID holds the value of the "next_node_id" field.
	NextNodeID *string `json:"next_node_id,omitempty"`
	// Opaque versioned MissionState blob
	State string `json:"state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckpointQuery when eager-loading is set.
	Edges        CheckpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckpointEdges holds the relations/edges for other nodes in the graph.
type CheckpointEdges struct {
	// Mission holds the value of the mission edge.
	Mission *Mission `json:"mission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MissionOrErr returns the Mission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckpointEdges) MissionOrErr() (*Mission, error) {
	if e.Mission != nil {
		return e.Mission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: mission.Label}
	}
	return nil, &NotLoadedError{edge: "mission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldID, checkpoint.FieldThreadID, checkpoint.FieldNodeID, checkpoint.FieldNextNodeID, checkpoint.FieldState:
			values[i] = new(sql.NullString)
		case checkpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkpoint fields.
func (_m *Checkpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkpoint.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case checkpoint.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case checkpoint.FieldNextNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field next_node_id", values[i])
			} else if value.Valid {
				_m.NextNodeID = new(string)
				*_m.NextNodeID = value.String
			}
		case checkpoint.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case checkpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Checkpoint.
// This includes values selected through modifiers, order, etc.
func (_m *Checkpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMission queries the "mission" edge of the Checkpoint entity.
func (_m *Checkpoint) QueryMission() *MissionQuery {
	return NewCheckpointClient(_m.config).QueryMission(_m)
}

// Update returns a builder for updating this Checkpoint.
// Note that you need to call Checkpoint.Unwrap() before calling this method if this Checkpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkpoint) Update() *CheckpointUpdateOne {
	return NewCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkpoint) Unwrap() *Checkpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Checkpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkpoint) String() string {
	var builder strings.Builder
	builder.WriteString("Checkpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	if v := _m.NextNodeID; v != nil {
		builder.WriteString("next_node_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Checkpoints is a parsable slice of Checkpoint.
type Checkpoints []*Checkpoint
