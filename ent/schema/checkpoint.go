package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity: one
// durable snapshot of MissionState written after each engine node.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Comment("Mission id owning this checkpoint chain"),
		field.String("node_id").
			Comment("Engine node that produced the state"),
		field.String("next_node_id").
			Optional().
			Nillable(),
		field.Text("state").
			Comment("Opaque versioned MissionState blob"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("checkpoints").
			Field("thread_id").
			Unique().
			Required(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id"),
		index.Fields("thread_id", "created_at"),
	}
}
