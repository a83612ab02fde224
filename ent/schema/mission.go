package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mission holds the schema definition for the Mission entity. A Mission row
// is the queue record workers claim; the authoritative execution state lives
// in the checkpoint chain keyed by the mission id.
type Mission struct {
	ent.Schema
}

// Fields of the Mission.
func (Mission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mission_id").
			Unique().
			Immutable(),
		field.Text("request").
			Comment("Natural-language request or PRD document"),
		field.String("interaction_mode").
			Default("FULL_AUTO"),
		field.Enum("status").
			Values("pending", "in_progress", "awaiting_approval", "completed", "failed", "cancelled").
			Default("pending").
			Comment("Queue-level status; fine-grained MissionStatus lives in the checkpoint state"),
		field.String("execution_strategy").
			Optional(),
		field.String("project_path").
			Optional().
			Nillable(),
		field.String("git_remote_url").
			Optional().
			Nillable(),
		field.String("reasoning_level").
			Optional().
			Nillable(),
		field.Bool("skip_per_task_tests").
			Default(false),
		field.Bool("create_deployment_task").
			Default(false),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the mission"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Mission.
func (Mission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Mission.
func (Mission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
