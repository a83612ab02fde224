// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "next_node_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_missions_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[5]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_thread_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[5]},
			},
			{
				Name:    "checkpoint_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[5], CheckpointsColumns[4]},
			},
		},
	}
	// MissionsColumns holds the columns for the "missions" table.
	MissionsColumns = []*schema.Column{
		{Name: "mission_id", Type: field.TypeString, Unique: true},
		{Name: "request", Type: field.TypeString, Size: 2147483647},
		{Name: "interaction_mode", Type: field.TypeString, Default: "FULL_AUTO"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "awaiting_approval", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "execution_strategy", Type: field.TypeString, Nullable: true},
		{Name: "project_path", Type: field.TypeString, Nullable: true},
		{Name: "git_remote_url", Type: field.TypeString, Nullable: true},
		{Name: "reasoning_level", Type: field.TypeString, Nullable: true},
		{Name: "skip_per_task_tests", Type: field.TypeBool, Default: false},
		{Name: "create_deployment_task", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// MissionsTable holds the schema information for the "missions" table.
	MissionsTable = &schema.Table{
		Name:       "missions",
		Columns:    MissionsColumns,
		PrimaryKey: []*schema.Column{MissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mission_status",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[3]},
			},
			{
				Name:    "mission_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[3], MissionsColumns[11]},
			},
			{
				Name:    "mission_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[3], MissionsColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		MissionsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = MissionsTable
}
