// Code generated by ent, DO NOT EDIT.

package mission

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the mission type in the database.
	Label = "mission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "mission_id"
	// FieldRequest holds the string denoting the request field in the database.
	FieldRequest = "request"
	// FieldInteractionMode holds the string denoting the interaction_mode field in the database.
	FieldInteractionMode = "interaction_mode"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExecutionStrategy holds the string denoting the execution_strategy field in the database.
	FieldExecutionStrategy = "execution_strategy"
	// FieldProjectPath holds the string denoting the project_path field in the database.
	FieldProjectPath = "project_path"
	// FieldGitRemoteURL holds the string denoting the git_remote_url field in the database.
	FieldGitRemoteURL = "git_remote_url"
	// FieldReasoningLevel holds the string denoting the reasoning_level field in the database.
	FieldReasoningLevel = "reasoning_level"
	// FieldSkipPerTaskTests holds the string denoting the skip_per_task_tests field in the database.
	FieldSkipPerTaskTests = "skip_per_task_tests"
	// FieldCreateDeploymentTask holds the string denoting the create_deployment_task field in the database.
	FieldCreateDeploymentTask = "create_deployment_task"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "checkpoint_id"
	// Table holds the table name of the mission in the database.
	Table = "missions"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "thread_id"
)

// Columns holds all SQL columns for mission fields.
var Columns = []string{
	FieldID,
	FieldRequest,
	FieldInteractionMode,
	FieldStatus,
	FieldExecutionStrategy,
	FieldProjectPath,
	FieldGitRemoteURL,
	FieldReasoningLevel,
	FieldSkipPerTaskTests,
	FieldCreateDeploymentTask,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldPodID,
	FieldLastInteractionAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultInteractionMode holds the default value on creation for the "interaction_mode" field.
	DefaultInteractionMode string
	// DefaultSkipPerTaskTests holds the default value on creation for the "skip_per_task_tests" field.
	DefaultSkipPerTaskTests bool
	// DefaultCreateDeploymentTask holds the default value on creation for the "create_deployment_task" field.
	DefaultCreateDeploymentTask bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending          Status = "pending"
	StatusInProgress       Status = "in_progress"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusCompleted        Status = "completed"
	StatusFailed           Status = "failed"
	StatusCancelled        Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusAwaitingApproval, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("mission: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Mission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequest orders the results by the request field.
func ByRequest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequest, opts...).ToFunc()
}

// ByInteractionMode orders the results by the interaction_mode field.
func ByInteractionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractionMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExecutionStrategy orders the results by the execution_strategy field.
func ByExecutionStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionStrategy, opts...).ToFunc()
}

// ByProjectPath orders the results by the project_path field.
func ByProjectPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectPath, opts...).ToFunc()
}

// ByGitRemoteURL orders the results by the git_remote_url field.
func ByGitRemoteURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGitRemoteURL, opts...).ToFunc()
}

// ByReasoningLevel orders the results by the reasoning_level field.
func ByReasoningLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningLevel, opts...).ToFunc()
}

// BySkipPerTaskTests orders the results by the skip_per_task_tests field.
func BySkipPerTaskTests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipPerTaskTests, opts...).ToFunc()
}

// ByCreateDeploymentTask orders the results by the create_deployment_task field.
func ByCreateDeploymentTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateDeploymentTask, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
