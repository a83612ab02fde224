// Code generated by ent, DO NOT EDIT.

package mission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/worldmind/worldmind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldID, id))
}

// Request applies equality check predicate on the "request" field. It's identical to RequestEQ.
func Request(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldRequest, v))
}

// InteractionMode applies equality check predicate on the "interaction_mode" field. It's identical to InteractionModeEQ.
func InteractionMode(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldInteractionMode, v))
}

// ExecutionStrategy applies equality check predicate on the "execution_strategy" field. It's identical to ExecutionStrategyEQ.
func ExecutionStrategy(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldExecutionStrategy, v))
}

// ProjectPath applies equality check predicate on the "project_path" field. It's identical to ProjectPathEQ.
func ProjectPath(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldProjectPath, v))
}

// GitRemoteURL applies equality check predicate on the "git_remote_url" field. It's identical to GitRemoteURLEQ.
func GitRemoteURL(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldGitRemoteURL, v))
}

// ReasoningLevel applies equality check predicate on the "reasoning_level" field. It's identical to ReasoningLevelEQ.
func ReasoningLevel(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldReasoningLevel, v))
}

// SkipPerTaskTests applies equality check predicate on the "skip_per_task_tests" field. It's identical to SkipPerTaskTestsEQ.
func SkipPerTaskTests(v bool) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSkipPerTaskTests, v))
}

// CreateDeploymentTask applies equality check predicate on the "create_deployment_task" field. It's identical to CreateDeploymentTaskEQ.
func CreateDeploymentTask(v bool) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreateDeploymentTask, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCompletedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldLastInteractionAt, v))
}

// RequestEQ applies the EQ predicate on the "request" field.
func RequestEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldRequest, v))
}

// RequestNEQ applies the NEQ predicate on the "request" field.
func RequestNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldRequest, v))
}

// RequestIn applies the In predicate on the "request" field.
func RequestIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldRequest, vs...))
}

// RequestNotIn applies the NotIn predicate on the "request" field.
func RequestNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldRequest, vs...))
}

// RequestGT applies the GT predicate on the "request" field.
func RequestGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldRequest, v))
}

// RequestGTE applies the GTE predicate on the "request" field.
func RequestGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldRequest, v))
}

// RequestLT applies the LT predicate on the "request" field.
func RequestLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldRequest, v))
}

// RequestLTE applies the LTE predicate on the "request" field.
func RequestLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldRequest, v))
}

// RequestContains applies the Contains predicate on the "request" field.
func RequestContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldRequest, v))
}

// RequestHasPrefix applies the HasPrefix predicate on the "request" field.
func RequestHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldRequest, v))
}

// RequestHasSuffix applies the HasSuffix predicate on the "request" field.
func RequestHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldRequest, v))
}

// RequestEqualFold applies the EqualFold predicate on the "request" field.
func RequestEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldRequest, v))
}

// RequestContainsFold applies the ContainsFold predicate on the "request" field.
func RequestContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldRequest, v))
}

// InteractionModeEQ applies the EQ predicate on the "interaction_mode" field.
func InteractionModeEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldInteractionMode, v))
}

// InteractionModeNEQ applies the NEQ predicate on the "interaction_mode" field.
func InteractionModeNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldInteractionMode, v))
}

// InteractionModeIn applies the In predicate on the "interaction_mode" field.
func InteractionModeIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldInteractionMode, vs...))
}

// InteractionModeNotIn applies the NotIn predicate on the "interaction_mode" field.
func InteractionModeNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldInteractionMode, vs...))
}

// InteractionModeGT applies the GT predicate on the "interaction_mode" field.
func InteractionModeGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldInteractionMode, v))
}

// InteractionModeGTE applies the GTE predicate on the "interaction_mode" field.
func InteractionModeGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldInteractionMode, v))
}

// InteractionModeLT applies the LT predicate on the "interaction_mode" field.
func InteractionModeLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldInteractionMode, v))
}

// InteractionModeLTE applies the LTE predicate on the "interaction_mode" field.
func InteractionModeLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldInteractionMode, v))
}

// InteractionModeContains applies the Contains predicate on the "interaction_mode" field.
func InteractionModeContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldInteractionMode, v))
}

// InteractionModeHasPrefix applies the HasPrefix predicate on the "interaction_mode" field.
func InteractionModeHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldInteractionMode, v))
}

// InteractionModeHasSuffix applies the HasSuffix predicate on the "interaction_mode" field.
func InteractionModeHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldInteractionMode, v))
}

// InteractionModeEqualFold applies the EqualFold predicate on the "interaction_mode" field.
func InteractionModeEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldInteractionMode, v))
}

// InteractionModeContainsFold applies the ContainsFold predicate on the "interaction_mode" field.
func InteractionModeContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldInteractionMode, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldStatus, vs...))
}

// ExecutionStrategyEQ applies the EQ predicate on the "execution_strategy" field.
func ExecutionStrategyEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldExecutionStrategy, v))
}

// ExecutionStrategyNEQ applies the NEQ predicate on the "execution_strategy" field.
func ExecutionStrategyNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldExecutionStrategy, v))
}

// ExecutionStrategyIn applies the In predicate on the "execution_strategy" field.
func ExecutionStrategyIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldExecutionStrategy, vs...))
}

// ExecutionStrategyNotIn applies the NotIn predicate on the "execution_strategy" field.
func ExecutionStrategyNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldExecutionStrategy, vs...))
}

// ExecutionStrategyGT applies the GT predicate on the "execution_strategy" field.
func ExecutionStrategyGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldExecutionStrategy, v))
}

// ExecutionStrategyGTE applies the GTE predicate on the "execution_strategy" field.
func ExecutionStrategyGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldExecutionStrategy, v))
}

// ExecutionStrategyLT applies the LT predicate on the "execution_strategy" field.
func ExecutionStrategyLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldExecutionStrategy, v))
}

// ExecutionStrategyLTE applies the LTE predicate on the "execution_strategy" field.
func ExecutionStrategyLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldExecutionStrategy, v))
}

// ExecutionStrategyContains applies the Contains predicate on the "execution_strategy" field.
func ExecutionStrategyContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldExecutionStrategy, v))
}

// ExecutionStrategyHasPrefix applies the HasPrefix predicate on the "execution_strategy" field.
func ExecutionStrategyHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldExecutionStrategy, v))
}

// ExecutionStrategyHasSuffix applies the HasSuffix predicate on the "execution_strategy" field.
func ExecutionStrategyHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldExecutionStrategy, v))
}

// ExecutionStrategyIsNil applies the IsNil predicate on the "execution_strategy" field.
func ExecutionStrategyIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldExecutionStrategy))
}

// ExecutionStrategyNotNil applies the NotNil predicate on the "execution_strategy" field.
func ExecutionStrategyNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldExecutionStrategy))
}

// ExecutionStrategyEqualFold applies the EqualFold predicate on the "execution_strategy" field.
func ExecutionStrategyEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldExecutionStrategy, v))
}

// ExecutionStrategyContainsFold applies the ContainsFold predicate on the "execution_strategy" field.
func ExecutionStrategyContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldExecutionStrategy, v))
}

// ProjectPathEQ applies the EQ predicate on the "project_path" field.
func ProjectPathEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldProjectPath, v))
}

// ProjectPathNEQ applies the NEQ predicate on the "project_path" field.
func ProjectPathNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldProjectPath, v))
}

// ProjectPathIn applies the In predicate on the "project_path" field.
func ProjectPathIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldProjectPath, vs...))
}

// ProjectPathNotIn applies the NotIn predicate on the "project_path" field.
func ProjectPathNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldProjectPath, vs...))
}

// ProjectPathGT applies the GT predicate on the "project_path" field.
func ProjectPathGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldProjectPath, v))
}

// ProjectPathGTE applies the GTE predicate on the "project_path" field.
func ProjectPathGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldProjectPath, v))
}

// ProjectPathLT applies the LT predicate on the "project_path" field.
func ProjectPathLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldProjectPath, v))
}

// ProjectPathLTE applies the LTE predicate on the "project_path" field.
func ProjectPathLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldProjectPath, v))
}

// ProjectPathContains applies the Contains predicate on the "project_path" field.
func ProjectPathContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldProjectPath, v))
}

// ProjectPathHasPrefix applies the HasPrefix predicate on the "project_path" field.
func ProjectPathHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldProjectPath, v))
}

// ProjectPathHasSuffix applies the HasSuffix predicate on the "project_path" field.
func ProjectPathHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldProjectPath, v))
}

// ProjectPathIsNil applies the IsNil predicate on the "project_path" field.
func ProjectPathIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldProjectPath))
}

// ProjectPathNotNil applies the NotNil predicate on the "project_path" field.
func ProjectPathNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldProjectPath))
}

// ProjectPathEqualFold applies the EqualFold predicate on the "project_path" field.
func ProjectPathEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldProjectPath, v))
}

// ProjectPathContainsFold applies the ContainsFold predicate on the "project_path" field.
func ProjectPathContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldProjectPath, v))
}

// GitRemoteURLEQ applies the EQ predicate on the "git_remote_url" field.
func GitRemoteURLEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldGitRemoteURL, v))
}

// GitRemoteURLNEQ applies the NEQ predicate on the "git_remote_url" field.
func GitRemoteURLNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldGitRemoteURL, v))
}

// GitRemoteURLIn applies the In predicate on the "git_remote_url" field.
func GitRemoteURLIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldGitRemoteURL, vs...))
}

// GitRemoteURLNotIn applies the NotIn predicate on the "git_remote_url" field.
func GitRemoteURLNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldGitRemoteURL, vs...))
}

// GitRemoteURLGT applies the GT predicate on the "git_remote_url" field.
func GitRemoteURLGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldGitRemoteURL, v))
}

// GitRemoteURLGTE applies the GTE predicate on the "git_remote_url" field.
func GitRemoteURLGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldGitRemoteURL, v))
}

// GitRemoteURLLT applies the LT predicate on the "git_remote_url" field.
func GitRemoteURLLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldGitRemoteURL, v))
}

// GitRemoteURLLTE applies the LTE predicate on the "git_remote_url" field.
func GitRemoteURLLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldGitRemoteURL, v))
}

// GitRemoteURLContains applies the Contains predicate on the "git_remote_url" field.
func GitRemoteURLContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldGitRemoteURL, v))
}

// GitRemoteURLHasPrefix applies the HasPrefix predicate on the "git_remote_url" field.
func GitRemoteURLHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldGitRemoteURL, v))
}

// GitRemoteURLHasSuffix applies the HasSuffix predicate on the "git_remote_url" field.
func GitRemoteURLHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldGitRemoteURL, v))
}

// GitRemoteURLIsNil applies the IsNil predicate on the "git_remote_url" field.
func GitRemoteURLIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldGitRemoteURL))
}

// GitRemoteURLNotNil applies the NotNil predicate on the "git_remote_url" field.
func GitRemoteURLNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldGitRemoteURL))
}

// GitRemoteURLEqualFold applies the EqualFold predicate on the "git_remote_url" field.
func GitRemoteURLEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldGitRemoteURL, v))
}

// GitRemoteURLContainsFold applies the ContainsFold predicate on the "git_remote_url" field.
func GitRemoteURLContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldGitRemoteURL, v))
}

// ReasoningLevelEQ applies the EQ predicate on the "reasoning_level" field.
func ReasoningLevelEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldReasoningLevel, v))
}

// ReasoningLevelNEQ applies the NEQ predicate on the "reasoning_level" field.
func ReasoningLevelNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldReasoningLevel, v))
}

// ReasoningLevelIn applies the In predicate on the "reasoning_level" field.
func ReasoningLevelIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldReasoningLevel, vs...))
}

// ReasoningLevelNotIn applies the NotIn predicate on the "reasoning_level" field.
func ReasoningLevelNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldReasoningLevel, vs...))
}

// ReasoningLevelGT applies the GT predicate on the "reasoning_level" field.
func ReasoningLevelGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldReasoningLevel, v))
}

// ReasoningLevelGTE applies the GTE predicate on the "reasoning_level" field.
func ReasoningLevelGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldReasoningLevel, v))
}

// ReasoningLevelLT applies the LT predicate on the "reasoning_level" field.
func ReasoningLevelLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldReasoningLevel, v))
}

// ReasoningLevelLTE applies the LTE predicate on the "reasoning_level" field.
func ReasoningLevelLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldReasoningLevel, v))
}

// ReasoningLevelContains applies the Contains predicate on the "reasoning_level" field.
func ReasoningLevelContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldReasoningLevel, v))
}

// ReasoningLevelHasPrefix applies the HasPrefix predicate on the "reasoning_level" field.
func ReasoningLevelHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldReasoningLevel, v))
}

// ReasoningLevelHasSuffix applies the HasSuffix predicate on the "reasoning_level" field.
func ReasoningLevelHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldReasoningLevel, v))
}

// ReasoningLevelIsNil applies the IsNil predicate on the "reasoning_level" field.
func ReasoningLevelIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldReasoningLevel))
}

// ReasoningLevelNotNil applies the NotNil predicate on the "reasoning_level" field.
func ReasoningLevelNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldReasoningLevel))
}

// ReasoningLevelEqualFold applies the EqualFold predicate on the "reasoning_level" field.
func ReasoningLevelEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldReasoningLevel, v))
}

// ReasoningLevelContainsFold applies the ContainsFold predicate on the "reasoning_level" field.
func ReasoningLevelContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldReasoningLevel, v))
}

// SkipPerTaskTestsEQ applies the EQ predicate on the "skip_per_task_tests" field.
func SkipPerTaskTestsEQ(v bool) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSkipPerTaskTests, v))
}

// SkipPerTaskTestsNEQ applies the NEQ predicate on the "skip_per_task_tests" field.
func SkipPerTaskTestsNEQ(v bool) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldSkipPerTaskTests, v))
}

// CreateDeploymentTaskEQ applies the EQ predicate on the "create_deployment_task" field.
func CreateDeploymentTaskEQ(v bool) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreateDeploymentTask, v))
}

// CreateDeploymentTaskNEQ applies the NEQ predicate on the "create_deployment_task" field.
func CreateDeploymentTaskNEQ(v bool) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCreateDeploymentTask, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldCompletedAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldLastInteractionAt))
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.NotPredicates(p))
}
