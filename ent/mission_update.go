// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/worldmind/worldmind/ent/checkpoint"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/ent/predicate"
)

// MissionUpdate is the builder for updating Mission entities.
type MissionUpdate struct {
	config
	hooks    []Hook
	mutation *MissionMutation
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdate) Where(ps ...predicate.Mission) *MissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequest sets the "request" field.
func (_u *MissionUpdate) SetRequest(v string) *MissionUpdate {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableRequest(v *string) *MissionUpdate {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetInteractionMode sets the "interaction_mode" field.
func (_u *MissionUpdate) SetInteractionMode(v string) *MissionUpdate {
	_u.mutation.SetInteractionMode(v)
	return _u
}

// SetNillableInteractionMode sets the "interaction_mode" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableInteractionMode(v *string) *MissionUpdate {
	if v != nil {
		_u.SetInteractionMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdate) SetStatus(v mission.Status) *MissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStatus(v *mission.Status) *MissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutionStrategy sets the "execution_strategy" field.
func (_u *MissionUpdate) SetExecutionStrategy(v string) *MissionUpdate {
	_u.mutation.SetExecutionStrategy(v)
	return _u
}

// SetNillableExecutionStrategy sets the "execution_strategy" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableExecutionStrategy(v *string) *MissionUpdate {
	if v != nil {
		_u.SetExecutionStrategy(*v)
	}
	return _u
}

// ClearExecutionStrategy clears the value of the "execution_strategy" field.
func (_u *MissionUpdate) ClearExecutionStrategy() *MissionUpdate {
	_u.mutation.ClearExecutionStrategy()
	return _u
}

// SetProjectPath sets the "project_path" field.
func (_u *MissionUpdate) SetProjectPath(v string) *MissionUpdate {
	_u.mutation.SetProjectPath(v)
	return _u
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableProjectPath(v *string) *MissionUpdate {
	if v != nil {
		_u.SetProjectPath(*v)
	}
	return _u
}

// ClearProjectPath clears the value of the "project_path" field.
func (_u *MissionUpdate) ClearProjectPath() *MissionUpdate {
	_u.mutation.ClearProjectPath()
	return _u
}

// SetGitRemoteURL sets the "git_remote_url" field.
func (_u *MissionUpdate) SetGitRemoteURL(v string) *MissionUpdate {
	_u.mutation.SetGitRemoteURL(v)
	return _u
}

// SetNillableGitRemoteURL sets the "git_remote_url" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableGitRemoteURL(v *string) *MissionUpdate {
	if v != nil {
		_u.SetGitRemoteURL(*v)
	}
	return _u
}

// ClearGitRemoteURL clears the value of the "git_remote_url" field.
func (_u *MissionUpdate) ClearGitRemoteURL() *MissionUpdate {
	_u.mutation.ClearGitRemoteURL()
	return _u
}

// SetReasoningLevel sets the "reasoning_level" field.
func (_u *MissionUpdate) SetReasoningLevel(v string) *MissionUpdate {
	_u.mutation.SetReasoningLevel(v)
	return _u
}

// SetNillableReasoningLevel sets the "reasoning_level" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableReasoningLevel(v *string) *MissionUpdate {
	if v != nil {
		_u.SetReasoningLevel(*v)
	}
	return _u
}

// ClearReasoningLevel clears the value of the "reasoning_level" field.
func (_u *MissionUpdate) ClearReasoningLevel() *MissionUpdate {
	_u.mutation.ClearReasoningLevel()
	return _u
}

// SetSkipPerTaskTests sets the "skip_per_task_tests" field.
func (_u *MissionUpdate) SetSkipPerTaskTests(v bool) *MissionUpdate {
	_u.mutation.SetSkipPerTaskTests(v)
	return _u
}

// SetNillableSkipPerTaskTests sets the "skip_per_task_tests" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableSkipPerTaskTests(v *bool) *MissionUpdate {
	if v != nil {
		_u.SetSkipPerTaskTests(*v)
	}
	return _u
}

// SetCreateDeploymentTask sets the "create_deployment_task" field.
func (_u *MissionUpdate) SetCreateDeploymentTask(v bool) *MissionUpdate {
	_u.mutation.SetCreateDeploymentTask(v)
	return _u
}

// SetNillableCreateDeploymentTask sets the "create_deployment_task" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCreateDeploymentTask(v *bool) *MissionUpdate {
	if v != nil {
		_u.SetCreateDeploymentTask(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MissionUpdate) SetErrorMessage(v string) *MissionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableErrorMessage(v *string) *MissionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MissionUpdate) ClearErrorMessage() *MissionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MissionUpdate) SetCreatedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCreatedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionUpdate) SetStartedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStartedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionUpdate) ClearStartedAt() *MissionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdate) SetCompletedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCompletedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdate) ClearCompletedAt() *MissionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *MissionUpdate) SetPodID(v string) *MissionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *MissionUpdate) SetNillablePodID(v *string) *MissionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *MissionUpdate) ClearPodID() *MissionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *MissionUpdate) SetLastInteractionAt(v time.Time) *MissionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableLastInteractionAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *MissionUpdate) ClearLastInteractionAt() *MissionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *MissionUpdate) AddCheckpointIDs(ids ...string) *MissionUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *MissionUpdate) AddCheckpoints(v ...*Checkpoint) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdate) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *MissionUpdate) ClearCheckpoints() *MissionUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *MissionUpdate) RemoveCheckpointIDs(ids ...string) *MissionUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *MissionUpdate) RemoveCheckpoints(v ...*Checkpoint) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(mission.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.InteractionMode(); ok {
		_spec.SetField(mission.FieldInteractionMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionStrategy(); ok {
		_spec.SetField(mission.FieldExecutionStrategy, field.TypeString, value)
	}
	if _u.mutation.ExecutionStrategyCleared() {
		_spec.ClearField(mission.FieldExecutionStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectPath(); ok {
		_spec.SetField(mission.FieldProjectPath, field.TypeString, value)
	}
	if _u.mutation.ProjectPathCleared() {
		_spec.ClearField(mission.FieldProjectPath, field.TypeString)
	}
	if value, ok := _u.mutation.GitRemoteURL(); ok {
		_spec.SetField(mission.FieldGitRemoteURL, field.TypeString, value)
	}
	if _u.mutation.GitRemoteURLCleared() {
		_spec.ClearField(mission.FieldGitRemoteURL, field.TypeString)
	}
	if value, ok := _u.mutation.ReasoningLevel(); ok {
		_spec.SetField(mission.FieldReasoningLevel, field.TypeString, value)
	}
	if _u.mutation.ReasoningLevelCleared() {
		_spec.ClearField(mission.FieldReasoningLevel, field.TypeString)
	}
	if value, ok := _u.mutation.SkipPerTaskTests(); ok {
		_spec.SetField(mission.FieldSkipPerTaskTests, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreateDeploymentTask(); ok {
		_spec.SetField(mission.FieldCreateDeploymentTask, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(mission.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(mission.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(mission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(mission.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(mission.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(mission.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(mission.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.CheckpointsTable,
			Columns: []string{mission.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.CheckpointsTable,
			Columns: []string{mission.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.CheckpointsTable,
			Columns: []string{mission.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionUpdateOne is the builder for updating a single Mission entity.
type MissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionMutation
}

// SetRequest sets the "request" field.
func (_u *MissionUpdateOne) SetRequest(v string) *MissionUpdateOne {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableRequest(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetInteractionMode sets the "interaction_mode" field.
func (_u *MissionUpdateOne) SetInteractionMode(v string) *MissionUpdateOne {
	_u.mutation.SetInteractionMode(v)
	return _u
}

// SetNillableInteractionMode sets the "interaction_mode" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableInteractionMode(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetInteractionMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdateOne) SetStatus(v mission.Status) *MissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStatus(v *mission.Status) *MissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutionStrategy sets the "execution_strategy" field.
func (_u *MissionUpdateOne) SetExecutionStrategy(v string) *MissionUpdateOne {
	_u.mutation.SetExecutionStrategy(v)
	return _u
}

// SetNillableExecutionStrategy sets the "execution_strategy" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableExecutionStrategy(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetExecutionStrategy(*v)
	}
	return _u
}

// ClearExecutionStrategy clears the value of the "execution_strategy" field.
func (_u *MissionUpdateOne) ClearExecutionStrategy() *MissionUpdateOne {
	_u.mutation.ClearExecutionStrategy()
	return _u
}

// SetProjectPath sets the "project_path" field.
func (_u *MissionUpdateOne) SetProjectPath(v string) *MissionUpdateOne {
	_u.mutation.SetProjectPath(v)
	return _u
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableProjectPath(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetProjectPath(*v)
	}
	return _u
}

// ClearProjectPath clears the value of the "project_path" field.
func (_u *MissionUpdateOne) ClearProjectPath() *MissionUpdateOne {
	_u.mutation.ClearProjectPath()
	return _u
}

// SetGitRemoteURL sets the "git_remote_url" field.
func (_u *MissionUpdateOne) SetGitRemoteURL(v string) *MissionUpdateOne {
	_u.mutation.SetGitRemoteURL(v)
	return _u
}

// SetNillableGitRemoteURL sets the "git_remote_url" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableGitRemoteURL(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetGitRemoteURL(*v)
	}
	return _u
}

// ClearGitRemoteURL clears the value of the "git_remote_url" field.
func (_u *MissionUpdateOne) ClearGitRemoteURL() *MissionUpdateOne {
	_u.mutation.ClearGitRemoteURL()
	return _u
}

// SetReasoningLevel sets the "reasoning_level" field.
func (_u *MissionUpdateOne) SetReasoningLevel(v string) *MissionUpdateOne {
	_u.mutation.SetReasoningLevel(v)
	return _u
}

// SetNillableReasoningLevel sets the "reasoning_level" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableReasoningLevel(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetReasoningLevel(*v)
	}
	return _u
}

// ClearReasoningLevel clears the value of the "reasoning_level" field.
func (_u *MissionUpdateOne) ClearReasoningLevel() *MissionUpdateOne {
	_u.mutation.ClearReasoningLevel()
	return _u
}

// SetSkipPerTaskTests sets the "skip_per_task_tests" field.
func (_u *MissionUpdateOne) SetSkipPerTaskTests(v bool) *MissionUpdateOne {
	_u.mutation.SetSkipPerTaskTests(v)
	return _u
}

// SetNillableSkipPerTaskTests sets the "skip_per_task_tests" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableSkipPerTaskTests(v *bool) *MissionUpdateOne {
	if v != nil {
		_u.SetSkipPerTaskTests(*v)
	}
	return _u
}

// SetCreateDeploymentTask sets the "create_deployment_task" field.
func (_u *MissionUpdateOne) SetCreateDeploymentTask(v bool) *MissionUpdateOne {
	_u.mutation.SetCreateDeploymentTask(v)
	return _u
}

// SetNillableCreateDeploymentTask sets the "create_deployment_task" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCreateDeploymentTask(v *bool) *MissionUpdateOne {
	if v != nil {
		_u.SetCreateDeploymentTask(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MissionUpdateOne) SetErrorMessage(v string) *MissionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableErrorMessage(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MissionUpdateOne) ClearErrorMessage() *MissionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MissionUpdateOne) SetCreatedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCreatedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionUpdateOne) SetStartedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStartedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionUpdateOne) ClearStartedAt() *MissionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdateOne) SetCompletedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCompletedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdateOne) ClearCompletedAt() *MissionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *MissionUpdateOne) SetPodID(v string) *MissionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillablePodID(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *MissionUpdateOne) ClearPodID() *MissionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *MissionUpdateOne) SetLastInteractionAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *MissionUpdateOne) ClearLastInteractionAt() *MissionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *MissionUpdateOne) AddCheckpointIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *MissionUpdateOne) AddCheckpoints(v ...*Checkpoint) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdateOne) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *MissionUpdateOne) ClearCheckpoints() *MissionUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *MissionUpdateOne) RemoveCheckpointIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *MissionUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdateOne) Where(ps ...predicate.Mission) *MissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionUpdateOne) Select(field string, fields ...string) *MissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mission entity.
func (_u *MissionUpdateOne) Save(ctx context.Context) (*Mission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdateOne) SaveX(ctx context.Context) *Mission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdateOne) sqlSave(ctx context.Context) (_node *Mission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mission.FieldID)
		for _, f := range fields {
			if !mission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(mission.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.InteractionMode(); ok {
		_spec.SetField(mission.FieldInteractionMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionStrategy(); ok {
		_spec.SetField(mission.FieldExecutionStrategy, field.TypeString, value)
	}
	if _u.mutation.ExecutionStrategyCleared() {
		_spec.ClearField(mission.FieldExecutionStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectPath(); ok {
		_spec.SetField(mission.FieldProjectPath, field.TypeString, value)
	}
	if _u.mutation.ProjectPathCleared() {
		_spec.ClearField(mission.FieldProjectPath, field.TypeString)
	}
	if value, ok := _u.mutation.GitRemoteURL(); ok {
		_spec.SetField(mission.FieldGitRemoteURL, field.TypeString, value)
	}
	if _u.mutation.GitRemoteURLCleared() {
		_spec.ClearField(mission.FieldGitRemoteURL, field.TypeString)
	}
	if value, ok := _u.mutation.ReasoningLevel(); ok {
		_spec.SetField(mission.FieldReasoningLevel, field.TypeString, value)
	}
	if _u.mutation.ReasoningLevelCleared() {
		_spec.ClearField(mission.FieldReasoningLevel, field.TypeString)
	}
	if value, ok := _u.mutation.SkipPerTaskTests(); ok {
		_spec.SetField(mission.FieldSkipPerTaskTests, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreateDeploymentTask(); ok {
		_spec.SetField(mission.FieldCreateDeploymentTask, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(mission.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(mission.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(mission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(mission.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(mission.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(mission.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(mission.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.CheckpointsTable,
			Columns: []string{mission.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.CheckpointsTable,
			Columns: []string{mission.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.CheckpointsTable,
			Columns: []string{mission.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
