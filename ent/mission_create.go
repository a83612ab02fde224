// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/worldmind/worldmind/ent/checkpoint"
	"github.com/worldmind/worldmind/ent/mission"
)

// MissionCreate is the builder for creating a Mission entity.
type MissionCreate struct {
	config
	mutation *MissionMutation
	hooks    []Hook
}

// SetRequest sets the "request" field.
func (_c *MissionCreate) SetRequest(v string) *MissionCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetInteractionMode sets the "interaction_mode" field.
func (_c *MissionCreate) SetInteractionMode(v string) *MissionCreate {
	_c.mutation.SetInteractionMode(v)
	return _c
}

// SetNillableInteractionMode sets the "interaction_mode" field if the given value is not nil.
func (_c *MissionCreate) SetNillableInteractionMode(v *string) *MissionCreate {
	if v != nil {
		_c.SetInteractionMode(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MissionCreate) SetStatus(v mission.Status) *MissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStatus(v *mission.Status) *MissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExecutionStrategy sets the "execution_strategy" field.
func (_c *MissionCreate) SetExecutionStrategy(v string) *MissionCreate {
	_c.mutation.SetExecutionStrategy(v)
	return _c
}

// SetNillableExecutionStrategy sets the "execution_strategy" field if the given value is not nil.
func (_c *MissionCreate) SetNillableExecutionStrategy(v *string) *MissionCreate {
	if v != nil {
		_c.SetExecutionStrategy(*v)
	}
	return _c
}

// SetProjectPath sets the "project_path" field.
func (_c *MissionCreate) SetProjectPath(v string) *MissionCreate {
	_c.mutation.SetProjectPath(v)
	return _c
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_c *MissionCreate) SetNillableProjectPath(v *string) *MissionCreate {
	if v != nil {
		_c.SetProjectPath(*v)
	}
	return _c
}

// SetGitRemoteURL sets the "git_remote_url" field.
func (_c *MissionCreate) SetGitRemoteURL(v string) *MissionCreate {
	_c.mutation.SetGitRemoteURL(v)
	return _c
}

// SetNillableGitRemoteURL sets the "git_remote_url" field if the given value is not nil.
func (_c *MissionCreate) SetNillableGitRemoteURL(v *string) *MissionCreate {
	if v != nil {
		_c.SetGitRemoteURL(*v)
	}
	return _c
}

// SetReasoningLevel sets the "reasoning_level" field.
func (_c *MissionCreate) SetReasoningLevel(v string) *MissionCreate {
	_c.mutation.SetReasoningLevel(v)
	return _c
}

// SetNillableReasoningLevel sets the "reasoning_level" field if the given value is not nil.
func (_c *MissionCreate) SetNillableReasoningLevel(v *string) *MissionCreate {
	if v != nil {
		_c.SetReasoningLevel(*v)
	}
	return _c
}

// SetSkipPerTaskTests sets the "skip_per_task_tests" field.
func (_c *MissionCreate) SetSkipPerTaskTests(v bool) *MissionCreate {
	_c.mutation.SetSkipPerTaskTests(v)
	return _c
}

// SetNillableSkipPerTaskTests sets the "skip_per_task_tests" field if the given value is not nil.
func (_c *MissionCreate) SetNillableSkipPerTaskTests(v *bool) *MissionCreate {
	if v != nil {
		_c.SetSkipPerTaskTests(*v)
	}
	return _c
}

// SetCreateDeploymentTask sets the "create_deployment_task" field.
func (_c *MissionCreate) SetCreateDeploymentTask(v bool) *MissionCreate {
	_c.mutation.SetCreateDeploymentTask(v)
	return _c
}

// SetNillableCreateDeploymentTask sets the "create_deployment_task" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCreateDeploymentTask(v *bool) *MissionCreate {
	if v != nil {
		_c.SetCreateDeploymentTask(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MissionCreate) SetErrorMessage(v string) *MissionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MissionCreate) SetNillableErrorMessage(v *string) *MissionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MissionCreate) SetCreatedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCreatedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *MissionCreate) SetStartedAt(v time.Time) *MissionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStartedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MissionCreate) SetCompletedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCompletedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *MissionCreate) SetPodID(v string) *MissionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *MissionCreate) SetNillablePodID(v *string) *MissionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *MissionCreate) SetLastInteractionAt(v time.Time) *MissionCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableLastInteractionAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MissionCreate) SetID(v string) *MissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *MissionCreate) AddCheckpointIDs(ids ...string) *MissionCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *MissionCreate) AddCheckpoints(v ...*Checkpoint) *MissionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_c *MissionCreate) Mutation() *MissionMutation {
	return _c.mutation
}

// Save creates the Mission in the database.
func (_c *MissionCreate) Save(ctx context.Context) (*Mission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissionCreate) SaveX(ctx context.Context) *Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MissionCreate) defaults() {
	if _, ok := _c.mutation.InteractionMode(); !ok {
		v := mission.DefaultInteractionMode
		_c.mutation.SetInteractionMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := mission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SkipPerTaskTests(); !ok {
		v := mission.DefaultSkipPerTaskTests
		_c.mutation.SetSkipPerTaskTests(v)
	}
	if _, ok := _c.mutation.CreateDeploymentTask(); !ok {
		v := mission.DefaultCreateDeploymentTask
		_c.mutation.SetCreateDeploymentTask(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissionCreate) check() error {
	if _, ok := _c.mutation.Request(); !ok {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required field "Mission.request"`)}
	}
	if _, ok := _c.mutation.InteractionMode(); !ok {
		return &ValidationError{Name: "interaction_mode", err: errors.New(`ent: missing required field "Mission.interaction_mode"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Mission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkipPerTaskTests(); !ok {
		return &ValidationError{Name: "skip_per_task_tests", err: errors.New(`ent: missing required field "Mission.skip_per_task_tests"`)}
	}
	if _, ok := _c.mutation.CreateDeploymentTask(); !ok {
		return &ValidationError{Name: "create_deployment_task", err: errors.New(`ent: missing required field "Mission.create_deployment_task"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mission.created_at"`)}
	}
	return nil
}

func (_c *MissionCreate) sqlSave(ctx context.Context) (*Mission, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Mission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MissionCreate) createSpec() (*Mission, *sqlgraph.CreateSpec) {
	var (
		_node = &Mission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mission.Table, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(mission.FieldRequest, field.TypeString, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.InteractionMode(); ok {
		_spec.SetField(mission.FieldInteractionMode, field.TypeString, value)
		_node.InteractionMode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExecutionStrategy(); ok {
		_spec.SetField(mission.FieldExecutionStrategy, field.TypeString, value)
		_node.ExecutionStrategy = value
	}
	if value, ok := _c.mutation.ProjectPath(); ok {
		_spec.SetField(mission.FieldProjectPath, field.TypeString, value)
		_node.ProjectPath = &value
	}
	if value, ok := _c.mutation.GitRemoteURL(); ok {
		_spec.SetField(mission.FieldGitRemoteURL, field.TypeString, value)
		_node.GitRemoteURL = &value
	}
	if value, ok := _c.mutation.ReasoningLevel(); ok {
		_spec.SetField(mission.FieldReasoningLevel, field.TypeString, value)
		_node.ReasoningLevel = &value
	}
	if value, ok := _c.mutation.SkipPerTaskTests(); ok {
		_spec.SetField(mission.FieldSkipPerTaskTests, field.TypeBool, value)
		_node.SkipPerTaskTests = value
	}
	if value, ok := _c.mutation.CreateDeploymentTask(); ok {
		_spec.SetField(mission.FieldCreateDeploymentTask, field.TypeBool, value)
		_node.CreateDeploymentTask = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(mission.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(mission.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(mission.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MissionCreateBulk is the builder for creating many Mission entities in bulk.
type MissionCreateBulk struct {
	config
	err      error
	builders []*MissionCreate
}

// Save creates the Mission entities in the database.
func (_c *MissionCreateBulk) Save(ctx context.Context) ([]*Mission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MissionCreateBulk) SaveX(ctx context.Context) []*Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
