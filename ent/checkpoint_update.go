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

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *CheckpointUpdate) SetThreadID(v string) *CheckpointUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableThreadID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *CheckpointUpdate) SetNodeID(v string) *CheckpointUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableNodeID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetNextNodeID sets the "next_node_id" field.
func (_u *CheckpointUpdate) SetNextNodeID(v string) *CheckpointUpdate {
	_u.mutation.SetNextNodeID(v)
	return _u
}

// SetNillableNextNodeID sets the "next_node_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableNextNodeID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetNextNodeID(*v)
	}
	return _u
}

// ClearNextNodeID clears the value of the "next_node_id" field.
func (_u *CheckpointUpdate) ClearNextNodeID() *CheckpointUpdate {
	_u.mutation.ClearNextNodeID()
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdate) SetState(v string) *CheckpointUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableState(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CheckpointUpdate) SetCreatedAt(v time.Time) *CheckpointUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableCreatedAt(v *time.Time) *CheckpointUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetMissionID sets the "mission" edge to the Mission entity by ID.
func (_u *CheckpointUpdate) SetMissionID(id string) *CheckpointUpdate {
	_u.mutation.SetMissionID(id)
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *CheckpointUpdate) SetMission(v *Mission) *CheckpointUpdate {
	return _u.SetMissionID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *CheckpointUpdate) ClearMission() *CheckpointUpdate {
	_u.mutation.ClearMission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.mission"`)
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(checkpoint.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextNodeID(); ok {
		_spec.SetField(checkpoint.FieldNextNodeID, field.TypeString, value)
	}
	if _u.mutation.NextNodeIDCleared() {
		_spec.ClearField(checkpoint.FieldNextNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.MissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.MissionTable,
			Columns: []string{checkpoint.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.MissionTable,
			Columns: []string{checkpoint.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetThreadID sets the "thread_id" field.
func (_u *CheckpointUpdateOne) SetThreadID(v string) *CheckpointUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableThreadID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *CheckpointUpdateOne) SetNodeID(v string) *CheckpointUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableNodeID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetNextNodeID sets the "next_node_id" field.
func (_u *CheckpointUpdateOne) SetNextNodeID(v string) *CheckpointUpdateOne {
	_u.mutation.SetNextNodeID(v)
	return _u
}

// SetNillableNextNodeID sets the "next_node_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableNextNodeID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetNextNodeID(*v)
	}
	return _u
}

// ClearNextNodeID clears the value of the "next_node_id" field.
func (_u *CheckpointUpdateOne) ClearNextNodeID() *CheckpointUpdateOne {
	_u.mutation.ClearNextNodeID()
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdateOne) SetState(v string) *CheckpointUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableState(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CheckpointUpdateOne) SetCreatedAt(v time.Time) *CheckpointUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableCreatedAt(v *time.Time) *CheckpointUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetMissionID sets the "mission" edge to the Mission entity by ID.
func (_u *CheckpointUpdateOne) SetMissionID(id string) *CheckpointUpdateOne {
	_u.mutation.SetMissionID(id)
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *CheckpointUpdateOne) SetMission(v *Mission) *CheckpointUpdateOne {
	return _u.SetMissionID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *CheckpointUpdateOne) ClearMission() *CheckpointUpdateOne {
	_u.mutation.ClearMission()
	return _u
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.mission"`)
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(checkpoint.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextNodeID(); ok {
		_spec.SetField(checkpoint.FieldNextNodeID, field.TypeString, value)
	}
	if _u.mutation.NextNodeIDCleared() {
		_spec.ClearField(checkpoint.FieldNextNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.MissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.MissionTable,
			Columns: []string{checkpoint.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.MissionTable,
			Columns: []string{checkpoint.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
