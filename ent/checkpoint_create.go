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

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
}

// SetThreadID sets the "thread_id" field.
func (_c *CheckpointCreate) SetThreadID(v string) *CheckpointCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *CheckpointCreate) SetNodeID(v string) *CheckpointCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNextNodeID sets the "next_node_id" field.
func (_c *CheckpointCreate) SetNextNodeID(v string) *CheckpointCreate {
	_c.mutation.SetNextNodeID(v)
	return _c
}

// SetNillableNextNodeID sets the "next_node_id" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableNextNodeID(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetNextNodeID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *CheckpointCreate) SetState(v string) *CheckpointCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckpointCreate) SetCreatedAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableCreatedAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckpointCreate) SetID(v string) *CheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMissionID sets the "mission" edge to the Mission entity by ID.
func (_c *CheckpointCreate) SetMissionID(id string) *CheckpointCreate {
	_c.mutation.SetMissionID(id)
	return _c
}

// SetMission sets the "mission" edge to the Mission entity.
func (_c *CheckpointCreate) SetMission(v *Mission) *CheckpointCreate {
	return _c.SetMissionID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "Checkpoint.thread_id"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "Checkpoint.node_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Checkpoint.state"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Checkpoint.created_at"`)}
	}
	if len(_c.mutation.MissionIDs()) == 0 {
		return &ValidationError{Name: "mission", err: errors.New(`ent: missing required edge "Checkpoint.mission"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
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
			return nil, fmt.Errorf("unexpected Checkpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(checkpoint.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.NextNodeID(); ok {
		_spec.SetField(checkpoint.FieldNextNodeID, field.TypeString, value)
		_node.NextNodeID = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MissionIDs(); len(nodes) > 0 {
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
		_node.ThreadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
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
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
