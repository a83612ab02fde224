// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/worldmind/worldmind/ent/checkpoint"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckpoint = "Checkpoint"
	TypeMission    = "Mission"
)

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op             Op
	typ            string
	id             *string
	node_id        *string
	next_node_id   *string
	state          *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	mission        *string
	clearedmission bool
	done           bool
	oldValue       func(context.Context) (*Checkpoint, error)
	predicates     []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *CheckpointMutation) SetThreadID(s string) {
	m.mission = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *CheckpointMutation) ThreadID() (r string, exists bool) {
	v := m.mission
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *CheckpointMutation) ResetThreadID() {
	m.mission = nil
}

// SetNodeID sets the "node_id" field.
func (m *CheckpointMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *CheckpointMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *CheckpointMutation) ResetNodeID() {
	m.node_id = nil
}

// SetNextNodeID sets the "next_node_id" field.
func (m *CheckpointMutation) SetNextNodeID(s string) {
	m.next_node_id = &s
}

// NextNodeID returns the value of the "next_node_id" field in the mutation.
func (m *CheckpointMutation) NextNodeID() (r string, exists bool) {
	v := m.next_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNextNodeID returns the old "next_node_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldNextNodeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextNodeID: %w", err)
	}
	return oldValue.NextNodeID, nil
}

// ClearNextNodeID clears the value of the "next_node_id" field.
func (m *CheckpointMutation) ClearNextNodeID() {
	m.next_node_id = nil
	m.clearedFields[checkpoint.FieldNextNodeID] = struct{}{}
}

// NextNodeIDCleared returns if the "next_node_id" field was cleared in this mutation.
func (m *CheckpointMutation) NextNodeIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldNextNodeID]
	return ok
}

// ResetNextNodeID resets all changes to the "next_node_id" field.
func (m *CheckpointMutation) ResetNextNodeID() {
	m.next_node_id = nil
	delete(m.clearedFields, checkpoint.FieldNextNodeID)
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetMissionID sets the "mission" edge to the Mission entity by id.
func (m *CheckpointMutation) SetMissionID(id string) {
	m.mission = &id
}

// ClearMission clears the "mission" edge to the Mission entity.
func (m *CheckpointMutation) ClearMission() {
	m.clearedmission = true
	m.clearedFields[checkpoint.FieldThreadID] = struct{}{}
}

// MissionCleared reports if the "mission" edge to the Mission entity was cleared.
func (m *CheckpointMutation) MissionCleared() bool {
	return m.clearedmission
}

// MissionID returns the "mission" edge ID in the mutation.
func (m *CheckpointMutation) MissionID() (id string, exists bool) {
	if m.mission != nil {
		return *m.mission, true
	}
	return
}

// MissionIDs returns the "mission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MissionID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) MissionIDs() (ids []string) {
	if id := m.mission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMission resets all changes to the "mission" edge.
func (m *CheckpointMutation) ResetMission() {
	m.mission = nil
	m.clearedmission = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.mission != nil {
		fields = append(fields, checkpoint.FieldThreadID)
	}
	if m.node_id != nil {
		fields = append(fields, checkpoint.FieldNodeID)
	}
	if m.next_node_id != nil {
		fields = append(fields, checkpoint.FieldNextNodeID)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldThreadID:
		return m.ThreadID()
	case checkpoint.FieldNodeID:
		return m.NodeID()
	case checkpoint.FieldNextNodeID:
		return m.NextNodeID()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldThreadID:
		return m.OldThreadID(ctx)
	case checkpoint.FieldNodeID:
		return m.OldNodeID(ctx)
	case checkpoint.FieldNextNodeID:
		return m.OldNextNodeID(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case checkpoint.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case checkpoint.FieldNextNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextNodeID(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldNextNodeID) {
		fields = append(fields, checkpoint.FieldNextNodeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldNextNodeID:
		m.ClearNextNodeID()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldThreadID:
		m.ResetThreadID()
		return nil
	case checkpoint.FieldNodeID:
		m.ResetNodeID()
		return nil
	case checkpoint.FieldNextNodeID:
		m.ResetNextNodeID()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.mission != nil {
		edges = append(edges, checkpoint.EdgeMission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeMission:
		if id := m.mission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmission {
		edges = append(edges, checkpoint.EdgeMission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeMission:
		return m.clearedmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeMission:
		m.ClearMission()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeMission:
		m.ResetMission()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// MissionMutation represents an operation that mutates the Mission nodes in the graph.
type MissionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	request                *string
	interaction_mode       *string
	status                 *mission.Status
	execution_strategy     *string
	project_path           *string
	git_remote_url         *string
	reasoning_level        *string
	skip_per_task_tests    *bool
	create_deployment_task *bool
	error_message          *string
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	pod_id                 *string
	last_interaction_at    *time.Time
	clearedFields          map[string]struct{}
	checkpoints            map[string]struct{}
	removedcheckpoints     map[string]struct{}
	clearedcheckpoints     bool
	done                   bool
	oldValue               func(context.Context) (*Mission, error)
	predicates             []predicate.Mission
}

var _ ent.Mutation = (*MissionMutation)(nil)

// missionOption allows management of the mutation configuration using functional options.
type missionOption func(*MissionMutation)

// newMissionMutation creates new mutation for the Mission entity.
func newMissionMutation(c config, op Op, opts ...missionOption) *MissionMutation {
	m := &MissionMutation{
		config:        c,
		op:            op,
		typ:           TypeMission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMissionID sets the ID field of the mutation.
func withMissionID(id string) missionOption {
	return func(m *MissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Mission
		)
		m.oldValue = func(ctx context.Context) (*Mission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMission sets the old Mission of the mutation.
func withMission(node *Mission) missionOption {
	return func(m *MissionMutation) {
		m.oldValue = func(context.Context) (*Mission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Mission entities.
func (m *MissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequest sets the "request" field.
func (m *MissionMutation) SetRequest(s string) {
	m.request = &s
}

// Request returns the value of the "request" field in the mutation.
func (m *MissionMutation) Request() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldRequest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ResetRequest resets all changes to the "request" field.
func (m *MissionMutation) ResetRequest() {
	m.request = nil
}

// SetInteractionMode sets the "interaction_mode" field.
func (m *MissionMutation) SetInteractionMode(s string) {
	m.interaction_mode = &s
}

// InteractionMode returns the value of the "interaction_mode" field in the mutation.
func (m *MissionMutation) InteractionMode() (r string, exists bool) {
	v := m.interaction_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionMode returns the old "interaction_mode" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldInteractionMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionMode: %w", err)
	}
	return oldValue.InteractionMode, nil
}

// ResetInteractionMode resets all changes to the "interaction_mode" field.
func (m *MissionMutation) ResetInteractionMode() {
	m.interaction_mode = nil
}

// SetStatus sets the "status" field.
func (m *MissionMutation) SetStatus(value mission.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MissionMutation) Status() (r mission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStatus(ctx context.Context) (v mission.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MissionMutation) ResetStatus() {
	m.status = nil
}

// SetExecutionStrategy sets the "execution_strategy" field.
func (m *MissionMutation) SetExecutionStrategy(s string) {
	m.execution_strategy = &s
}

// ExecutionStrategy returns the value of the "execution_strategy" field in the mutation.
func (m *MissionMutation) ExecutionStrategy() (r string, exists bool) {
	v := m.execution_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionStrategy returns the old "execution_strategy" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldExecutionStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionStrategy: %w", err)
	}
	return oldValue.ExecutionStrategy, nil
}

// ClearExecutionStrategy clears the value of the "execution_strategy" field.
func (m *MissionMutation) ClearExecutionStrategy() {
	m.execution_strategy = nil
	m.clearedFields[mission.FieldExecutionStrategy] = struct{}{}
}

// ExecutionStrategyCleared returns if the "execution_strategy" field was cleared in this mutation.
func (m *MissionMutation) ExecutionStrategyCleared() bool {
	_, ok := m.clearedFields[mission.FieldExecutionStrategy]
	return ok
}

// ResetExecutionStrategy resets all changes to the "execution_strategy" field.
func (m *MissionMutation) ResetExecutionStrategy() {
	m.execution_strategy = nil
	delete(m.clearedFields, mission.FieldExecutionStrategy)
}

// SetProjectPath sets the "project_path" field.
func (m *MissionMutation) SetProjectPath(s string) {
	m.project_path = &s
}

// ProjectPath returns the value of the "project_path" field in the mutation.
func (m *MissionMutation) ProjectPath() (r string, exists bool) {
	v := m.project_path
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectPath returns the old "project_path" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldProjectPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectPath: %w", err)
	}
	return oldValue.ProjectPath, nil
}

// ClearProjectPath clears the value of the "project_path" field.
func (m *MissionMutation) ClearProjectPath() {
	m.project_path = nil
	m.clearedFields[mission.FieldProjectPath] = struct{}{}
}

// ProjectPathCleared returns if the "project_path" field was cleared in this mutation.
func (m *MissionMutation) ProjectPathCleared() bool {
	_, ok := m.clearedFields[mission.FieldProjectPath]
	return ok
}

// ResetProjectPath resets all changes to the "project_path" field.
func (m *MissionMutation) ResetProjectPath() {
	m.project_path = nil
	delete(m.clearedFields, mission.FieldProjectPath)
}

// SetGitRemoteURL sets the "git_remote_url" field.
func (m *MissionMutation) SetGitRemoteURL(s string) {
	m.git_remote_url = &s
}

// GitRemoteURL returns the value of the "git_remote_url" field in the mutation.
func (m *MissionMutation) GitRemoteURL() (r string, exists bool) {
	v := m.git_remote_url
	if v == nil {
		return
	}
	return *v, true
}

// OldGitRemoteURL returns the old "git_remote_url" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldGitRemoteURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGitRemoteURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGitRemoteURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGitRemoteURL: %w", err)
	}
	return oldValue.GitRemoteURL, nil
}

// ClearGitRemoteURL clears the value of the "git_remote_url" field.
func (m *MissionMutation) ClearGitRemoteURL() {
	m.git_remote_url = nil
	m.clearedFields[mission.FieldGitRemoteURL] = struct{}{}
}

// GitRemoteURLCleared returns if the "git_remote_url" field was cleared in this mutation.
func (m *MissionMutation) GitRemoteURLCleared() bool {
	_, ok := m.clearedFields[mission.FieldGitRemoteURL]
	return ok
}

// ResetGitRemoteURL resets all changes to the "git_remote_url" field.
func (m *MissionMutation) ResetGitRemoteURL() {
	m.git_remote_url = nil
	delete(m.clearedFields, mission.FieldGitRemoteURL)
}

// SetReasoningLevel sets the "reasoning_level" field.
func (m *MissionMutation) SetReasoningLevel(s string) {
	m.reasoning_level = &s
}

// ReasoningLevel returns the value of the "reasoning_level" field in the mutation.
func (m *MissionMutation) ReasoningLevel() (r string, exists bool) {
	v := m.reasoning_level
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoningLevel returns the old "reasoning_level" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldReasoningLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoningLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoningLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoningLevel: %w", err)
	}
	return oldValue.ReasoningLevel, nil
}

// ClearReasoningLevel clears the value of the "reasoning_level" field.
func (m *MissionMutation) ClearReasoningLevel() {
	m.reasoning_level = nil
	m.clearedFields[mission.FieldReasoningLevel] = struct{}{}
}

// ReasoningLevelCleared returns if the "reasoning_level" field was cleared in this mutation.
func (m *MissionMutation) ReasoningLevelCleared() bool {
	_, ok := m.clearedFields[mission.FieldReasoningLevel]
	return ok
}

// ResetReasoningLevel resets all changes to the "reasoning_level" field.
func (m *MissionMutation) ResetReasoningLevel() {
	m.reasoning_level = nil
	delete(m.clearedFields, mission.FieldReasoningLevel)
}

// SetSkipPerTaskTests sets the "skip_per_task_tests" field.
func (m *MissionMutation) SetSkipPerTaskTests(b bool) {
	m.skip_per_task_tests = &b
}

// SkipPerTaskTests returns the value of the "skip_per_task_tests" field in the mutation.
func (m *MissionMutation) SkipPerTaskTests() (r bool, exists bool) {
	v := m.skip_per_task_tests
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipPerTaskTests returns the old "skip_per_task_tests" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldSkipPerTaskTests(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipPerTaskTests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipPerTaskTests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipPerTaskTests: %w", err)
	}
	return oldValue.SkipPerTaskTests, nil
}

// ResetSkipPerTaskTests resets all changes to the "skip_per_task_tests" field.
func (m *MissionMutation) ResetSkipPerTaskTests() {
	m.skip_per_task_tests = nil
}

// SetCreateDeploymentTask sets the "create_deployment_task" field.
func (m *MissionMutation) SetCreateDeploymentTask(b bool) {
	m.create_deployment_task = &b
}

// CreateDeploymentTask returns the value of the "create_deployment_task" field in the mutation.
func (m *MissionMutation) CreateDeploymentTask() (r bool, exists bool) {
	v := m.create_deployment_task
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateDeploymentTask returns the old "create_deployment_task" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCreateDeploymentTask(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateDeploymentTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateDeploymentTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateDeploymentTask: %w", err)
	}
	return oldValue.CreateDeploymentTask, nil
}

// ResetCreateDeploymentTask resets all changes to the "create_deployment_task" field.
func (m *MissionMutation) ResetCreateDeploymentTask() {
	m.create_deployment_task = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *MissionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MissionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MissionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[mission.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MissionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[mission.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MissionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, mission.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *MissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *MissionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *MissionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *MissionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[mission.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *MissionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *MissionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, mission.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *MissionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MissionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MissionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[mission.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MissionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MissionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, mission.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *MissionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *MissionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *MissionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[mission.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *MissionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[mission.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *MissionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, mission.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *MissionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *MissionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *MissionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[mission.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *MissionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *MissionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, mission.FieldLastInteractionAt)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *MissionMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *MissionMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *MissionMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *MissionMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *MissionMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *MissionMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *MissionMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// Where appends a list predicates to the MissionMutation builder.
func (m *MissionMutation) Where(ps ...predicate.Mission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mission).
func (m *MissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MissionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.request != nil {
		fields = append(fields, mission.FieldRequest)
	}
	if m.interaction_mode != nil {
		fields = append(fields, mission.FieldInteractionMode)
	}
	if m.status != nil {
		fields = append(fields, mission.FieldStatus)
	}
	if m.execution_strategy != nil {
		fields = append(fields, mission.FieldExecutionStrategy)
	}
	if m.project_path != nil {
		fields = append(fields, mission.FieldProjectPath)
	}
	if m.git_remote_url != nil {
		fields = append(fields, mission.FieldGitRemoteURL)
	}
	if m.reasoning_level != nil {
		fields = append(fields, mission.FieldReasoningLevel)
	}
	if m.skip_per_task_tests != nil {
		fields = append(fields, mission.FieldSkipPerTaskTests)
	}
	if m.create_deployment_task != nil {
		fields = append(fields, mission.FieldCreateDeploymentTask)
	}
	if m.error_message != nil {
		fields = append(fields, mission.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, mission.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, mission.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, mission.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, mission.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, mission.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mission.FieldRequest:
		return m.Request()
	case mission.FieldInteractionMode:
		return m.InteractionMode()
	case mission.FieldStatus:
		return m.Status()
	case mission.FieldExecutionStrategy:
		return m.ExecutionStrategy()
	case mission.FieldProjectPath:
		return m.ProjectPath()
	case mission.FieldGitRemoteURL:
		return m.GitRemoteURL()
	case mission.FieldReasoningLevel:
		return m.ReasoningLevel()
	case mission.FieldSkipPerTaskTests:
		return m.SkipPerTaskTests()
	case mission.FieldCreateDeploymentTask:
		return m.CreateDeploymentTask()
	case mission.FieldErrorMessage:
		return m.ErrorMessage()
	case mission.FieldCreatedAt:
		return m.CreatedAt()
	case mission.FieldStartedAt:
		return m.StartedAt()
	case mission.FieldCompletedAt:
		return m.CompletedAt()
	case mission.FieldPodID:
		return m.PodID()
	case mission.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mission.FieldRequest:
		return m.OldRequest(ctx)
	case mission.FieldInteractionMode:
		return m.OldInteractionMode(ctx)
	case mission.FieldStatus:
		return m.OldStatus(ctx)
	case mission.FieldExecutionStrategy:
		return m.OldExecutionStrategy(ctx)
	case mission.FieldProjectPath:
		return m.OldProjectPath(ctx)
	case mission.FieldGitRemoteURL:
		return m.OldGitRemoteURL(ctx)
	case mission.FieldReasoningLevel:
		return m.OldReasoningLevel(ctx)
	case mission.FieldSkipPerTaskTests:
		return m.OldSkipPerTaskTests(ctx)
	case mission.FieldCreateDeploymentTask:
		return m.OldCreateDeploymentTask(ctx)
	case mission.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case mission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mission.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case mission.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case mission.FieldPodID:
		return m.OldPodID(ctx)
	case mission.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Mission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mission.FieldRequest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case mission.FieldInteractionMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionMode(v)
		return nil
	case mission.FieldStatus:
		v, ok := value.(mission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mission.FieldExecutionStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionStrategy(v)
		return nil
	case mission.FieldProjectPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectPath(v)
		return nil
	case mission.FieldGitRemoteURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGitRemoteURL(v)
		return nil
	case mission.FieldReasoningLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoningLevel(v)
		return nil
	case mission.FieldSkipPerTaskTests:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipPerTaskTests(v)
		return nil
	case mission.FieldCreateDeploymentTask:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateDeploymentTask(v)
		return nil
	case mission.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case mission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mission.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case mission.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case mission.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case mission.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Mission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mission.FieldExecutionStrategy) {
		fields = append(fields, mission.FieldExecutionStrategy)
	}
	if m.FieldCleared(mission.FieldProjectPath) {
		fields = append(fields, mission.FieldProjectPath)
	}
	if m.FieldCleared(mission.FieldGitRemoteURL) {
		fields = append(fields, mission.FieldGitRemoteURL)
	}
	if m.FieldCleared(mission.FieldReasoningLevel) {
		fields = append(fields, mission.FieldReasoningLevel)
	}
	if m.FieldCleared(mission.FieldErrorMessage) {
		fields = append(fields, mission.FieldErrorMessage)
	}
	if m.FieldCleared(mission.FieldStartedAt) {
		fields = append(fields, mission.FieldStartedAt)
	}
	if m.FieldCleared(mission.FieldCompletedAt) {
		fields = append(fields, mission.FieldCompletedAt)
	}
	if m.FieldCleared(mission.FieldPodID) {
		fields = append(fields, mission.FieldPodID)
	}
	if m.FieldCleared(mission.FieldLastInteractionAt) {
		fields = append(fields, mission.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MissionMutation) ClearField(name string) error {
	switch name {
	case mission.FieldExecutionStrategy:
		m.ClearExecutionStrategy()
		return nil
	case mission.FieldProjectPath:
		m.ClearProjectPath()
		return nil
	case mission.FieldGitRemoteURL:
		m.ClearGitRemoteURL()
		return nil
	case mission.FieldReasoningLevel:
		m.ClearReasoningLevel()
		return nil
	case mission.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case mission.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case mission.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case mission.FieldPodID:
		m.ClearPodID()
		return nil
	case mission.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Mission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MissionMutation) ResetField(name string) error {
	switch name {
	case mission.FieldRequest:
		m.ResetRequest()
		return nil
	case mission.FieldInteractionMode:
		m.ResetInteractionMode()
		return nil
	case mission.FieldStatus:
		m.ResetStatus()
		return nil
	case mission.FieldExecutionStrategy:
		m.ResetExecutionStrategy()
		return nil
	case mission.FieldProjectPath:
		m.ResetProjectPath()
		return nil
	case mission.FieldGitRemoteURL:
		m.ResetGitRemoteURL()
		return nil
	case mission.FieldReasoningLevel:
		m.ResetReasoningLevel()
		return nil
	case mission.FieldSkipPerTaskTests:
		m.ResetSkipPerTaskTests()
		return nil
	case mission.FieldCreateDeploymentTask:
		m.ResetCreateDeploymentTask()
		return nil
	case mission.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case mission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mission.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case mission.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case mission.FieldPodID:
		m.ResetPodID()
		return nil
	case mission.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.checkpoints != nil {
		edges = append(edges, mission.EdgeCheckpoints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mission.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcheckpoints != nil {
		edges = append(edges, mission.EdgeCheckpoints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case mission.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcheckpoints {
		edges = append(edges, mission.EdgeCheckpoints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MissionMutation) EdgeCleared(name string) bool {
	switch name {
	case mission.EdgeCheckpoints:
		return m.clearedcheckpoints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MissionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Mission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MissionMutation) ResetEdge(name string) error {
	switch name {
	case mission.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown Mission edge %s", name)
}
