// Package checkpoint persists mission state snapshots. Every engine node
// transition writes one checkpoint; the latest checkpoint of a thread is the
// authoritative mission state.
package checkpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/worldmind/worldmind/ent"
	entcheckpoint "github.com/worldmind/worldmind/ent/checkpoint"
)

// Store reads and writes checkpoints keyed by (threadID, checkpointID).
type Store struct {
	client *ent.Client
}

// NewStore creates a store over the ent client.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Put durably writes one checkpoint. The write must complete before the next
// engine node starts; callers do not proceed on error.
func (s *Store) Put(ctx context.Context, threadID, nodeID, nextNodeID, state string) (*ent.Checkpoint, error) {
	builder := s.client.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetNodeID(nodeID).
		SetState(state).
		SetCreatedAt(time.Now())
	if nextNodeID != "" {
		builder = builder.SetNextNodeID(nextNodeID)
	}

	cp, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save checkpoint for thread %s: %w", threadID, err)
	}
	return cp, nil
}

// GetLatest returns the most recent checkpoint of a thread, or ent.NotFound.
func (s *Store) GetLatest(ctx context.Context, threadID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(entcheckpoint.ThreadIDEQ(threadID)).
		Order(ent.Desc(entcheckpoint.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest checkpoint for thread %s: %w", threadID, err)
	}
	return cp, nil
}

// Get returns one checkpoint by id within a thread.
func (s *Store) Get(ctx context.Context, threadID, checkpointID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(
			entcheckpoint.ThreadIDEQ(threadID),
			entcheckpoint.IDEQ(checkpointID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkpoint %s for thread %s: %w", checkpointID, threadID, err)
	}
	return cp, nil
}

// List returns a thread's checkpoints in chronological order.
func (s *Store) List(ctx context.Context, threadID string) ([]*ent.Checkpoint, error) {
	cps, err := s.client.Checkpoint.Query().
		Where(entcheckpoint.ThreadIDEQ(threadID)).
		Order(ent.Asc(entcheckpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints for thread %s: %w", threadID, err)
	}
	return cps, nil
}

// Release removes all of a thread's checkpoints and returns them as of the
// deletion. Used at mission intake when a mission id is reused.
func (s *Store) Release(ctx context.Context, threadID string) ([]*ent.Checkpoint, error) {
	cps, err := s.List(ctx, threadID)
	if err != nil {
		return nil, err
	}

	if _, err := s.client.Checkpoint.Delete().
		Where(entcheckpoint.ThreadIDEQ(threadID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to release checkpoints for thread %s: %w", threadID, err)
	}
	return cps, nil
}
