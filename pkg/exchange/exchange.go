// Package exchange holds the bounded in-memory stores remote sandbox workers
// use to GET instruction documents and PUT captured output when the task
// transport cannot carry them inline.
package exchange

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/worldmind/worldmind/pkg/models"
)

// DefaultCapacity bounds each store. When the cap is hit the whole store is
// evicted: entries are single-use (one worker reads each instruction once),
// so wholesale eviction only ever discards leftovers from dead workers.
const DefaultCapacity = 50

// Key derives the store key for a task's sandbox exchange.
// Format: "sandbox-<agent>-<taskId>".
func Key(agent models.AgentRole, taskID string) string {
	return fmt.Sprintf("sandbox-%s-%s", agent, taskID)
}

// Store is a bounded key→text map shared across missions.
// Safe for concurrent use.
type Store struct {
	name     string
	capacity int

	mu      sync.Mutex
	entries map[string]string
}

// NewStore creates a store with the given name (for logging) and capacity.
// A capacity <= 0 uses DefaultCapacity.
func NewStore(name string, capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		name:     name,
		capacity: capacity,
		entries:  make(map[string]string),
	}
}

// Put stores text under key, evicting everything first if the store is full.
func (s *Store) Put(key, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.capacity {
		slog.Warn("Exchange store at capacity, evicting all entries",
			"store", s.name, "capacity", s.capacity)
		s.entries = make(map[string]string)
	}
	s.entries[key] = text
}

// Get returns the text stored under key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.entries[key]
	return text, ok
}

// Take returns and removes the text stored under key.
func (s *Store) Take(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}
	return text, ok
}

// Delete removes the entry for key if present.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
