package events

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber that
// falls further behind than this starts losing events (logged); SSE clients
// recover via the timeline endpoint.
const subscriberBuffer = 256

// Bus is the in-process event bus. One instance per process; topics are
// per-mission. Safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	topics map[string]map[string]*Subscription
}

// Subscription is one subscriber's handle on a mission topic. Events arrive
// on C in publish order. Close the subscription when done; C is closed by
// Close or by Bus.Clear.
type Subscription struct {
	ID      string
	Channel string
	C       chan []byte

	bus    *Bus
	mu     sync.Mutex
	closed bool
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		topics: make(map[string]map[string]*Subscription),
	}
}

// Subscribe registers a new subscriber on the given channel.
func (b *Bus) Subscribe(channel string) *Subscription {
	sub := &Subscription{
		ID:      uuid.New().String(),
		Channel: channel,
		C:       make(chan []byte, subscriberBuffer),
		bus:     b,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.topics[channel] == nil {
		b.topics[channel] = make(map[string]*Subscription)
	}
	b.topics[channel][sub.ID] = sub
	return sub
}

// Close removes the subscription from its topic and closes its channel.
// Safe to call multiple times.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	if subs, ok := s.bus.topics[s.Channel]; ok {
		delete(subs, s.ID)
		if len(subs) == 0 {
			delete(s.bus.topics, s.Channel)
		}
	}
	s.bus.mu.Unlock()

	s.markClosed()
}

// deliver sends data to the subscriber unless it is closed or its buffer is
// full. The per-subscription lock orders deliver against markClosed so a
// publish can never hit a closed channel.
func (s *Subscription) deliver(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.C <- data:
	default:
		slog.Warn("Dropping event for slow subscriber",
			"channel", s.Channel, "subscription_id", s.ID)
	}
}

func (s *Subscription) markClosed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.C)
}

// Publish marshals the payload and delivers it to every subscriber of the
// channel, in publish order per subscriber. A full subscriber buffer drops
// the event for that subscriber only.
func (b *Bus) Publish(channel string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("Failed to marshal event payload", "channel", channel, "error", err)
		return
	}

	// Snapshot subscribers under the lock, then send without it so a slow
	// subscriber cannot stall Subscribe/Close on the same topic.
	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.topics[channel]))
	for _, sub := range b.topics[channel] {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.deliver(data)
	}
}

// Clear closes and removes every subscription on the channel. Used as the
// per-mission teardown hook at mission end.
func (b *Bus) Clear(channel string) {
	b.mu.Lock()
	subs := b.topics[channel]
	delete(b.topics, channel)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.markClosed()
	}
}

// SubscriberCount returns the number of subscribers on a channel.
// Used by tests to poll instead of sleeping.
func (b *Bus) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[channel])
}
