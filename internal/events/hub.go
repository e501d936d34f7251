// Package events implements the in-process hub fanning domain events out to
// connected observer sessions. Delivery is best effort: the hub never blocks
// a publishing caller, and a disconnected observer reconciles by re-fetching
// authoritative state on reconnect.
package events

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"trinh-cafe/internal/logger"
)

// Event is one domain event published to a broadcast group.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Forwarder mirrors hub events to an external sink (e.g. a broker exchange).
// Forward errors are logged and swallowed; they never affect delivery to
// in-process subscribers.
type Forwarder interface {
	Forward(ctx context.Context, group string, event Event) error
}

// Subscriber is one connected observer session in a broadcast group.
type Subscriber struct {
	ID    string
	Group string
	ch    chan Event
}

// Events returns the subscriber's delivery channel. It is closed on
// Unsubscribe.
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

type envelope struct {
	group string
	event Event
}

const (
	publishQueueSize = 256
	subscriberBuffer = 16
)

// Hub is an explicit registry of subscribers keyed by group, with a single
// dispatch goroutine so events are delivered in publish order.
type Hub struct {
	logger     *logger.Logger
	queue      chan envelope
	forwarders []Forwarder

	mu     sync.RWMutex
	groups map[string]map[*Subscriber]struct{}
}

// NewHub creates a hub. Run must be started for events to be delivered.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		logger: log,
		queue:  make(chan envelope, publishQueueSize),
		groups: make(map[string]map[*Subscriber]struct{}),
	}
}

// AttachForwarder registers a forwarder. Not safe to call after Run starts.
func (h *Hub) AttachForwarder(f Forwarder) {
	h.forwarders = append(h.forwarders, f)
}

// Run dispatches queued events until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-h.queue:
			h.dispatch(ctx, env)
		}
	}
}

// Publish enqueues an event for the given group. It never blocks: if the
// dispatch queue is full the event is dropped and logged, since the hub is
// advisory and must not slow down a committing caller.
func (h *Hub) Publish(group string, event Event) {
	select {
	case h.queue <- envelope{group: group, event: event}:
	default:
		h.logger.Error("event_dropped", "Event hub queue full, dropping event", "", nil,
			map[string]interface{}{"group": group, "type": event.Type})
	}
}

// Subscribe registers a new observer session in the given group.
func (h *Hub) Subscribe(group string) *Subscriber {
	sub := &Subscriber{
		ID:    uuid.NewString(),
		Group: group,
		ch:    make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.groups[group] == nil {
		h.groups[group] = make(map[*Subscriber]struct{})
	}
	h.groups[group][sub] = struct{}{}

	h.logger.Debug("subscriber_joined", "Observer joined broadcast group", "",
		map[string]interface{}{"subscriber_id": sub.ID, "group": group})
	return sub
}

// Unsubscribe removes the session and closes its delivery channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[sub.Group]
	if !ok {
		return
	}
	if _, ok := members[sub]; !ok {
		return
	}
	delete(members, sub)
	if len(members) == 0 {
		delete(h.groups, sub.Group)
	}
	close(sub.ch)

	h.logger.Debug("subscriber_left", "Observer left broadcast group", "",
		map[string]interface{}{"subscriber_id": sub.ID, "group": sub.Group})
}

// dispatch fans one event out to all current group members and forwarders.
// Subscriber sends are non-blocking: a subscriber that cannot keep up loses
// the event and must reconcile from the open-orders query.
func (h *Hub) dispatch(ctx context.Context, env envelope) {
	h.mu.RLock()
	for sub := range h.groups[env.group] {
		select {
		case sub.ch <- env.event:
		default:
			h.logger.Error("subscriber_lagging", "Subscriber buffer full, dropping event", "", nil,
				map[string]interface{}{"subscriber_id": sub.ID, "group": env.group, "type": env.event.Type})
		}
	}
	h.mu.RUnlock()

	for _, f := range h.forwarders {
		if err := f.Forward(ctx, env.group, env.event); err != nil {
			h.logger.Error("event_forward_failed", "Failed to forward event", "", err,
				map[string]interface{}{"group": env.group, "type": env.event.Type})
		}
	}
}
