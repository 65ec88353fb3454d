// Package eventbus fans window manager events out to in-process
// subscribers.
package eventbus

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// Handler receives a published event.
type Handler func(ctx context.Context, event entity.WmEvent)

type subscriber struct {
	id      uint64
	types   []entity.WmEventType
	handler Handler
}

func (s subscriber) wants(t entity.WmEventType) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

// Bus delivers events synchronously, in subscription order.
type Bus struct {
	mu          sync.RWMutex
	subscribers []subscriber
	nextID      uint64
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

var _ port.EventPublisher = (*Bus)(nil)

// Subscribe registers handler for the given event types, or for every
// event when none are given. The returned func removes the subscription.
func (b *Bus) Subscribe(handler Handler, types ...entity.WmEventType) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subscribers = append(b.subscribers, subscriber{id: id, types: types, handler: handler})

	return func() { b.unsubscribe(id) }
}

func (b *Bus) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers = slices.DeleteFunc(b.subscribers, func(s subscriber) bool { return s.id == id })
}

// Publish implements port.EventPublisher. Handlers run outside the lock
// so they may subscribe or unsubscribe.
func (b *Bus) Publish(ctx context.Context, event entity.WmEvent) {
	b.mu.RLock()
	subscribers := slices.Clone(b.subscribers)
	b.mu.RUnlock()

	for _, s := range subscribers {
		if s.wants(event.Type) {
			s.handler(ctx, event)
		}
	}
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// LogHandler records every event through the context logger.
func LogHandler(ctx context.Context, event entity.WmEvent) {
	log := logging.FromContext(ctx).Info().Str("event", string(event.Type))
	if event.ContainerID != "" {
		log = log.Str("container_id", string(event.ContainerID))
	}
	if event.Type == entity.EventBindingModesChanged {
		names := make([]string, 0, len(event.BindingModes))
		for _, mode := range event.BindingModes {
			names = append(names, mode.Name)
		}
		log = log.Strs("binding_modes", names)
	}
	log.Msg("wm event")
}

// Collector keeps published events in memory.
type Collector struct {
	mu     sync.Mutex
	events []entity.WmEvent
}

// Handle is a Handler that appends the event.
func (c *Collector) Handle(_ context.Context, event entity.WmEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

// Events returns a copy of the collected events.
func (c *Collector) Events() []entity.WmEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.events)
}
