// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-flight/pkg/flight"
)

// Type represents the type of event
type Type string

// Flight event types
const (
	SessionStarted Type = "session_started"
	SessionEnded   Type = "session_ended"
	Takeoff        Type = "takeoff"
	Landing        Type = "landing"
	Crash          Type = "crash"
)

// TypeForTransition maps a flight transition to its event type.
// flight.None has no event and reports false.
func TypeForTransition(t flight.Transition) (Type, bool) {
	switch t {
	case flight.Takeoff:
		return Takeoff, true
	case flight.Landing:
		return Landing, true
	case flight.Crash:
		return Crash, true
	default:
		return "", false
	}
}

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// SubscriptionID identifies a handler registered with Subscribe
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	handlers map[Type][]subscription
	nextID   SubscriptionID
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes the handler registered under id.
// It reports whether a handler was removed.
func (b *Bus) Unsubscribe(eventType Type, id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// FlightEvent reports a flight state transition or a session boundary
type FlightEvent struct {
	BaseEvent
	Tick  uint64
	State flight.PlaneState
}

// NewFlightEvent creates a new flight event
func NewFlightEvent(eventType Type, source interface{}, tick uint64, state flight.PlaneState) *FlightEvent {
	return &FlightEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Tick:  tick,
		State: state,
	}
}
