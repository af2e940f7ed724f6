// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	SimulationStarted  Type = "simulation_started"
	SimulationStopped  Type = "simulation_stopped"
	WellContact        Type = "well_contact"
	BarrierContact     Type = "barrier_contact"
	BoundaryReflection Type = "boundary_reflection"
)

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

// Subscription is returned by Subscribe. Cancel removes the handler.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID: id,
		Cancel: func() {
			b.unsubscribe(eventType, id)
		},
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
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

// Specific event implementations

// ContactEvent is published when the craft touches an obstacle
type ContactEvent struct {
	BaseEvent
	ObstacleID uint64
	Point      physics.Vector2D
	// Speed is the craft's velocity magnitude after the correction.
	Speed float64
}

// NewContactEvent creates a new contact event
func NewContactEvent(eventType Type, source interface{}, obstacleID uint64, point physics.Vector2D, speed float64) *ContactEvent {
	return &ContactEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ObstacleID: obstacleID,
		Point:      point,
		Speed:      speed,
	}
}

// Edge identifies a side of the map
type Edge string

// Map edges
const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// BoundaryEvent is published when the craft reflects off a map edge
type BoundaryEvent struct {
	BaseEvent
	Edge Edge
}

// NewBoundaryEvent creates a new boundary event
func NewBoundaryEvent(source interface{}, edge Edge) *BoundaryEvent {
	return &BoundaryEvent{
		BaseEvent: BaseEvent{
			EventType: BoundaryReflection,
			Source:    source,
		},
		Edge: edge,
	}
}

// LifecycleEvent marks the start or end of a simulation run
type LifecycleEvent struct {
	BaseEvent
	Tick uint64
}

// NewLifecycleEvent creates a new lifecycle event
func NewLifecycleEvent(eventType Type, source interface{}, tick uint64) *LifecycleEvent {
	return &LifecycleEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Tick: tick,
	}
}
