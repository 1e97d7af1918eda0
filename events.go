package gimbal

import "github.com/gimbal3d/gimbal/object"

const (
	OBJECT_ADDED EventType = iota
	OBJECT_MOVED
	OBJECT_REMOVED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// ObjectAddedEvent is emitted when a member enters the scene.
type ObjectAddedEvent struct {
	Member object.GraphNodeMember
}

func (e ObjectAddedEvent) Type() EventType { return OBJECT_ADDED }

// ObjectMovedEvent is emitted once per observable transform mutation of a
// member in the scene.
type ObjectMovedEvent struct {
	Member object.GraphNodeMember
}

func (e ObjectMovedEvent) Type() EventType { return OBJECT_MOVED }

// ObjectRemovedEvent is emitted when a member leaves the scene.
type ObjectRemovedEvent struct {
	Member object.GraphNodeMember
}

func (e ObjectRemovedEvent) Type() EventType { return OBJECT_REMOVED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager. Emitted events are buffered and delivered on Flush so
// listeners never run in the middle of a mutation cascade.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 256),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// Pending returns the number of buffered events.
func (e *Events) Pending() int {
	return len(e.buffer)
}

// Flush sends the buffered events to their listeners, in emission order, and
// clears the buffer.
func (e *Events) Flush() {
	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}

	e.buffer = e.buffer[:0]
}
