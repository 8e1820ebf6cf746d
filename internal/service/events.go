package service

// EventType defines the type of event
type EventType string

const (
	EventPlanetAdded     EventType = "planet_added"
	EventMoonAdded       EventType = "moon_added"
	EventBodyRemoved     EventType = "body_removed"
	EventSystemCleared   EventType = "system_cleared"
	EventSystemPopulated EventType = "system_populated"
	EventSystemLoaded    EventType = "system_loaded"
)

// Event represents an event that occurred in the system
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Handler receives published events
type Handler func(Event)

// EventBus allows publishing and subscribing to events.
// Handlers run synchronously in the publisher's goroutine.
type EventBus struct {
	subscribers []Handler
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]Handler, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(h Handler) {
	eb.subscribers = append(eb.subscribers, h)
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	for _, h := range eb.subscribers {
		h(event)
	}
}
