package core

// Event is a discrete input delivered by the shell to the game session.
// The set is closed: every consumer switches over all variants.
type Event int

const (
	// EventQuit ends the control loop once the current tick completes.
	EventQuit Event = iota
	// EventPrimary is the single gameplay action: flap while running,
	// restart after game over.
	EventPrimary
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventQuit:
		return "Quit"
	case EventPrimary:
		return "Primary"
	default:
		return "Unknown"
	}
}

// EventQueue buffers events between ticks in receipt order.
// The shell pushes as keys arrive and drains once per tick.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 4)}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of buffered events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all buffered events in receipt order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
