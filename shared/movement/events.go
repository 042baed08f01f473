package movement

import dmath "github.com/yohamta/donburi/features/math"

// EventKind identifies an input edge delivered to a Core between ticks.
type EventKind int

const (
	EventDirection EventKind = iota
	EventJumpPressed
	EventJumpReleased
	EventSprintPressed
	EventSprintReleased
)

// Event is a single input edge. Axis is only meaningful for EventDirection.
type Event struct {
	Kind EventKind
	Axis dmath.Vec2
}

// EventQueue buffers input events produced between two ticks. Drain applies
// them in arrival order and empties the queue, so every edge reaches the
// Core exactly once.
type EventQueue struct {
	events []Event
}

// Push appends e. Consecutive direction changes collapse into the latest.
func (q *EventQueue) Push(e Event) {
	if e.Kind == EventDirection && len(q.events) > 0 && q.events[len(q.events)-1].Kind == EventDirection {
		q.events[len(q.events)-1] = e
		return
	}
	q.events = append(q.events, e)
}

func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain applies all queued events to c and clears the queue.
func (q *EventQueue) Drain(c *Core) {
	for _, e := range q.events {
		c.Apply(e)
	}
	q.events = q.events[:0]
}

// Apply dispatches a single event to the matching input handler.
func (c *Core) Apply(e Event) {
	switch e.Kind {
	case EventDirection:
		c.SetDirectionalInput(e.Axis)
	case EventJumpPressed:
		c.OnJumpPressed()
	case EventJumpReleased:
		c.OnJumpReleased()
	case EventSprintPressed:
		c.OnSprintPressed()
	case EventSprintReleased:
		c.OnSprintReleased()
	}
}
