package core

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names one of the fixed vocabulary of host application events the
// engine understands. Unknown kinds are accepted and simply match no trigger.
type EventKind string

const (
	// EventCanvasEmpty fires when the working canvas has no cards left.
	EventCanvasEmpty EventKind = "canvas_empty"
	// EventCardCreated fires when the user adds a card to the canvas.
	EventCardCreated EventKind = "card_created"
	// EventCardDeleted fires when the user removes a card.
	EventCardDeleted EventKind = "card_deleted"
	// EventGenerationStarted fires when an asset generation begins.
	EventGenerationStarted EventKind = "generation_started"
	// EventGenerationCompleted fires when an asset generation succeeds.
	EventGenerationCompleted EventKind = "generation_completed"
	// EventGenerationFailed fires when an asset generation errors out.
	EventGenerationFailed EventKind = "generation_failed"
	// EventConnectionCreated fires when two cards are linked.
	EventConnectionCreated EventKind = "connection_created"
	// EventConnectionDeleted fires when a card link is removed.
	EventConnectionDeleted EventKind = "connection_deleted"
	// EventStyleApplied fires when a style preset is applied.
	EventStyleApplied EventKind = "style_applied"
	// EventWorkflowCompleted fires when a multi-step workflow finishes.
	EventWorkflowCompleted EventKind = "workflow_completed"
	// EventUserIdle is synthesized by the idle watchdog, never by the host.
	EventUserIdle EventKind = "user_idle"
)

// PayloadIdleTimeMs is the payload key carrying idle duration on a
// user_idle event, in milliseconds.
const PayloadIdleTimeMs = "idle_time_ms"

// DomainEvent is a notification from the host application (or synthesized by
// the idle watchdog) describing something that happened. Events are ephemeral:
// they are consumed synchronously by trigger evaluation and never stored.
type DomainEvent struct {
	Kind      EventKind      `json:"kind"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewDomainEvent creates an event of the given kind stamped with now.
func NewDomainEvent(kind EventKind, payload map[string]any) DomainEvent {
	return DomainEvent{Kind: kind, Payload: payload, Timestamp: time.Now().UTC()}
}

// NewIdleEvent synthesizes the watchdog's user_idle event carrying the elapsed
// idle duration in its payload.
func NewIdleEvent(idle time.Duration, at time.Time) DomainEvent {
	return DomainEvent{
		Kind:      EventUserIdle,
		Payload:   map[string]any{PayloadIdleTimeMs: idle.Milliseconds()},
		Timestamp: at,
	}
}

// IdleTime extracts the idle duration from a user_idle event payload. The
// second return is false when the event carries no usable idle time.
func (e DomainEvent) IdleTime() (time.Duration, bool) {
	if e.Kind != EventUserIdle || e.Payload == nil {
		return 0, false
	}
	switch v := e.Payload[PayloadIdleTimeMs].(type) {
	case int64:
		return time.Duration(v) * time.Millisecond, true
	case int:
		return time.Duration(v) * time.Millisecond, true
	case float64:
		return time.Duration(v) * time.Millisecond, true
	}
	return 0, false
}

// NewID generates a new unique identifier for messages, suggestions and
// actions. Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }
