package testutil

import (
	"time"

	"github.com/atelierhq/agentpulse/core"
)

// EventBuilder provides a fluent helper for constructing domain events in
// tests. Example:
//
//	ev := NewEventBuilder().Kind(core.EventCanvasEmpty).At(now).Build()
//
// Chain only the parts you need; sensible defaults are applied.
type EventBuilder struct {
	kind      core.EventKind
	payload   map[string]any
	timestamp time.Time
}

// NewEventBuilder creates a builder defaulting to a canvas_empty event.
func NewEventBuilder() *EventBuilder {
	return &EventBuilder{kind: core.EventCanvasEmpty}
}

// Kind sets the event kind (chainable).
func (b *EventBuilder) Kind(k core.EventKind) *EventBuilder { b.kind = k; return b }

// Payload sets a payload entry (chainable).
func (b *EventBuilder) Payload(key string, value any) *EventBuilder {
	if b.payload == nil {
		b.payload = map[string]any{}
	}
	b.payload[key] = value
	return b
}

// At overrides the event timestamp (chainable).
func (b *EventBuilder) At(t time.Time) *EventBuilder { b.timestamp = t; return b }

// Build produces the event, stamping now when no timestamp was set.
func (b *EventBuilder) Build() core.DomainEvent {
	ts := b.timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return core.DomainEvent{Kind: b.kind, Payload: b.payload, Timestamp: ts}
}

// MessageBuilder provides a fluent helper for constructing messages in tests.
type MessageBuilder struct {
	msg core.Message
}

// NewMessageBuilder creates a builder with an auto-generated id, the muse
// persona and the suggestion kind.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{msg: core.Message{
		ID:        core.NewID(),
		Persona:   core.PersonaMuse,
		Kind:      core.MessageSuggestion,
		Title:     "test message",
		Timestamp: time.Now().UTC(),
	}}
}

// ID overrides the auto-generated id (chainable).
func (b *MessageBuilder) ID(id string) *MessageBuilder { b.msg.ID = id; return b }

// Persona sets the owning persona (chainable).
func (b *MessageBuilder) Persona(p core.Persona) *MessageBuilder { b.msg.Persona = p; return b }

// Kind sets the message kind (chainable).
func (b *MessageBuilder) Kind(k core.MessageKind) *MessageBuilder { b.msg.Kind = k; return b }

// Title sets the title (chainable).
func (b *MessageBuilder) Title(t string) *MessageBuilder { b.msg.Title = t; return b }

// Read marks the message read (chainable).
func (b *MessageBuilder) Read() *MessageBuilder { b.msg.IsRead = true; return b }

// Dismissed marks the message dismissed (chainable).
func (b *MessageBuilder) Dismissed() *MessageBuilder { b.msg.IsDismissed = true; return b }

// Action appends an action of the given kind (chainable).
func (b *MessageBuilder) Action(kind core.ActionKind, primary bool) *MessageBuilder {
	b.msg.Actions = append(b.msg.Actions, core.Action{
		ID:        core.NewID(),
		Label:     string(kind),
		IsPrimary: primary,
		Kind:      kind,
	})
	return b
}

// Build returns the constructed message.
func (b *MessageBuilder) Build() core.Message { return b.msg }
