package core

import "time"

// ActionKind classifies how the engine should interpret a user response to a
// message. Kinds outside this set are rejected by the action executor.
type ActionKind string

const (
	// ActionApply starts the staged analysis pipeline and yields a Suggestion.
	ActionApply ActionKind = "apply"
	// ActionPreview is a read-only acknowledgement with no state mutation.
	ActionPreview ActionKind = "preview"
	// ActionModify opens the panel for the message's persona.
	ActionModify ActionKind = "modify"
	// ActionDismiss marks the message dismissed.
	ActionDismiss ActionKind = "dismiss"
	// ActionSnooze dismisses the message now without scheduling a re-surface.
	ActionSnooze ActionKind = "snooze"
	// ActionNever dismisses the message; the trigger mute is not wired through.
	ActionNever ActionKind = "never"
	// ActionCustom carries a payload-driven side channel for the host.
	ActionCustom ActionKind = "custom"
)

// Action is a response option embedded in a Message or Suggestion. Actions are
// immutable after creation.
type Action struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"`
	IsPrimary bool           `json:"is_primary"`
	Kind      ActionKind     `json:"kind"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// MessageKind categorizes the intent of a message for the UI layer.
type MessageKind string

const (
	// MessageSuggestion proposes a concrete next step.
	MessageSuggestion MessageKind = "suggestion"
	// MessageRecommendation highlights an improvement opportunity.
	MessageRecommendation MessageKind = "recommendation"
	// MessageEducation shares background or cultural context.
	MessageEducation MessageKind = "education"
)

// Message is a notification surfaced to the user on behalf of a persona.
//
// Lifecycle contract:
//   - IsDismissed is monotone: once true it never reverts.
//   - Mutation happens only through the state store's markRead/dismiss paths.
//   - Messages are removed only by oldest-first capacity eviction.
type Message struct {
	ID          string         `json:"id"`
	Persona     Persona        `json:"persona"`
	Kind        MessageKind    `json:"kind"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Timestamp   time.Time      `json:"timestamp"`
	IsRead      bool           `json:"is_read"`
	IsDismissed bool           `json:"is_dismissed"`
	Actions     []Action       `json:"actions,omitempty"`
	Context     map[string]any `json:"context,omitempty"`
}

// Clone returns a deep copy safe for independent mutation.
func (m Message) Clone() Message {
	cp := m
	if m.Actions != nil {
		cp.Actions = make([]Action, len(m.Actions))
		copy(cp.Actions, m.Actions)
	}
	if m.Context != nil {
		cp.Context = make(map[string]any, len(m.Context))
		for k, v := range m.Context {
			cp.Context[k] = v
		}
	}
	return cp
}

// Suggestion is a higher-confidence, actionable recommendation produced by the
// apply analysis pipeline (or added directly by the host UI).
type Suggestion struct {
	ID          string    `json:"id"`
	Persona     Persona   `json:"persona"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Confidence  float64   `json:"confidence"`
	Actions     []Action  `json:"actions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Clone returns a deep copy safe for independent mutation.
func (s Suggestion) Clone() Suggestion {
	cp := s
	if s.Actions != nil {
		cp.Actions = make([]Action, len(s.Actions))
		copy(cp.Actions, s.Actions)
	}
	return cp
}

// ActionResult is the outcome of executing an action against a message.
// Failures are reported through Error rather than a Go error so one faulty
// handler can never crash the host process.
type ActionResult struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}
