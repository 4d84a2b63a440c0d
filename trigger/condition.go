package trigger

import (
	"time"

	"github.com/atelierhq/agentpulse/core"
)

// Condition decides whether a domain event matches a trigger. Implementations
// must be pure: no state mutation, no side effects.
type Condition interface {
	Matches(ev core.DomainEvent) bool
}

// OnEvent matches events of a single kind.
type OnEvent struct {
	Kind core.EventKind
}

// Matches reports whether the event kind equals the condition's kind.
func (c OnEvent) Matches(ev core.DomainEvent) bool { return ev.Kind == c.Kind }

// OnIdle matches synthesized user_idle events whose idle duration meets the
// threshold.
type OnIdle struct {
	Threshold time.Duration
}

// Matches reports whether the event is a user_idle event with an idle time at
// or above the threshold.
func (c OnIdle) Matches(ev core.DomainEvent) bool {
	idle, ok := ev.IdleTime()
	return ok && idle >= c.Threshold
}

// OnState would inspect host application state this engine does not own.
// It is an explicit no-op variant: Matches always returns false until the
// host-state hooks are defined. Params documents the intended inputs.
type OnState struct {
	Params map[string]any
}

// Matches always returns false; see the type comment.
func (c OnState) Matches(core.DomainEvent) bool { return false }

// OnContent would inspect host application content this engine does not own.
// Like OnState it is an explicit no-op variant, not a bug.
type OnContent struct {
	Params map[string]any
}

// Matches always returns false; see the type comment.
func (c OnContent) Matches(core.DomainEvent) bool { return false }
