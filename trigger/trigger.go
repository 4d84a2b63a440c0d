package trigger

import (
	"time"

	"github.com/atelierhq/agentpulse/core"
)

// Trigger is a rate-limited rule mapping a condition over domain events to a
// message template (keyed by Type). Triggers are created once at process
// start and never deleted; the only mutable field is the last-fired
// timestamp, owned exclusively by the evaluator.
type Trigger struct {
	ID        string
	Type      string
	Persona   core.Persona
	Condition Condition
	Cooldown  time.Duration
	// Priority is descriptive metadata consumed by the UI for sorting and
	// badges. Evaluation never uses it.
	Priority int

	lastFired time.Time
}

// Eligible reports whether the cooldown window has elapsed. A trigger that
// has never fired is always eligible.
func (t *Trigger) Eligible(now time.Time) bool {
	if t.lastFired.IsZero() {
		return true
	}
	return now.Sub(t.lastFired) >= t.Cooldown
}

// MarkFired records a firing. The timestamp is monotonically non-decreasing:
// an earlier now than the recorded firing is ignored.
func (t *Trigger) MarkFired(now time.Time) {
	if now.After(t.lastFired) {
		t.lastFired = now
	}
}

// LastFired returns the most recent firing time, zero if never fired.
func (t *Trigger) LastFired() time.Time { return t.lastFired }
