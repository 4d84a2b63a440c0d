package engine

import (
	"time"

	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/trigger"
)

// HandleEvent ingests one domain event: it records activity for the idle
// watchdog, reschedules the watchdog timer, then evaluates every registry
// trigger in order. Each eligible, matching trigger fires independently and
// produces at most one message; there is no batching or priority suppression.
//
// A trigger's cooldown is consumed even when its template yields no message,
// so a broken template can never hot-loop.
func (e *Engine) HandleEvent(ev core.DomainEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = e.clock.Now()
	}
	prefs := e.store.Snapshot().Preferences

	e.mu.Lock()
	e.lastActivity = ev.Timestamp
	e.rescheduleIdleLocked(prefs.AutoSuggestDelay)

	now := e.clock.Now()
	var fired []*trigger.Trigger
	for _, t := range e.registry.All() {
		if !prefs.PersonaEnabled(t.Persona) {
			continue
		}
		if prefs.TriggerMuted(t.Type) {
			continue
		}
		if !t.Eligible(now) {
			continue
		}
		if !t.Condition.Matches(ev) {
			continue
		}
		t.MarkFired(now)
		fired = append(fired, t)
	}
	e.mu.Unlock()

	for _, t := range fired {
		msg := e.factory.Build(t, ev)
		e.logger.Debug("trigger fired",
			"trigger_id", t.ID,
			"trigger_type", t.Type,
			"persona", string(t.Persona),
			"message_produced", msg != nil,
		)
		if msg == nil {
			continue
		}
		e.store.AddMessage(*msg)
	}
}

// rescheduleIdleLocked cancels any pending idle timer and schedules a fresh
// one. The generation counter makes a timer that raced its own cancellation a
// no-op, so at most one pending timer is ever live. Caller holds e.mu.
func (e *Engine) rescheduleIdleLocked(delay time.Duration) {
	if e.closed {
		return
	}
	e.idleGen++
	gen := e.idleGen
	if e.idleTimer != nil {
		e.idleTimer.Stop()
	}
	if delay <= 0 {
		delay = core.DefaultAutoSuggestDelay
	}
	e.idleTimer = e.clock.AfterFunc(delay, func() { e.onIdle(gen) })
}

// onIdle synthesizes the watchdog's user_idle event and feeds it back into
// HandleEvent, which reschedules the watchdog again. The loop never stops on
// its own; only Close ends it.
func (e *Engine) onIdle(gen int) {
	e.mu.Lock()
	if gen != e.idleGen || e.closed {
		e.mu.Unlock()
		return
	}
	now := e.clock.Now()
	idle := now.Sub(e.lastActivity)
	e.mu.Unlock()

	e.HandleEvent(core.NewIdleEvent(idle, now))
}
