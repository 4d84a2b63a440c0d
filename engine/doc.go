// Package engine implements the proactive orchestration core of AgentPulse.
//
// The Engine is the central coordination hub that ingests domain events from
// the host application, evaluates the rate-limited trigger registry against
// them, emits templated persona messages to subscribers, and manages the
// lifecycle of messages, suggestions and the staged analysis pipeline.
//
// # Core Responsibilities
//
// Event Processing:
//   - HandleEvent walks the trigger registry in order and fires every
//     eligible match independently (registry order is the only tie-break)
//   - Persona enablement, trigger muting and cooldown gating happen before
//     any condition is evaluated
//   - The idle watchdog converts event silence into synthetic user_idle
//     events, rescheduling itself on every incoming event
//
// Message and Suggestion Lifecycle:
//   - Messages append through the state store with oldest-first eviction
//   - Read/dismiss mutations keep the unread invariant intact
//   - Suggestions are produced by the apply analysis pipeline and capped
//
// Action Execution:
//   - ExecuteAction interprets user responses (apply, preview, modify,
//     dismiss, snooze, never, custom) and never lets a failure escape as a
//     panic or error: every outcome is an ActionResult
//
// # Concurrency Model
//
// A single mutex serializes trigger evaluation, the idle watchdog's
// single-pending-timer invariant and last-activity tracking. State mutations
// go through the state.Store which carries its own lock; listener callbacks
// run outside all locks. The staged analysis deliberately does not hold the
// engine lock across its ticks, so concurrent apply executions overlap on the
// single global analysis flag.
//
// # Usage
//
//	orch := engine.New(func(o *engine.Options) {
//	    o.Logger = logger
//	    o.PrefsStore = fileStore
//	})
//	defer orch.Close()
//
//	unsub := orch.Subscribe(func(s core.State) { render(s) })
//	defer unsub()
//
//	orch.HandleEvent(core.NewDomainEvent(core.EventGenerationCompleted, nil))
package engine
