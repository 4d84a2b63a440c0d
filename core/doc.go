// Package core provides the foundational domain types used by AgentPulse. It
// defines the core abstractions for:
//
//   - Personas (the fixed set of agent identities the engine speaks for)
//   - DomainEvents (ephemeral notifications from the host application)
//   - Messages and Suggestions (user-facing notifications with lifecycle)
//   - Actions (responses a user may take on a message)
//   - Preferences (per-user tuning of personas, muting and idle delay)
//   - State (the single aggregate snapshot the orchestrator publishes)
//
// The package intentionally keeps implementation concerns (persistence,
// trigger evaluation, the engine itself) out of scope, exposing plain value
// types plus small helpers so other packages can share contracts without
// dependency cycles.
package core
