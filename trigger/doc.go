// Package trigger defines the rate-limited rules that map domain events to
// message templates. A Trigger pairs a Condition (the tagged variant deciding
// whether an event matches) with a cooldown that gates re-firing and the
// persona that owns the resulting message.
//
// The Registry is an immutable, ordered catalog built once at process start.
// Registry order is the only evaluation tie-break; the Priority field is
// descriptive metadata for the UI and never suppresses other matches.
package trigger
