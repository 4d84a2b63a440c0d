// Package state owns the single mutable orchestrator snapshot plus its two
// independent publish/subscribe channels (state-changed and message-created).
// All other components mutate through the Store; consumers only ever see deep
// copies.
//
// Listener invocation is synchronous with the mutating call and follows
// insertion order, but each listener runs inside a recover so one faulty
// subscriber cannot block notification of the rest.
package state
