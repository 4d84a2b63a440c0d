// Package prefs contains the preferences gateway and concrete key-value
// stores backing it.
//
// The canonical Store interface is a generic string KV contract so any
// durable backend (a file, sqlite, a config service) can be swapped without
// touching calling code. The Gateway layers the preferences record on top and
// absorbs all persistence failures: loads fall back to defaults, saves are
// log-only, and the in-memory state stays authoritative for the session.
package prefs
