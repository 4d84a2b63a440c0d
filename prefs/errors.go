package prefs

import "fmt"

var (
	// ErrNotFound is returned when a key does not exist in the underlying
	// store.
	ErrNotFound = fmt.Errorf("preference key not found")
)
