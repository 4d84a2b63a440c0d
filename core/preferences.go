package core

import "time"

// DefaultAutoSuggestDelay is the idle watchdog delay used when no stored
// preference overrides it.
const DefaultAutoSuggestDelay = 30 * time.Second

// Preferences tunes which personas may speak, which trigger types are muted
// and how long the idle watchdog waits before synthesizing a user_idle event.
// It is a process-wide singleton loaded once at construction and persisted on
// every mutation.
type Preferences struct {
	EnabledPersonas   map[Persona]bool `json:"enabled_personas"`
	MutedTriggerTypes map[string]bool  `json:"muted_trigger_types"`
	AutoSuggestDelay  time.Duration    `json:"auto_suggest_delay"`
}

// DefaultPreferences enables every persona, mutes nothing and uses the
// default idle delay.
func DefaultPreferences() Preferences {
	enabled := make(map[Persona]bool, len(AllPersonas()))
	for _, p := range AllPersonas() {
		enabled[p] = true
	}
	return Preferences{
		EnabledPersonas:   enabled,
		MutedTriggerTypes: map[string]bool{},
		AutoSuggestDelay:  DefaultAutoSuggestDelay,
	}
}

// PersonaEnabled reports whether the persona may produce messages.
func (p Preferences) PersonaEnabled(persona Persona) bool {
	return p.EnabledPersonas[persona]
}

// TriggerMuted reports whether the trigger type is muted.
func (p Preferences) TriggerMuted(triggerType string) bool {
	return p.MutedTriggerTypes[triggerType]
}

// Clone returns a deep copy safe for independent mutation.
func (p Preferences) Clone() Preferences {
	cp := Preferences{
		EnabledPersonas:   make(map[Persona]bool, len(p.EnabledPersonas)),
		MutedTriggerTypes: make(map[string]bool, len(p.MutedTriggerTypes)),
		AutoSuggestDelay:  p.AutoSuggestDelay,
	}
	for k, v := range p.EnabledPersonas {
		cp.EnabledPersonas[k] = v
	}
	for k, v := range p.MutedTriggerTypes {
		cp.MutedTriggerTypes[k] = v
	}
	return cp
}

// PreferencesPatch is a partial preferences update. All fields are optional
// pointers / slices so absence can be distinguished from zero values; nil
// fields leave the current value untouched.
type PreferencesPatch struct {
	EnabledPersonas   []Persona      `json:"enabled_personas,omitempty"`
	MutedTriggerTypes []string       `json:"muted_trigger_types,omitempty"`
	AutoSuggestDelay  *time.Duration `json:"auto_suggest_delay,omitempty"`
}

// Apply merges the patch into a copy of the receiver and returns the result.
// Slice fields replace the corresponding set wholesale when non-nil.
func (p Preferences) Apply(patch PreferencesPatch) Preferences {
	next := p.Clone()
	if patch.EnabledPersonas != nil {
		next.EnabledPersonas = make(map[Persona]bool, len(patch.EnabledPersonas))
		for _, persona := range patch.EnabledPersonas {
			next.EnabledPersonas[persona] = true
		}
	}
	if patch.MutedTriggerTypes != nil {
		next.MutedTriggerTypes = make(map[string]bool, len(patch.MutedTriggerTypes))
		for _, t := range patch.MutedTriggerTypes {
			next.MutedTriggerTypes[t] = true
		}
	}
	if patch.AutoSuggestDelay != nil {
		next.AutoSuggestDelay = *patch.AutoSuggestDelay
	}
	return next
}
