package prefs

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/logging"
)

// PreferencesKey is the KV key under which the preferences record is stored.
const PreferencesKey = "agentpulse.preferences"

// record is the wire shape of persisted preferences. Durations travel as
// milliseconds so the stored form stays readable and language-neutral.
type record struct {
	EnabledPersonas    []string `json:"enabled_personas"`
	MutedTriggerTypes  []string `json:"muted_trigger_types"`
	AutoSuggestDelayMs int64    `json:"auto_suggest_delay_ms"`
}

// Gateway is the synchronous load/save bridge between the engine and a Store.
// Persistence failures are never fatal: Load falls back to defaults and Save
// only logs, leaving the in-memory state authoritative for the session.
type Gateway struct {
	store  Store
	logger logging.Logger
}

// NewGateway creates a gateway over the given store. A nil logger means
// silent operation.
func NewGateway(store Store, logger logging.Logger) *Gateway {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Gateway{store: store, logger: logger}
}

// Load reads the stored preferences, returning defaults when nothing is
// stored or the record cannot be read or parsed.
func (g *Gateway) Load() core.Preferences {
	raw, err := g.store.Get(PreferencesKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.logger.Warn("preferences load failed, using defaults", "error", err)
		}
		return core.DefaultPreferences()
	}
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		g.logger.Warn("preferences record malformed, using defaults", "error", err)
		return core.DefaultPreferences()
	}
	prefs := core.Preferences{
		EnabledPersonas:   make(map[core.Persona]bool, len(rec.EnabledPersonas)),
		MutedTriggerTypes: make(map[string]bool, len(rec.MutedTriggerTypes)),
		AutoSuggestDelay:  time.Duration(rec.AutoSuggestDelayMs) * time.Millisecond,
	}
	for _, p := range rec.EnabledPersonas {
		prefs.EnabledPersonas[core.Persona(p)] = true
	}
	for _, t := range rec.MutedTriggerTypes {
		prefs.MutedTriggerTypes[t] = true
	}
	if prefs.AutoSuggestDelay <= 0 {
		prefs.AutoSuggestDelay = core.DefaultAutoSuggestDelay
	}
	return prefs
}

// Save persists the preferences. Failures are logged and swallowed.
func (g *Gateway) Save(prefs core.Preferences) {
	rec := record{
		EnabledPersonas:    make([]string, 0, len(prefs.EnabledPersonas)),
		MutedTriggerTypes:  make([]string, 0, len(prefs.MutedTriggerTypes)),
		AutoSuggestDelayMs: prefs.AutoSuggestDelay.Milliseconds(),
	}
	for _, p := range core.AllPersonas() {
		if prefs.EnabledPersonas[p] {
			rec.EnabledPersonas = append(rec.EnabledPersonas, string(p))
		}
	}
	for t, muted := range prefs.MutedTriggerTypes {
		if muted {
			rec.MutedTriggerTypes = append(rec.MutedTriggerTypes, t)
		}
	}
	sort.Strings(rec.MutedTriggerTypes)
	data, err := json.Marshal(rec)
	if err != nil {
		g.logger.Warn("preferences encode failed, keeping in-memory copy", "error", err)
		return
	}
	if err := g.store.Set(PreferencesKey, string(data)); err != nil {
		g.logger.Warn("preferences save failed, keeping in-memory copy", "error", err)
	}
}
