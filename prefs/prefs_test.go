package prefs

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/logging"
)

// Interface compliance (compile-time assertions)
var (
	_ Store = (*InMemoryStore)(nil)
	_ Store = (*FileStore)(nil)
)

func TestInMemoryStore_GetSet(t *testing.T) {
	s := NewInMemoryStore()
	if _, err := s.Get("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	v, err := s.Get("k")
	if err != nil || v != "v" {
		t.Fatalf("got %q, %v", v, err)
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s1, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s1.Set("k", "v"); err != nil {
		t.Fatal(err)
	}

	s2, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	v, err := s2.Get("k")
	if err != nil || v != "v" {
		t.Fatalf("reopened store: got %q, %v", v, err)
	}
}

func TestGateway_RoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	g := NewGateway(store, logging.NoOpLogger{})

	prefs := core.DefaultPreferences()
	prefs.EnabledPersonas[core.PersonaMuse] = false
	prefs.MutedTriggerTypes["long_pause"] = true
	prefs.AutoSuggestDelay = 45 * time.Second
	g.Save(prefs)

	loaded := g.Load()
	if loaded.PersonaEnabled(core.PersonaMuse) {
		t.Error("muse should stay disabled after round trip")
	}
	if !loaded.PersonaEnabled(core.PersonaCurator) {
		t.Error("curator should stay enabled")
	}
	if !loaded.TriggerMuted("long_pause") {
		t.Error("mute lost in round trip")
	}
	if loaded.AutoSuggestDelay != 45*time.Second {
		t.Errorf("delay lost in round trip: %v", loaded.AutoSuggestDelay)
	}
}

// brokenStore fails every operation to exercise the gateway's fallbacks.
type brokenStore struct{}

func (brokenStore) Get(string) (string, error) { return "", fmt.Errorf("backend unavailable") }
func (brokenStore) Set(string, string) error   { return fmt.Errorf("backend unavailable") }

func TestGateway_LoadFallsBackToDefaults(t *testing.T) {
	g := NewGateway(brokenStore{}, logging.NoOpLogger{})
	loaded := g.Load()
	defaults := core.DefaultPreferences()
	if loaded.AutoSuggestDelay != defaults.AutoSuggestDelay {
		t.Error("expected default delay on load failure")
	}
	for _, p := range core.AllPersonas() {
		if !loaded.PersonaEnabled(p) {
			t.Errorf("expected persona %q enabled by default", p)
		}
	}
}

func TestGateway_SaveFailureIsNonFatal(t *testing.T) {
	g := NewGateway(brokenStore{}, logging.NoOpLogger{})
	// Must not panic or return anything; the in-memory state stays authoritative.
	g.Save(core.DefaultPreferences())
}

func TestGateway_MalformedRecordFallsBack(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Set(PreferencesKey, "{not json"); err != nil {
		t.Fatal(err)
	}
	g := NewGateway(store, logging.NoOpLogger{})
	loaded := g.Load()
	if !loaded.PersonaEnabled(core.PersonaMuse) {
		t.Error("malformed record should yield defaults")
	}
}
