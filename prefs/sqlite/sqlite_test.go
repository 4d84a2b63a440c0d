package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atelierhq/agentpulse/prefs"
)

// Interface compliance (compile-time assertion)
var _ prefs.Store = (*Store)(nil)

func TestStore_RoundTrip(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.Get("missing"); !errors.Is(err, prefs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatal(err)
	}

	v, err := s.Get("k")
	if err != nil || v != "v2" {
		t.Fatalf("expected upserted value v2, got %q, %v", v, err)
	}
}
