package template

import (
	"strings"
	"testing"

	"github.com/atelierhq/agentpulse/catalog"
	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/trigger"
)

func TestFactory_BuildCoversDefaultRegistry(t *testing.T) {
	f := NewFactory(catalog.Default())
	ev := core.NewDomainEvent(core.EventCanvasEmpty, nil)

	for _, tr := range trigger.Default().All() {
		msg := f.Build(tr, ev)
		if msg == nil {
			t.Errorf("no template for registered trigger type %q", tr.Type)
			continue
		}
		if msg.ID == "" || msg.Title == "" || msg.Body == "" {
			t.Errorf("trigger %q produced an incomplete message", tr.Type)
		}
		if msg.Persona != tr.Persona {
			t.Errorf("trigger %q: message persona %q != trigger persona %q", tr.Type, msg.Persona, tr.Persona)
		}
		primaries := 0
		for _, a := range msg.Actions {
			if a.ID == "" {
				t.Errorf("trigger %q: action without id", tr.Type)
			}
			if a.IsPrimary {
				primaries++
			}
		}
		if primaries != 1 {
			t.Errorf("trigger %q: expected exactly one primary action, got %d", tr.Type, primaries)
		}
		if msg.Context["trigger_type"] != tr.Type {
			t.Errorf("trigger %q: context missing trigger type", tr.Type)
		}
	}
}

func TestFactory_TitleInterpolatesPersonaName(t *testing.T) {
	cat := catalog.Default()
	f := NewFactory(cat)
	tr := trigger.Default().All()[0]

	msg := f.Build(tr, core.NewDomainEvent(core.EventCanvasEmpty, nil))
	if msg == nil {
		t.Fatal("expected a message")
	}
	want := cat.DisplayName(tr.Persona)
	if !strings.Contains(msg.Title, want) {
		t.Errorf("title %q does not mention persona %q", msg.Title, want)
	}
}

func TestFactory_UnknownTriggerTypeYieldsNil(t *testing.T) {
	f := NewFactory(catalog.Default())
	tr := &trigger.Trigger{ID: "x", Type: "not_a_real_type", Persona: core.PersonaMuse}
	if msg := f.Build(tr, core.NewDomainEvent(core.EventCanvasEmpty, nil)); msg != nil {
		t.Fatalf("expected nil for unknown trigger type, got %+v", msg)
	}
}

func TestFactory_BuildSuggestion(t *testing.T) {
	f := NewFactory(catalog.Default())

	for _, persona := range core.AllPersonas() {
		sg := f.BuildSuggestion(persona)
		if sg.ID == "" || sg.Title == "" || sg.Description == "" {
			t.Errorf("persona %q produced an incomplete suggestion", persona)
		}
		if sg.Persona != persona {
			t.Errorf("suggestion persona mismatch: %q", sg.Persona)
		}
		if sg.Confidence < 0 || sg.Confidence > 1 {
			t.Errorf("persona %q confidence out of range: %v", persona, sg.Confidence)
		}
	}

	// Unknown personas fall back to the generic template.
	sg := f.BuildSuggestion(core.Persona("apprentice"))
	if sg == nil || sg.Title == "" {
		t.Fatal("expected a generic fallback suggestion")
	}
}
