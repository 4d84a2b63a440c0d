package trigger

import (
	"testing"
	"time"

	"github.com/atelierhq/agentpulse/core"
)

func TestConditions_Match(t *testing.T) {
	ev := core.NewDomainEvent(core.EventGenerationCompleted, nil)

	if !(OnEvent{Kind: core.EventGenerationCompleted}).Matches(ev) {
		t.Error("OnEvent should match its own kind")
	}
	if (OnEvent{Kind: core.EventCanvasEmpty}).Matches(ev) {
		t.Error("OnEvent should not match another kind")
	}

	idle := core.NewIdleEvent(3*time.Minute, time.Now())
	if !(OnIdle{Threshold: 2 * time.Minute}).Matches(idle) {
		t.Error("OnIdle should match when idle time meets threshold")
	}
	if (OnIdle{Threshold: 5 * time.Minute}).Matches(idle) {
		t.Error("OnIdle should not match below threshold")
	}
	if (OnIdle{Threshold: 0}).Matches(ev) {
		t.Error("OnIdle should not match non-idle events")
	}

	// Host-state variants are explicit no-ops.
	if (OnState{}).Matches(ev) || (OnContent{}).Matches(idle) {
		t.Error("stub conditions must never match")
	}
}

func TestTrigger_CooldownGating(t *testing.T) {
	now := time.Now()
	tr := &Trigger{ID: "t", Type: TypePostGeneration, Cooldown: time.Minute}

	if !tr.Eligible(now) {
		t.Fatal("never-fired trigger must be eligible")
	}
	tr.MarkFired(now)
	if tr.Eligible(now.Add(30 * time.Second)) {
		t.Error("trigger inside cooldown window must be ineligible")
	}
	if !tr.Eligible(now.Add(time.Minute)) {
		t.Error("trigger must be eligible once the cooldown elapsed")
	}
}

func TestTrigger_MarkFiredMonotonic(t *testing.T) {
	now := time.Now()
	tr := &Trigger{ID: "t", Cooldown: time.Minute}
	tr.MarkFired(now)
	tr.MarkFired(now.Add(-time.Hour))
	if !tr.LastFired().Equal(now) {
		t.Errorf("lastFired regressed to %v", tr.LastFired())
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	if reg.Len() == 0 {
		t.Fatal("default registry is empty")
	}

	byType := map[string]*Trigger{}
	for _, tr := range reg.All() {
		if tr.ID == "" || tr.Type == "" || tr.Condition == nil || tr.Cooldown <= 0 {
			t.Errorf("trigger %q is incomplete", tr.ID)
		}
		if !tr.Persona.Valid() {
			t.Errorf("trigger %q references unknown persona %q", tr.ID, tr.Persona)
		}
		byType[tr.Type] = tr
	}
	for _, want := range []string{
		TypeEmptyCanvas, TypeLongPause, TypePostGeneration,
		TypeErrorOccurred, TypeWorkflowComplete, TypeCulturalContext,
	} {
		if byType[want] == nil {
			t.Errorf("missing default trigger type %q", want)
		}
	}
}

func TestRegistry_AllIsSnapshot(t *testing.T) {
	reg := Default()
	all := reg.All()
	all[0] = nil
	if reg.All()[0] == nil {
		t.Error("All should return a copied slice")
	}
}
