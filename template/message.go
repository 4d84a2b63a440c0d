package template

import (
	"fmt"
	"time"

	"github.com/atelierhq/agentpulse/catalog"
	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/trigger"
)

// Factory turns fired triggers into messages and completed analyses into
// suggestions, interpolating persona metadata from the catalog. It holds no
// mutable state and is safe for concurrent use.
type Factory struct {
	catalog catalog.Catalog
}

// NewFactory creates a factory over the given persona catalog.
func NewFactory(c catalog.Catalog) *Factory {
	return &Factory{catalog: c}
}

// actionSpec describes one action inside a messageTemplate. IDs are assigned
// at build time so every rendered message carries fresh action ids.
type actionSpec struct {
	label     string
	kind      core.ActionKind
	isPrimary bool
	payload   map[string]any
}

// messageTemplate is one row of the trigger-type table.
type messageTemplate struct {
	kind    core.MessageKind
	title   string // fmt pattern; %s receives the persona display name
	body    string
	actions []actionSpec
}

// messageTemplates maps trigger types to their fixed templates. Adding a new
// trigger type means adding a row here plus a registry entry; the evaluator
// never changes.
var messageTemplates = map[string]messageTemplate{
	trigger.TypeEmptyCanvas: {
		kind:  core.MessageSuggestion,
		title: "%s has a starting point for you",
		body: "A blank canvas can be the hardest part. Want a few seed ideas " +
			"based on your recent collections?",
		actions: []actionSpec{
			{label: "Show me", kind: core.ActionApply, isPrimary: true},
			{label: "Preview", kind: core.ActionPreview},
			{label: "Not now", kind: core.ActionDismiss},
		},
	},
	trigger.TypeLongPause: {
		kind:  core.MessageSuggestion,
		title: "%s noticed a quiet moment",
		body: "You've been away from the canvas for a while. Shall I line up " +
			"a warm-up exercise to get back into flow?",
		actions: []actionSpec{
			{label: "Let's go", kind: core.ActionApply, isPrimary: true},
			{label: "Snooze", kind: core.ActionSnooze},
			{label: "Don't suggest this", kind: core.ActionNever},
		},
	},
	trigger.TypePostGeneration: {
		kind:  core.MessageRecommendation,
		title: "%s reviewed your new generation",
		body: "The latest result is in. I can compare it against your library " +
			"and suggest where it fits best.",
		actions: []actionSpec{
			{label: "Analyze fit", kind: core.ActionApply, isPrimary: true},
			{label: "Adjust settings", kind: core.ActionModify},
			{label: "Dismiss", kind: core.ActionDismiss},
		},
	},
	trigger.TypeErrorOccurred: {
		kind:  core.MessageRecommendation,
		title: "%s spotted the failure",
		body: "That generation didn't make it through. I can look at the " +
			"settings and point at the likely culprit.",
		actions: []actionSpec{
			{label: "Diagnose", kind: core.ActionApply, isPrimary: true},
			{
				label:   "Retry as-is",
				kind:    core.ActionCustom,
				payload: map[string]any{"action": "retry"},
			},
			{label: "Dismiss", kind: core.ActionDismiss},
		},
	},
	trigger.TypeWorkflowComplete: {
		kind:  core.MessageSuggestion,
		title: "%s can wrap this up",
		body: "Your workflow finished. Ready to bundle the results for " +
			"export?",
		actions: []actionSpec{
			{
				label:     "Export bundle",
				kind:      core.ActionCustom,
				isPrimary: true,
				payload:   map[string]any{"action": "export"},
			},
			{label: "Review first", kind: core.ActionApply},
			{label: "Later", kind: core.ActionSnooze},
		},
	},
	trigger.TypeCulturalContext: {
		kind:  core.MessageEducation,
		title: "%s has background on this material",
		body: "The source material you're working with has a story. Would you " +
			"like a short note on its origins and attribution?",
		actions: []actionSpec{
			{label: "Tell me", kind: core.ActionApply, isPrimary: true},
			{label: "Not now", kind: core.ActionDismiss},
			{label: "Don't suggest this", kind: core.ActionNever},
		},
	},
	trigger.TypePaletteDrift: {
		kind:  core.MessageRecommendation,
		title: "%s sees the palette drifting",
		body: "Recent cards are moving away from your collection's palette. " +
			"I can propose a harmonizing pass.",
		actions: []actionSpec{
			{label: "Harmonize", kind: core.ActionApply, isPrimary: true},
			{label: "Preview", kind: core.ActionPreview},
			{label: "Dismiss", kind: core.ActionDismiss},
		},
	},
}

// Build renders the message for a fired trigger, or nil when no template
// exists for the trigger type. A nil return is a defensive no-op, not an
// error; the caller still consumes the trigger's cooldown.
func (f *Factory) Build(t *trigger.Trigger, ev core.DomainEvent) *core.Message {
	tpl, ok := messageTemplates[t.Type]
	if !ok {
		return nil
	}
	actions := make([]core.Action, len(tpl.actions))
	for i, spec := range tpl.actions {
		actions[i] = core.Action{
			ID:        core.NewID(),
			Label:     spec.label,
			IsPrimary: spec.isPrimary,
			Kind:      spec.kind,
			Payload:   spec.payload,
		}
	}
	context := map[string]any{
		"trigger_id":   t.ID,
		"trigger_type": t.Type,
		"event_kind":   string(ev.Kind),
	}
	for k, v := range ev.Payload {
		context[k] = v
	}
	return &core.Message{
		ID:        core.NewID(),
		Persona:   t.Persona,
		Kind:      tpl.kind,
		Title:     fmt.Sprintf(tpl.title, f.catalog.DisplayName(t.Persona)),
		Body:      tpl.body,
		Timestamp: time.Now().UTC(),
		Actions:   actions,
		Context:   context,
	}
}
