package template

import (
	"fmt"
	"time"

	"github.com/atelierhq/agentpulse/core"
)

// suggestionTemplate is one row of the per-persona suggestion table used by
// the apply analysis pipeline.
type suggestionTemplate struct {
	title       string
	description string
	confidence  float64
	actions     []actionSpec
}

var suggestionTemplates = map[core.Persona]suggestionTemplate{
	core.PersonaMuse: {
		title:       "Three directions worth exploring",
		description: "Seed prompts drawn from your most-revisited collections, ordered by novelty.",
		confidence:  0.72,
		actions: []actionSpec{
			{label: "Place on canvas", kind: core.ActionApply, isPrimary: true},
			{label: "Shuffle", kind: core.ActionModify},
		},
	},
	core.PersonaCurator: {
		title:       "Suggested placement and tags",
		description: "This piece sits closest to your 'night studies' group; three tags would make it findable.",
		confidence:  0.81,
		actions: []actionSpec{
			{label: "Apply tags", kind: core.ActionApply, isPrimary: true},
			{label: "Preview grouping", kind: core.ActionPreview},
		},
	},
	core.PersonaArchitect: {
		title:       "Likely cause and a fix",
		description: "The failure pattern matches an over-constrained style stack; dropping the last preset should clear it.",
		confidence:  0.77,
		actions: []actionSpec{
			{label: "Apply fix", kind: core.ActionApply, isPrimary: true},
			{
				label:   "Retry with fix",
				kind:    core.ActionCustom,
				payload: map[string]any{"action": "retry"},
			},
		},
	},
	core.PersonaPackager: {
		title:       "Export bundle ready to configure",
		description: "A bundle covering the finished workflow outputs, with formats matched to each asset type.",
		confidence:  0.85,
		actions: []actionSpec{
			{
				label:     "Configure export",
				kind:      core.ActionCustom,
				isPrimary: true,
				payload:   map[string]any{"action": "export"},
			},
		},
	},
	core.PersonaHeritageGuide: {
		title:       "Context note prepared",
		description: "A short provenance note with attribution guidance for the source material in view.",
		confidence:  0.7,
		actions: []actionSpec{
			{label: "Attach note", kind: core.ActionApply, isPrimary: true},
		},
	},
}

// BuildSuggestion renders the analysis outcome for a persona. Personas
// without a dedicated template get a generic entry so the pipeline always
// produces exactly one suggestion.
func (f *Factory) BuildSuggestion(persona core.Persona) *core.Suggestion {
	tpl, ok := suggestionTemplates[persona]
	if !ok {
		tpl = suggestionTemplate{
			title:       fmt.Sprintf("A thought from %s", f.catalog.DisplayName(persona)),
			description: "Analysis finished; review the findings in the panel.",
			confidence:  0.5,
			actions: []actionSpec{
				{label: "Open panel", kind: core.ActionModify, isPrimary: true},
			},
		}
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
	return &core.Suggestion{
		ID:          core.NewID(),
		Persona:     persona,
		Title:       tpl.title,
		Description: tpl.description,
		Confidence:  tpl.confidence,
		Actions:     actions,
		CreatedAt:   time.Now().UTC(),
	}
}
