package trigger

import (
	"time"

	"github.com/atelierhq/agentpulse/core"
)

// Well-known trigger types consumed by the message factory. New types are
// added here and in the factory's template table; the evaluator stays
// untouched.
const (
	TypeEmptyCanvas      = "empty_canvas"
	TypeLongPause        = "long_pause"
	TypePostGeneration   = "post_generation"
	TypeErrorOccurred    = "error_occurred"
	TypeWorkflowComplete = "workflow_complete"
	TypeCulturalContext  = "cultural_context"
	TypePaletteDrift     = "palette_drift"
)

// Registry is the static, ordered catalog of triggers. It carries no behavior
// of its own; the evaluator walks it in insertion order.
type Registry struct {
	triggers []*Trigger
}

// NewRegistry builds a registry preserving the given order.
func NewRegistry(triggers ...*Trigger) *Registry {
	return &Registry{triggers: triggers}
}

// All returns the triggers in registration order. The slice is a snapshot
// copy; the pointed-to triggers are shared.
func (r *Registry) All() []*Trigger {
	out := make([]*Trigger, len(r.triggers))
	copy(out, r.triggers)
	return out
}

// Len returns the number of registered triggers.
func (r *Registry) Len() int { return len(r.triggers) }

// Default returns the built-in trigger catalog. Cooldowns are long enough
// that a persona never badgers the user about the same thing twice in a
// session burst.
func Default() *Registry {
	return NewRegistry(
		&Trigger{
			ID:        "muse-empty-canvas",
			Type:      TypeEmptyCanvas,
			Persona:   core.PersonaMuse,
			Condition: OnEvent{Kind: core.EventCanvasEmpty},
			Cooldown:  5 * time.Minute,
			Priority:  3,
		},
		&Trigger{
			ID:        "muse-long-pause",
			Type:      TypeLongPause,
			Persona:   core.PersonaMuse,
			Condition: OnIdle{Threshold: 2 * time.Minute},
			Cooldown:  10 * time.Minute,
			Priority:  1,
		},
		&Trigger{
			ID:        "curator-post-generation",
			Type:      TypePostGeneration,
			Persona:   core.PersonaCurator,
			Condition: OnEvent{Kind: core.EventGenerationCompleted},
			Cooldown:  3 * time.Minute,
			Priority:  2,
		},
		&Trigger{
			ID:        "architect-error",
			Type:      TypeErrorOccurred,
			Persona:   core.PersonaArchitect,
			Condition: OnEvent{Kind: core.EventGenerationFailed},
			Cooldown:  time.Minute,
			Priority:  4,
		},
		&Trigger{
			ID:        "packager-workflow-complete",
			Type:      TypeWorkflowComplete,
			Persona:   core.PersonaPackager,
			Condition: OnEvent{Kind: core.EventWorkflowCompleted},
			Cooldown:  5 * time.Minute,
			Priority:  2,
		},
		&Trigger{
			ID:        "heritage-cultural-context",
			Type:      TypeCulturalContext,
			Persona:   core.PersonaHeritageGuide,
			Condition: OnContent{Params: map[string]any{"needs": "source_material_tags"}},
			Cooldown:  15 * time.Minute,
			Priority:  1,
		},
		&Trigger{
			ID:        "curator-palette-drift",
			Type:      TypePaletteDrift,
			Persona:   core.PersonaCurator,
			Condition: OnState{Params: map[string]any{"needs": "canvas_palette_histogram"}},
			Cooldown:  10 * time.Minute,
			Priority:  1,
		},
	)
}
