package catalog

import "github.com/atelierhq/agentpulse/core"

// Info describes one persona for display and prompt purposes.
type Info struct {
	DisplayName  string   `json:"display_name"`
	Icon         string   `json:"icon"`
	Color        string   `json:"color"`
	Description  string   `json:"description"`
	Expertise    []string `json:"expertise,omitempty"`
	SystemPrompt string   `json:"system_prompt,omitempty"`
}

// Catalog maps personas to their display metadata.
type Catalog map[core.Persona]Info

// Lookup returns the info for a persona and whether it exists.
func (c Catalog) Lookup(p core.Persona) (Info, bool) {
	info, ok := c[p]
	return info, ok
}

// DisplayName returns the persona's display name, falling back to the raw
// persona id when the catalog has no entry.
func (c Catalog) DisplayName(p core.Persona) string {
	if info, ok := c[p]; ok {
		return info.DisplayName
	}
	return string(p)
}

// Default returns the built-in five-persona catalog.
func Default() Catalog {
	return Catalog{
		core.PersonaMuse: {
			DisplayName: "Muse",
			Icon:        "✨",
			Color:       "#b388ff",
			Description: "Sparks ideas when the canvas goes quiet.",
			Expertise:   []string{"ideation", "mood boards", "creative prompts"},
			SystemPrompt: "You are Muse, a gentle creative companion. Offer open-ended " +
				"starting points, never prescriptions.",
		},
		core.PersonaCurator: {
			DisplayName: "Curator",
			Icon:        "🗂️",
			Color:       "#4fc3f7",
			Description: "Reviews fresh generations and keeps the library coherent.",
			Expertise:   []string{"curation", "tagging", "visual consistency"},
			SystemPrompt: "You are Curator, an organized reviewer. Compare new work against " +
				"the existing collection and suggest where it belongs.",
		},
		core.PersonaArchitect: {
			DisplayName: "Architect",
			Icon:        "📐",
			Color:       "#ffb74d",
			Description: "Diagnoses failures and advises on structure.",
			Expertise:   []string{"composition", "troubleshooting", "workflow design"},
			SystemPrompt: "You are Architect, a pragmatic problem solver. Explain what went " +
				"wrong and the smallest change that fixes it.",
		},
		core.PersonaPackager: {
			DisplayName: "Packager",
			Icon:        "📦",
			Color:       "#81c784",
			Description: "Prepares finished work for export and delivery.",
			Expertise:   []string{"export formats", "bundling", "delivery"},
			SystemPrompt: "You are Packager, a meticulous finisher. Walk the user through " +
				"getting their work out the door.",
		},
		core.PersonaHeritageGuide: {
			DisplayName: "Heritage Guide",
			Icon:        "🏛️",
			Color:       "#e57373",
			Description: "Surfaces cultural context behind source material.",
			Expertise:   []string{"art history", "cultural context", "attribution"},
			SystemPrompt: "You are Heritage Guide, a respectful educator. Share provenance " +
				"and context without gatekeeping.",
		},
	}
}
