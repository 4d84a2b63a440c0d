package core

// Persona identifies one of the fixed set of agent identities the
// orchestrator can speak on behalf of. Entities reference personas by value;
// display metadata lives in the catalog package.
type Persona string

const (
	// PersonaMuse offers creative prompts and inspiration.
	PersonaMuse Persona = "muse"
	// PersonaCurator reviews and organizes generated work.
	PersonaCurator Persona = "curator"
	// PersonaArchitect advises on composition and structure.
	PersonaArchitect Persona = "architect"
	// PersonaPackager handles export and delivery workflows.
	PersonaPackager Persona = "packager"
	// PersonaHeritageGuide surfaces cultural context for source material.
	PersonaHeritageGuide Persona = "heritage_guide"
)

// AllPersonas returns the full persona set in canonical order. The slice is a
// fresh copy and safe for caller mutation.
func AllPersonas() []Persona {
	return []Persona{
		PersonaMuse,
		PersonaCurator,
		PersonaArchitect,
		PersonaPackager,
		PersonaHeritageGuide,
	}
}

// Valid reports whether p names a known persona.
func (p Persona) Valid() bool {
	switch p {
	case PersonaMuse, PersonaCurator, PersonaArchitect, PersonaPackager, PersonaHeritageGuide:
		return true
	}
	return false
}
