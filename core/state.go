package core

const (
	// MaxMessages caps the live message list; the oldest entry is evicted
	// first once the cap is exceeded, regardless of read/dismissed flags.
	MaxMessages = 50
	// MaxSuggestions caps the suggestion list with the same eviction rule.
	MaxSuggestions = 10
)

// State is the single aggregate snapshot the orchestrator publishes to
// subscribers. Consumers receive deep copies and can never mutate the
// engine's own instance.
//
// Invariant: UnreadCount always equals the number of messages that are
// neither read nor dismissed. It is recomputed after every message mutation,
// never maintained incrementally.
type State struct {
	ActivePersona     Persona      `json:"active_persona,omitempty"`
	IsPanelOpen       bool         `json:"is_panel_open"`
	IsPresenceVisible bool         `json:"is_presence_visible"`
	Messages          []Message    `json:"messages"`
	UnreadCount       int          `json:"unread_count"`
	IsAnalyzing       bool         `json:"is_analyzing"`
	AnalysisProgress  int          `json:"analysis_progress"`
	Suggestions       []Suggestion `json:"suggestions"`
	Preferences       Preferences  `json:"preferences"`
}

// NewState returns an empty state carrying the given preferences and presence
// enabled.
func NewState(prefs Preferences) State {
	return State{
		IsPresenceVisible: true,
		Messages:          []Message{},
		Suggestions:       []Suggestion{},
		Preferences:       prefs,
	}
}

// Clone returns a deep copy of the state safe for independent mutation.
func (s State) Clone() State {
	cp := s
	cp.Messages = make([]Message, len(s.Messages))
	for i, m := range s.Messages {
		cp.Messages[i] = m.Clone()
	}
	cp.Suggestions = make([]Suggestion, len(s.Suggestions))
	for i, sg := range s.Suggestions {
		cp.Suggestions[i] = sg.Clone()
	}
	cp.Preferences = s.Preferences.Clone()
	return cp
}

// RecountUnread recomputes UnreadCount from the message list.
func (s *State) RecountUnread() {
	n := 0
	for _, m := range s.Messages {
		if !m.IsRead && !m.IsDismissed {
			n++
		}
	}
	s.UnreadCount = n
}

// FindMessage returns a pointer into the message list for in-place mutation,
// or nil when the id is unknown. Callers must hold whatever lock guards the
// state instance.
func (s *State) FindMessage(id string) *Message {
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			return &s.Messages[i]
		}
	}
	return nil
}
