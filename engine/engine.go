package engine

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/atelierhq/agentpulse/catalog"
	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/logging"
	"github.com/atelierhq/agentpulse/prefs"
	"github.com/atelierhq/agentpulse/state"
	"github.com/atelierhq/agentpulse/template"
	"github.com/atelierhq/agentpulse/trigger"
)

// Config defines tuning parameters for the engine's operational behavior.
//
// The defaults run the analysis pipeline as ten ticks of 100ms each,
// advancing progress from 0 to 100 inclusive with a state notification per
// tick. Tests shrink the tick to run fast.
type Config struct {
	// AnalysisSteps is the number of progress ticks in one apply execution.
	AnalysisSteps int

	// AnalysisTick is the delay between progress ticks.
	AnalysisTick time.Duration
}

// DefaultConfig provides the standard pipeline timing.
var DefaultConfig = Config{
	AnalysisSteps: 10,
	AnalysisTick:  100 * time.Millisecond,
}

// Options configures an Engine instance using the functional options pattern.
// All fields have in-memory / no-op defaults so a bare New() is usable in
// tests and examples.
type Options struct {
	// Config contains operational parameters for the engine behavior.
	// Defaults to DefaultConfig if not specified.
	Config Config

	// Registry is the static trigger catalog evaluated against every event.
	// Defaults to the built-in registry.
	Registry *trigger.Registry

	// Catalog supplies persona display metadata for message interpolation.
	// Defaults to the built-in five-persona catalog.
	Catalog catalog.Catalog

	// PrefsStore is the durable key-value collaborator behind the
	// preferences gateway. Defaults to an in-memory store.
	PrefsStore prefs.Store

	// Logger provides structured logging. Defaults to NoOp if nil.
	Logger logging.Logger

	// Clock supplies time and timers so tests can control both.
	// Defaults to the real clock.
	Clock clockwork.Clock
}

// Engine is the orchestrator instance. Construct it once at process start
// with New and share it; all methods are safe for concurrent use.
type Engine struct {
	cfg      Config
	registry *trigger.Registry
	factory  *template.Factory
	gateway  *prefs.Gateway
	store    *state.Store
	clock    clockwork.Clock
	logger   logging.Logger

	mu           sync.Mutex
	lastActivity time.Time
	idleTimer    clockwork.Timer
	idleGen      int
	closed       bool
}

// New creates an Engine, loading preferences through the gateway. A failed
// load falls back to defaults inside the gateway; construction never fails.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config:     DefaultConfig,
		Registry:   trigger.Default(),
		Catalog:    catalog.Default(),
		PrefsStore: prefs.NewInMemoryStore(),
		Logger:     logging.NoOpLogger{},
		Clock:      clockwork.NewRealClock(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Config.AnalysisSteps <= 0 {
		opts.Config.AnalysisSteps = DefaultConfig.AnalysisSteps
	}
	if opts.Config.AnalysisTick <= 0 {
		opts.Config.AnalysisTick = DefaultConfig.AnalysisTick
	}

	gateway := prefs.NewGateway(opts.PrefsStore, opts.Logger)
	loaded := gateway.Load()

	return &Engine{
		cfg:          opts.Config,
		registry:     opts.Registry,
		factory:      template.NewFactory(opts.Catalog),
		gateway:      gateway,
		store:        state.NewStore(core.NewState(loaded), opts.Logger),
		clock:        opts.Clock,
		logger:       opts.Logger,
		lastActivity: opts.Clock.Now(),
	}
}

// GetState returns a deep-copied snapshot of the orchestrator state.
func (e *Engine) GetState() core.State { return e.store.Snapshot() }

// Subscribe registers a state listener invoked after every mutation.
// The returned function unsubscribes it.
func (e *Engine) Subscribe(fn func(core.State)) func() {
	return e.store.Subscribe(fn)
}

// SubscribeMessages registers a listener invoked with each newly created
// message. The returned function unsubscribes it.
func (e *Engine) SubscribeMessages(fn func(core.Message)) func() {
	return e.store.SubscribeMessages(fn)
}

// OpenPanel opens the panel, optionally switching the active persona. Passing
// the zero persona keeps the current one.
func (e *Engine) OpenPanel(persona core.Persona) {
	e.store.Update(func(s *core.State) {
		s.IsPanelOpen = true
		if persona != "" {
			s.ActivePersona = persona
		}
	})
}

// ClosePanel closes the panel.
func (e *Engine) ClosePanel() {
	e.store.Update(func(s *core.State) { s.IsPanelOpen = false })
}

// SetActivePersona switches the active persona without touching the panel.
func (e *Engine) SetActivePersona(persona core.Persona) {
	e.store.Update(func(s *core.State) { s.ActivePersona = persona })
}

// SetPresenceVisible toggles the persona presence indicator.
func (e *Engine) SetPresenceVisible(visible bool) {
	e.store.Update(func(s *core.State) { s.IsPresenceVisible = visible })
}

// AddMessage appends a host-created message directly, filling in an ID and
// timestamp when absent. Returns the stored message.
func (e *Engine) AddMessage(msg core.Message) core.Message {
	if msg.ID == "" {
		msg.ID = core.NewID()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = e.clock.Now()
	}
	e.store.AddMessage(msg)
	return msg
}

// MarkRead marks the message read. Unknown ids are ignored.
func (e *Engine) MarkRead(messageID string) {
	e.store.Update(func(s *core.State) {
		if m := s.FindMessage(messageID); m != nil {
			m.IsRead = true
		}
	})
}

// Dismiss marks the message dismissed. Dismissal is monotone: there is no
// path that clears the flag. Unknown ids are ignored.
func (e *Engine) Dismiss(messageID string) {
	e.store.Update(func(s *core.State) {
		if m := s.FindMessage(messageID); m != nil {
			m.IsDismissed = true
		}
	})
}

// ClearMessages drops the entire message list.
func (e *Engine) ClearMessages() {
	e.store.Update(func(s *core.State) { s.Messages = []core.Message{} })
}

// AddSuggestion appends a suggestion, filling in an ID and creation time when
// absent and evicting the oldest entry beyond the cap. Returns the stored
// suggestion.
func (e *Engine) AddSuggestion(sg core.Suggestion) core.Suggestion {
	if sg.ID == "" {
		sg.ID = core.NewID()
	}
	if sg.CreatedAt.IsZero() {
		sg.CreatedAt = e.clock.Now()
	}
	e.store.Update(func(s *core.State) {
		s.Suggestions = append(s.Suggestions, sg)
		if len(s.Suggestions) > core.MaxSuggestions {
			s.Suggestions = s.Suggestions[len(s.Suggestions)-core.MaxSuggestions:]
		}
	})
	return sg
}

// RemoveSuggestion deletes the suggestion with the given id, if present.
func (e *Engine) RemoveSuggestion(id string) {
	e.store.Update(func(s *core.State) {
		for i := range s.Suggestions {
			if s.Suggestions[i].ID == id {
				s.Suggestions = append(s.Suggestions[:i], s.Suggestions[i+1:]...)
				return
			}
		}
	})
}

// ClearSuggestions drops the entire suggestion list.
func (e *Engine) ClearSuggestions() {
	e.store.Update(func(s *core.State) { s.Suggestions = []core.Suggestion{} })
}

// StartAnalysis raises the global analysis flag at zero progress. The persona
// is recorded for observability only; the flag is process-wide.
func (e *Engine) StartAnalysis(persona core.Persona) {
	e.logger.Debug("analysis started", "persona", string(persona))
	e.store.Update(func(s *core.State) {
		s.IsAnalyzing = true
		s.AnalysisProgress = 0
	})
}

// UpdateAnalysisProgress sets the progress percentage, clamped to [0, 100].
func (e *Engine) UpdateAnalysisProgress(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	e.store.Update(func(s *core.State) { s.AnalysisProgress = pct })
}

// CompleteAnalysis lowers the analysis flag at full progress.
func (e *Engine) CompleteAnalysis() {
	e.store.Update(func(s *core.State) {
		s.IsAnalyzing = false
		s.AnalysisProgress = 100
	})
}

// SavePreferences merges the partial update into the current preferences,
// publishes the new state and persists through the gateway. Persistence
// failures are logged and swallowed; the in-memory value stays authoritative.
func (e *Engine) SavePreferences(patch core.PreferencesPatch) core.Preferences {
	var next core.Preferences
	e.store.Update(func(s *core.State) {
		s.Preferences = s.Preferences.Apply(patch)
		next = s.Preferences.Clone()
	})
	e.gateway.Save(next)
	return next
}

// Close stops the pending idle timer and prevents further scheduling. It does
// not interrupt a running analysis. Safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.idleGen++
	if e.idleTimer != nil {
		e.idleTimer.Stop()
		e.idleTimer = nil
	}
}
