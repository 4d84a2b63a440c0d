// Package agentpulse provides a high-level façade over the orchestration
// engine and its collaborators (trigger registry, persona catalog,
// preferences stores & logging) enabling quick embedding of the proactive
// agent layer into a host application. Most applications interact with this
// package by:
//  1. Creating an AgentPulse via New() (optionally overriding default in-memory services)
//  2. Subscribing to state and message notifications
//  3. Feeding domain events through HandleEvent and executing user responses
//     through ExecuteAction
//
// The façade delegates orchestration to engine.Engine while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a durable preferences
// store and a structured logger.
package agentpulse

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/atelierhq/agentpulse/catalog"
	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/engine"
	"github.com/atelierhq/agentpulse/logging"
	"github.com/atelierhq/agentpulse/prefs"
	"github.com/atelierhq/agentpulse/trigger"
)

// Options configures the AgentPulse instance.
type Options struct {
	// EngineConfig tunes the analysis pipeline timing.
	EngineConfig engine.Config

	// Registry is the trigger catalog (defaults to the built-in registry).
	Registry *trigger.Registry

	// Catalog supplies persona metadata (defaults to the built-in catalog).
	Catalog catalog.Catalog

	// PrefsStore persists preferences (defaults to an in-memory store).
	PrefsStore prefs.Store

	// Logger defaults to the NoOp logger if nil.
	Logger logging.Logger

	// Clock defaults to the real clock; inject a fake in tests.
	Clock clockwork.Clock
}

// AgentPulse is the high-level façade aggregating the underlying engine and
// services.
type AgentPulse struct {
	opts   Options
	engine *engine.Engine
}

// New creates a new AgentPulse instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *AgentPulse {
	opts := Options{
		EngineConfig: engine.DefaultConfig,
		Registry:     trigger.Default(),
		Catalog:      catalog.Default(),
		PrefsStore:   prefs.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
		Clock:        clockwork.NewRealClock(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	e := engine.New(func(o *engine.Options) {
		o.Config = opts.EngineConfig
		o.Registry = opts.Registry
		o.Catalog = opts.Catalog
		o.PrefsStore = opts.PrefsStore
		o.Logger = opts.Logger
		o.Clock = opts.Clock
	})

	return &AgentPulse{opts: opts, engine: e}
}

// Engine exposes the underlying engine for the full orchestration surface
// (panel control, message lifecycle, suggestions, preferences).
func (p *AgentPulse) Engine() *engine.Engine { return p.engine }

// State returns a deep-copied snapshot of the orchestrator state.
func (p *AgentPulse) State() core.State { return p.engine.GetState() }

// Subscribe registers a state listener; the returned function unsubscribes.
func (p *AgentPulse) Subscribe(fn func(core.State)) func() {
	return p.engine.Subscribe(fn)
}

// SubscribeMessages registers a message listener; the returned function
// unsubscribes.
func (p *AgentPulse) SubscribeMessages(fn func(core.Message)) func() {
	return p.engine.SubscribeMessages(fn)
}

// HandleEvent feeds one host application event into trigger evaluation.
func (p *AgentPulse) HandleEvent(ev core.DomainEvent) { p.engine.HandleEvent(ev) }

// ExecuteAction interprets a user response to a message.
func (p *AgentPulse) ExecuteAction(ctx context.Context, msg core.Message, action core.Action) core.ActionResult {
	return p.engine.ExecuteAction(ctx, msg, action)
}

// Close stops the idle watchdog. Call once the host shuts down.
func (p *AgentPulse) Close() { p.engine.Close() }
