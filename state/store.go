package state

import (
	"sync"

	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/logging"
)

// Listener receives the full state snapshot after every mutation.
type Listener func(core.State)

// MessageListener receives each newly created message.
type MessageListener func(core.Message)

// Store holds the orchestrator state and notifies subscribers on every
// mutation. It is safe for concurrent access. Listeners are invoked outside
// the store lock so a subscriber may call back into the store without
// deadlocking.
type Store struct {
	mu           sync.Mutex
	state        core.State
	nextID       int
	listeners    map[int]Listener
	msgListeners map[int]MessageListener
	order        []int
	msgOrder     []int
	logger       logging.Logger
}

// NewStore creates a store seeded with the given initial state.
func NewStore(initial core.State, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Store{
		state:        initial,
		listeners:    map[int]Listener{},
		msgListeners: map[int]MessageListener{},
		logger:       logger,
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() core.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a state listener and returns its unsubscribe function.
// Listeners are invoked in subscription order.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// SubscribeMessages registers a message listener and returns its unsubscribe
// function.
func (s *Store) SubscribeMessages(fn MessageListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.msgListeners[id] = fn
	s.msgOrder = append(s.msgOrder, id)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.msgListeners, id)
	}
}

// Update applies the mutation to the held state, recounts the unread
// invariant and notifies all state listeners with the new snapshot. The
// returned snapshot is the caller's own copy.
func (s *Store) Update(mutate func(*core.State)) core.State {
	s.mu.Lock()
	mutate(&s.state)
	s.state.RecountUnread()
	snapshot := s.state.Clone()
	listeners := s.stateListenersLocked()
	s.mu.Unlock()

	for _, fn := range listeners {
		s.safeNotify(func() { fn(snapshot) })
	}
	return snapshot
}

// AddMessage appends a message, evicting the oldest entry beyond the cap,
// then notifies both listener channels.
func (s *Store) AddMessage(msg core.Message) core.State {
	s.mu.Lock()
	s.state.Messages = append(s.state.Messages, msg)
	if len(s.state.Messages) > core.MaxMessages {
		s.state.Messages = s.state.Messages[len(s.state.Messages)-core.MaxMessages:]
	}
	s.state.RecountUnread()
	snapshot := s.state.Clone()
	listeners := s.stateListenersLocked()
	msgListeners := s.messageListenersLocked()
	s.mu.Unlock()

	for _, fn := range listeners {
		s.safeNotify(func() { fn(snapshot) })
	}
	for _, fn := range msgListeners {
		s.safeNotify(func() { fn(msg.Clone()) })
	}
	return snapshot
}

// stateListenersLocked returns live state listeners in subscription order.
func (s *Store) stateListenersLocked() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, id := range s.order {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// messageListenersLocked returns live message listeners in subscription order.
func (s *Store) messageListenersLocked() []MessageListener {
	out := make([]MessageListener, 0, len(s.msgListeners))
	for _, id := range s.msgOrder {
		if fn, ok := s.msgListeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// safeNotify isolates listener failures: a panicking subscriber is logged and
// the remaining listeners still run.
func (s *Store) safeNotify(call func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("state listener panicked", "panic", r)
		}
	}()
	call()
}
