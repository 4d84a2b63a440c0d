package state

import (
	"testing"

	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/internal/testutil"
	"github.com/atelierhq/agentpulse/logging"
)

func newTestStore() *Store {
	return NewStore(core.NewState(core.DefaultPreferences()), logging.NoOpLogger{})
}

func TestStore_UpdateNotifiesInOrder(t *testing.T) {
	s := newTestStore()
	var calls []string
	s.Subscribe(func(core.State) { calls = append(calls, "first") })
	s.Subscribe(func(core.State) { calls = append(calls, "second") })

	s.Update(func(st *core.State) { st.IsPanelOpen = true })

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("expected insertion-order notification, got %v", calls)
	}
	if !s.Snapshot().IsPanelOpen {
		t.Error("mutation not applied")
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	s := newTestStore()
	count := 0
	unsub := s.Subscribe(func(core.State) { count++ })
	s.Update(func(st *core.State) { st.IsPanelOpen = true })
	unsub()
	s.Update(func(st *core.State) { st.IsPanelOpen = false })
	if count != 1 {
		t.Fatalf("expected 1 notification after unsubscribe, got %d", count)
	}
}

func TestStore_ListenerPanicIsolated(t *testing.T) {
	s := newTestStore()
	reached := false
	s.Subscribe(func(core.State) { panic("faulty subscriber") })
	s.Subscribe(func(core.State) { reached = true })

	s.Update(func(st *core.State) { st.IsPanelOpen = true })

	if !reached {
		t.Fatal("panicking listener blocked later listeners")
	}
}

func TestStore_AddMessageNotifiesBothChannels(t *testing.T) {
	s := newTestStore()
	var gotState *core.State
	var gotMsg *core.Message
	s.Subscribe(func(st core.State) { gotState = &st })
	s.SubscribeMessages(func(m core.Message) { gotMsg = &m })

	msg := testutil.NewMessageBuilder().Title("hello").Build()
	s.AddMessage(msg)

	if gotState == nil || len(gotState.Messages) != 1 {
		t.Fatal("state listener not notified with the new message")
	}
	if gotMsg == nil || gotMsg.ID != msg.ID {
		t.Fatal("message listener not notified")
	}
	if gotState.UnreadCount != 1 {
		t.Errorf("unread count not recomputed: %d", gotState.UnreadCount)
	}
}

func TestStore_AddMessageEvictsOldest(t *testing.T) {
	s := newTestStore()
	var first, last core.Message
	for i := 0; i < core.MaxMessages+1; i++ {
		m := testutil.NewMessageBuilder().Build()
		if i == 0 {
			first = m
		}
		last = m
		s.AddMessage(m)
	}

	snap := s.Snapshot()
	if len(snap.Messages) != core.MaxMessages {
		t.Fatalf("expected %d messages, got %d", core.MaxMessages, len(snap.Messages))
	}
	if snap.Messages[0].ID == first.ID {
		t.Error("oldest message should have been evicted")
	}
	if snap.Messages[len(snap.Messages)-1].ID != last.ID {
		t.Error("newest message missing")
	}
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := newTestStore()
	s.AddMessage(testutil.NewMessageBuilder().Build())

	snap := s.Snapshot()
	snap.Messages[0].IsRead = true

	if s.Snapshot().Messages[0].IsRead {
		t.Error("snapshot mutation leaked into the store")
	}
}
