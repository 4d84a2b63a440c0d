package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/agentpulse/core"
	"github.com/atelierhq/agentpulse/trigger"
)

// idleOnlyRegistry holds a single zero-cooldown idle trigger so every
// synthesized user_idle event maps to exactly one message.
func idleOnlyRegistry() *trigger.Registry {
	return trigger.NewRegistry(&trigger.Trigger{
		ID:        "idle-probe",
		Type:      trigger.TypeLongPause,
		Persona:   core.PersonaMuse,
		Condition: trigger.OnIdle{Threshold: 0},
		Cooldown:  0,
		Priority:  1,
	})
}

func TestIdleWatchdog_SinglePendingTimer(t *testing.T) {
	e := newTestEngine(func(o *Options) { o.Registry = idleOnlyRegistry() })
	defer e.Close()

	delay := 60 * time.Millisecond
	e.SavePreferences(core.PreferencesPatch{AutoSuggestDelay: &delay})

	msgs := make(chan core.Message, 16)
	unsub := e.SubscribeMessages(func(m core.Message) { msgs <- m })
	defer unsub()

	// A burst of activity must collapse into one pending timer, not five.
	for i := 0; i < 5; i++ {
		e.HandleEvent(core.NewDomainEvent(core.EventCardCreated, nil))
	}

	require.Eventually(t, func() bool { return len(msgs) >= 1 }, time.Second, time.Millisecond)

	// Well before the next watchdog cycle at 2*delay, exactly one idle
	// message exists. Stale timers from the burst would have fired together.
	time.Sleep(delay / 2)
	assert.Len(t, msgs, 1, "burst of events must leave a single pending idle timer")

	first := <-msgs
	assert.Equal(t, trigger.TypeLongPause, first.Context["trigger_type"])
	idle, ok := first.Context[core.PayloadIdleTimeMs]
	require.True(t, ok, "idle message must carry the idle duration")
	assert.GreaterOrEqual(t, idle.(int64), delay.Milliseconds())
}

func TestIdleWatchdog_SelfPerpetuates(t *testing.T) {
	e := newTestEngine(func(o *Options) { o.Registry = idleOnlyRegistry() })
	defer e.Close()

	delay := 20 * time.Millisecond
	e.SavePreferences(core.PreferencesPatch{AutoSuggestDelay: &delay})

	e.HandleEvent(core.NewDomainEvent(core.EventCardCreated, nil))

	// The synthesized idle event reschedules the watchdog, so with no further
	// activity the loop keeps producing idle messages.
	require.Eventually(t, func() bool {
		return len(e.GetState().Messages) >= 2
	}, time.Second, time.Millisecond, "watchdog loop must keep firing without user activity")
}

func TestIdleWatchdog_StopsAfterClose(t *testing.T) {
	e := newTestEngine(func(o *Options) { o.Registry = idleOnlyRegistry() })

	delay := 20 * time.Millisecond
	e.SavePreferences(core.PreferencesPatch{AutoSuggestDelay: &delay})
	e.HandleEvent(core.NewDomainEvent(core.EventCardCreated, nil))

	e.Close()
	n := len(e.GetState().Messages)
	time.Sleep(4 * delay)
	assert.Equal(t, n, len(e.GetState().Messages), "no idle messages may arrive after Close")
}
