package engine

import (
	"context"
	"fmt"

	"github.com/atelierhq/agentpulse/core"
)

// ExecuteAction interprets a user (or automated) response to a message. Every
// branch is wrapped so thrown errors become a failure ActionResult rather
// than propagating; the orchestrator must never crash the host from an action
// failure.
//
// The apply branch runs the staged analysis pipeline to completion by
// default. Cancelling ctx aborts the remaining ticks, clears the analysis
// flag and returns a failure result; with context.Background() the baseline
// run-to-completion contract holds.
func (e *Engine) ExecuteAction(ctx context.Context, msg core.Message, action core.Action) (res core.ActionResult) {
	start := e.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			res = core.ActionResult{Success: false, Error: fmt.Sprintf("%v", r)}
		}
		e.logger.Debug("action executed",
			"action_kind", string(action.Kind),
			"message_id", msg.ID,
			"success", res.Success,
			"duration", e.clock.Since(start).String(),
		)
	}()

	switch action.Kind {
	case core.ActionApply:
		return e.runAnalysis(ctx, msg)

	case core.ActionPreview:
		// Explicitly read-only: no state mutation.
		return core.ActionResult{Success: true, Result: map[string]any{"preview": true}}

	case core.ActionModify:
		e.store.Update(func(s *core.State) {
			s.IsPanelOpen = true
			s.ActivePersona = msg.Persona
		})
		return core.ActionResult{Success: true}

	case core.ActionDismiss:
		e.Dismiss(msg.ID)
		return core.ActionResult{Success: true}

	case core.ActionSnooze:
		// Snooze dismisses now and schedules no re-surface; it is
		// behaviorally identical to dismiss in this version.
		e.Dismiss(msg.ID)
		return core.ActionResult{Success: true}

	case core.ActionNever:
		// Only dismisses. The mute preference is not wired through.
		e.Dismiss(msg.ID)
		return core.ActionResult{Success: true}

	case core.ActionCustom:
		return e.runCustom(msg, action)

	default:
		return core.ActionResult{Success: false, Error: "unknown action"}
	}
}

// runAnalysis executes the staged analysis protocol: raise the global
// analysis flag, advance progress in fixed ticks with a notification each,
// lower the flag at 100, append the templated suggestion and mark the
// originating message read.
//
// The engine lock is deliberately not held across ticks: concurrent apply
// executions overlap on the single global flag.
func (e *Engine) runAnalysis(ctx context.Context, msg core.Message) core.ActionResult {
	e.store.Update(func(s *core.State) {
		s.IsAnalyzing = true
		s.AnalysisProgress = 0
	})

	steps := e.cfg.AnalysisSteps
	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			e.store.Update(func(s *core.State) { s.IsAnalyzing = false })
			return core.ActionResult{Success: false, Error: ctx.Err().Error()}
		case <-e.clock.After(e.cfg.AnalysisTick):
		}
		pct := i * 100 / steps
		final := i == steps
		e.store.Update(func(s *core.State) {
			s.AnalysisProgress = pct
			if final {
				s.IsAnalyzing = false
			}
		})
	}

	suggestion := e.factory.BuildSuggestion(msg.Persona)
	e.store.Update(func(s *core.State) {
		s.Suggestions = append(s.Suggestions, *suggestion)
		if len(s.Suggestions) > core.MaxSuggestions {
			s.Suggestions = s.Suggestions[len(s.Suggestions)-core.MaxSuggestions:]
		}
		if m := s.FindMessage(msg.ID); m != nil {
			m.IsRead = true
		}
	})

	return core.ActionResult{Success: true, Result: suggestion.Clone()}
}

// runCustom handles the payload-driven side channel. Recognized shapes:
// {"switchTo": persona} switches the active persona and opens the panel;
// {"action": "retry"|"export"} is acknowledged with no default behavior, the
// host application intercepts it through its own event hooks.
func (e *Engine) runCustom(msg core.Message, action core.Action) core.ActionResult {
	if target, ok := action.Payload["switchTo"].(string); ok && target != "" {
		persona := core.Persona(target)
		e.store.Update(func(s *core.State) {
			s.ActivePersona = persona
			s.IsPanelOpen = true
		})
		return core.ActionResult{Success: true, Result: map[string]any{"switched_to": target}}
	}
	if name, ok := action.Payload["action"].(string); ok {
		switch name {
		case "retry", "export":
			return core.ActionResult{Success: true, Result: map[string]any{"acknowledged": name}}
		}
	}
	return core.ActionResult{Success: false, Error: "unrecognized custom action payload"}
}
