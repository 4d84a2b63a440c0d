// Package logging provides a minimal logging interface and adapters for
// AgentPulse.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the engine and stores use for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - PulseLogger with orchestration-specific convenience helpers
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	orch := engine.New(func(o *engine.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal so any structured
// logger can be plugged in.
package logging
