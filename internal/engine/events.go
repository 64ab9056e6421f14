// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine implements the dual-timer writing session state machine.
package engine

// =============================================================================
// EVENTS
// =============================================================================

// Event is a state-change notification emitted by the controller for the
// presentation layer to render. Delivery is synchronous and in order; the
// engine never blocks on a sink.
type Event interface {
	event()
}

// SessionStarted is emitted when a session transitions to Active.
type SessionStarted struct {
	// Config is the configuration the session was started with.
	Config Config
}

// SessionEnded is emitted exactly once when a session transitions to Ended.
type SessionEnded struct {
	// Completed is true when the countdown ran to zero, false when the
	// user ended the session early.
	Completed bool
}

// BufferErased is emitted when the inactivity timeout wipes the buffer.
// The session stays active; a fresh inactivity window starts immediately.
type BufferErased struct {
	// TimeoutSeconds is the configured timeout that was exceeded.
	TimeoutSeconds int
}

// TimeRemainingChanged is emitted on every tick that changes the countdown.
type TimeRemainingChanged struct {
	// Seconds is the updated time remaining.
	Seconds int
}

func (SessionStarted) event()       {}
func (SessionEnded) event()         {}
func (BufferErased) event()         {}
func (TimeRemainingChanged) event() {}

// Sink receives engine events. A nil sink is valid and discards events.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Notify calls f(e).
func (f SinkFunc) Notify(e Event) {
	f(e)
}
