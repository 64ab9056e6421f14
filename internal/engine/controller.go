// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine implements the dual-timer writing session state machine.
package engine

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION PHASE
// =============================================================================

// Phase is the session lifecycle state.
type Phase int

const (
	// PhaseIdle means no session has been started yet.
	PhaseIdle Phase = iota

	// PhaseActive means a session is running and the timers are live.
	PhaseActive

	// PhaseEnded means the session finished. Ended is just "not currently
	// running": Start is valid from it, there is no transition back to
	// Idle.
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// =============================================================================
// SESSION CONTROLLER
// =============================================================================

// Controller owns the session lifecycle, the text buffer, and the countdown.
// It is driven by three inputs serialized onto one logical queue: user
// actions (Start, End, EditText, Configure), keystrokes (EditText), and a
// roughly 1 Hz external clock (Tick). It is not safe for concurrent use.
type Controller struct {
	cfg   Config
	phase Phase

	// Session state, reset by Start
	sessionID  string
	startedAt  time.Time
	lastTickAt time.Time
	remaining  int
	buffer     string
	eraseCount int

	guard Guard
	sink  Sink
}

// NewController creates a controller in the Idle phase. The config is
// validated immediately; the sink may be nil.
func NewController(cfg Config, sink Sink) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:   cfg,
		phase: PhaseIdle,
		sink:  sink,
	}, nil
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Start begins a new session. Valid from Idle or Ended; returns an
// *InvalidStateError if a session is already active. The config is
// re-validated on every start. The inactivity window is seeded with the
// start time, so a session with no edits at all still erases (a no-op wipe
// of an empty buffer, but the event fires for UI consistency).
func (c *Controller) Start(now time.Time) error {
	if c.phase == PhaseActive {
		return &InvalidStateError{Op: "start", Phase: c.phase}
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.phase = PhaseActive
	c.sessionID = uuid.New().String()
	c.startedAt = now
	c.lastTickAt = now
	c.remaining = c.cfg.SessionDurationSeconds
	c.buffer = ""
	c.eraseCount = 0
	c.guard.RecordEdit(now)

	c.emit(SessionStarted{Config: c.cfg})
	return nil
}

// Tick advances both timers. It is a no-op unless the session is active,
// which also guarantees a tick arriving after the session left Active can
// never mutate stale state.
//
// The countdown burns the elapsed whole seconds since the previous tick,
// with a minimum of 1 to tolerate irregular scheduling. Within one tick the
// order is fixed: inactivity erasure first (if due), then the end-of-session
// check, so a session that ends on the same tick as an erasure ends with the
// just-erased buffer.
func (c *Controller) Tick(now time.Time) {
	if c.phase != PhaseActive {
		return
	}

	elapsed := int(now.Sub(c.lastTickAt) / time.Second)
	if elapsed < 1 {
		elapsed = 1
	}
	c.lastTickAt = now

	if c.guard.Expired(now, c.cfg.InactivityTimeoutSeconds) {
		c.buffer = ""
		c.eraseCount++
		c.guard.ConsumeExpiry(now)
		c.emit(BufferErased{TimeoutSeconds: c.cfg.InactivityTimeoutSeconds})
	}

	c.remaining -= elapsed
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.emit(TimeRemainingChanged{Seconds: c.remaining})

	if c.remaining == 0 {
		c.End(true)
	}
}

// End finishes the session, preserving the buffer. It is deliberately
// idempotent rather than erroring: the countdown reaching zero and the user
// ending the session can race on the same tick, and both are expected.
// SessionEnded is emitted exactly once per session.
func (c *Controller) End(completed bool) {
	if c.phase != PhaseActive {
		return
	}
	c.phase = PhaseEnded
	c.guard.Reset()
	c.emit(SessionEnded{Completed: completed})
}

// EditText replaces the buffer and records the keystroke time as the new
// last-edit mark. Returns an *InvalidStateError unless the session is
// active.
func (c *Controller) EditText(text string, now time.Time) error {
	if c.phase != PhaseActive {
		return &InvalidStateError{Op: "edit", Phase: c.phase}
	}
	c.buffer = text
	c.guard.RecordEdit(now)
	return nil
}

// Configure replaces the session configuration. Settings are locked while a
// session is active; out-of-bounds values are rejected with an
// *InvalidConfigError and leave the current config untouched.
func (c *Controller) Configure(cfg Config) error {
	if c.phase == PhaseActive {
		return &InvalidStateError{Op: "configure", Phase: c.phase}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Config returns the current configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Remaining returns the seconds left on the session countdown.
func (c *Controller) Remaining() int {
	return c.remaining
}

// Buffer returns the current text content.
func (c *Controller) Buffer() string {
	return c.buffer
}

// SessionID returns the ID of the current (or most recent) session, empty
// before the first Start.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// StartedAt returns when the current (or most recent) session started.
func (c *Controller) StartedAt() time.Time {
	return c.startedAt
}

// EraseCount returns how many times the buffer was erased this session.
func (c *Controller) EraseCount() int {
	return c.eraseCount
}

// IdleSeconds returns the whole seconds since the last edit, for the danger
// meter display. Returns 0 when the session is not active.
func (c *Controller) IdleSeconds(now time.Time) int {
	if c.phase != PhaseActive {
		return 0
	}
	return c.guard.IdleSeconds(now)
}

func (c *Controller) emit(e Event) {
	if c.sink != nil {
		c.sink.Notify(e)
	}
}
