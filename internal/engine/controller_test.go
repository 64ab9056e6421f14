// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine implements the dual-timer writing session state machine.
package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// recorder collects emitted events in order.
type recorder struct {
	events []Event
}

func (r *recorder) Notify(e Event) {
	r.events = append(r.events, e)
}

// countOf returns how many recorded events match the given predicate.
func (r *recorder) countOf(match func(Event) bool) int {
	n := 0
	for _, e := range r.events {
		if match(e) {
			n++
		}
	}
	return n
}

func isErased(e Event) bool {
	_, ok := e.(BufferErased)
	return ok
}

func isEnded(e Event) bool {
	_, ok := e.(SessionEnded)
	return ok
}

func newTestController(t *testing.T, cfg Config) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	ctl, err := NewController(cfg, rec)
	require.NoError(t, err)
	return ctl, rec
}

// =============================================================================
// LIFECYCLE TESTS
// =============================================================================

func TestController_Start(t *testing.T) {
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 5}
	ctl, rec := newTestController(t, cfg)

	require.Equal(t, PhaseIdle, ctl.Phase())
	require.NoError(t, ctl.Start(at(0)))

	require.Equal(t, PhaseActive, ctl.Phase())
	require.Equal(t, 300, ctl.Remaining())
	require.Empty(t, ctl.Buffer())
	require.NotEmpty(t, ctl.SessionID())
	require.Len(t, rec.events, 1)
	require.IsType(t, SessionStarted{}, rec.events[0])
}

func TestController_Start_WhileActive(t *testing.T) {
	ctl, _ := newTestController(t, DefaultConfig())
	require.NoError(t, ctl.Start(at(0)))

	err := ctl.Start(at(1))
	var stateErr *InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, "start", stateErr.Op)
	require.Equal(t, PhaseActive, ctl.Phase())
}

func TestController_Start_FromEnded(t *testing.T) {
	ctl, _ := newTestController(t, DefaultConfig())
	require.NoError(t, ctl.Start(at(0)))
	ctl.End(false)
	require.Equal(t, PhaseEnded, ctl.Phase())

	// Ended is terminal only until the next Start; no Idle re-entry needed.
	first := ctl.SessionID()
	require.NoError(t, ctl.Start(at(100)))
	require.Equal(t, PhaseActive, ctl.Phase())
	require.Equal(t, 300, ctl.Remaining())
	require.NotEqual(t, first, ctl.SessionID())
}

func TestController_End_Idempotent(t *testing.T) {
	ctl, rec := newTestController(t, DefaultConfig())
	require.NoError(t, ctl.Start(at(0)))
	require.NoError(t, ctl.EditText("survivor", at(1)))

	// Timer expiry and a user click racing to end the session is expected,
	// so a second End must be a silent no-op.
	ctl.End(false)
	ctl.End(false)
	ctl.End(true)

	require.Equal(t, PhaseEnded, ctl.Phase())
	require.Equal(t, "survivor", ctl.Buffer())
	require.Equal(t, 1, rec.countOf(isEnded))
}

func TestController_EditText_WrongPhase(t *testing.T) {
	ctl, _ := newTestController(t, DefaultConfig())

	err := ctl.EditText("too early", at(0))
	var stateErr *InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, PhaseIdle, stateErr.Phase)
	require.Empty(t, ctl.Buffer())

	require.NoError(t, ctl.Start(at(0)))
	ctl.End(false)
	err = ctl.EditText("too late", at(1))
	require.ErrorAs(t, err, &stateErr)
	require.Empty(t, ctl.Buffer())
}

// =============================================================================
// CONFIGURE TESTS
// =============================================================================

func TestController_Configure(t *testing.T) {
	ctl, _ := newTestController(t, DefaultConfig())

	next := Config{SessionDurationSeconds: 600, InactivityTimeoutSeconds: 10}
	require.NoError(t, ctl.Configure(next))
	require.Equal(t, next, ctl.Config())
}

func TestController_Configure_LockedWhileActive(t *testing.T) {
	ctl, _ := newTestController(t, DefaultConfig())
	require.NoError(t, ctl.Start(at(0)))

	err := ctl.Configure(Config{SessionDurationSeconds: 600, InactivityTimeoutSeconds: 10})
	var stateErr *InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, DefaultConfig(), ctl.Config())
}

func TestController_Configure_RejectsOutOfBounds(t *testing.T) {
	ctl, _ := newTestController(t, DefaultConfig())

	err := ctl.Configure(Config{SessionDurationSeconds: 600, InactivityTimeoutSeconds: 30})
	var cfgErr *InvalidConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, DefaultConfig(), ctl.Config())
}

func TestNewController_RejectsInvalidConfig(t *testing.T) {
	_, err := NewController(Config{SessionDurationSeconds: 1, InactivityTimeoutSeconds: 5}, nil)
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("NewController should reject invalid config, got %v", err)
	}
}

// =============================================================================
// COUNTDOWN TESTS
// =============================================================================

func TestController_Tick_CountdownMonotone(t *testing.T) {
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 15}
	ctl, _ := newTestController(t, cfg)
	require.NoError(t, ctl.Start(at(0)))

	prev := ctl.Remaining()
	for s := 1; s <= 30; s++ {
		require.NoError(t, ctl.EditText("x", at(s)))
		ctl.Tick(at(s))
		cur := ctl.Remaining()
		require.LessOrEqual(t, cur, prev, "remaining must be non-increasing")
		require.GreaterOrEqual(t, cur, 0, "remaining must never be negative")
		prev = cur
	}
	require.Equal(t, 270, ctl.Remaining())
}

func TestController_Tick_BurnsElapsedWholeSeconds(t *testing.T) {
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 15}
	ctl, _ := newTestController(t, cfg)
	require.NoError(t, ctl.Start(at(0)))

	// A delayed scheduler burns the real elapsed time.
	ctl.Tick(at(7))
	require.Equal(t, 293, ctl.Remaining())

	// A fast tick still costs the minimum of one second.
	ctl.Tick(at(7).Add(200 * time.Millisecond))
	require.Equal(t, 292, ctl.Remaining())
}

func TestController_Tick_NoOpOutsideActive(t *testing.T) {
	ctl, rec := newTestController(t, DefaultConfig())

	ctl.Tick(at(5))
	require.Equal(t, PhaseIdle, ctl.Phase())
	require.Empty(t, rec.events)

	require.NoError(t, ctl.Start(at(10)))
	ctl.End(false)
	n := len(rec.events)

	// A stale tick after the session left Active must not mutate anything.
	ctl.Tick(at(20))
	require.Equal(t, PhaseEnded, ctl.Phase())
	require.Len(t, rec.events, n)
}

func TestController_Tick_CountdownToZeroEndsCompleted(t *testing.T) {
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 5}
	ctl, rec := newTestController(t, cfg)
	require.NoError(t, ctl.Start(at(0)))

	// Edits every second keep the guard quiet; the countdown runs out at
	// t=300 and the text survives.
	for s := 1; s <= 300; s++ {
		require.NoError(t, ctl.EditText("still here", at(s)))
		ctl.Tick(at(s))
	}

	require.Equal(t, PhaseEnded, ctl.Phase())
	require.Equal(t, 0, ctl.Remaining())
	require.Equal(t, "still here", ctl.Buffer())
	require.Equal(t, 1, rec.countOf(isEnded))
	require.Equal(t, 0, rec.countOf(isErased))

	ended := rec.events[len(rec.events)-1].(SessionEnded)
	require.True(t, ended.Completed)
}

// =============================================================================
// INACTIVITY ERASURE TESTS
// =============================================================================

func TestController_Tick_ErasureScenario(t *testing.T) {
	// config={duration=300s, timeout=5s}; start at t=0; ticks at t=1..4
	// keep the buffer; an edit at t=4 then silence means the window lapses
	// after t=9, so the tick at t=10 erases and the countdown reads 290.
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 5}
	ctl, rec := newTestController(t, cfg)
	require.NoError(t, ctl.Start(at(0)))

	for s := 1; s <= 4; s++ {
		require.NoError(t, ctl.EditText("draft", at(s)))
		ctl.Tick(at(s))
	}
	require.Equal(t, "draft", ctl.Buffer())
	require.Equal(t, 296, ctl.Remaining())
	require.Equal(t, 0, rec.countOf(isErased))

	ctl.Tick(at(10))
	require.Empty(t, ctl.Buffer())
	require.Equal(t, 290, ctl.Remaining())
	require.Equal(t, 1, rec.countOf(isErased))
	require.Equal(t, PhaseActive, ctl.Phase(), "erasure must not end the session")
}

func TestController_Tick_ErasureOncePerWindow(t *testing.T) {
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 3}
	ctl, rec := newTestController(t, cfg)
	require.NoError(t, ctl.Start(at(0)))
	require.NoError(t, ctl.EditText("gone soon", at(0)))

	ctl.Tick(at(4))
	require.Equal(t, 1, rec.countOf(isErased))

	// The erase opened a fresh window at t=4; immediate follow-up ticks
	// must not erase again without the new window lapsing.
	ctl.Tick(at(5))
	ctl.Tick(at(6))
	ctl.Tick(at(7))
	require.Equal(t, 1, rec.countOf(isErased))

	// The new window lapses after t=7.
	ctl.Tick(at(8))
	require.Equal(t, 2, rec.countOf(isErased))
}

func TestController_Tick_NoEditsStillErases(t *testing.T) {
	// The window is seeded at start time, so a session with no keystrokes
	// at all still fires the erase event (wiping an already empty buffer).
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 3}
	ctl, rec := newTestController(t, cfg)
	require.NoError(t, ctl.Start(at(0)))

	ctl.Tick(at(1))
	require.Equal(t, 0, rec.countOf(isErased))
	ctl.Tick(at(4))
	require.Equal(t, 1, rec.countOf(isErased))
	require.Equal(t, 1, ctl.EraseCount())
}

func TestController_Tick_ErasureThenEndSameTick(t *testing.T) {
	// When the countdown hits zero on a tick whose inactivity window has
	// also lapsed, the erasure applies first and the session ends with the
	// erased buffer.
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 5}
	ctl, rec := newTestController(t, cfg)
	require.NoError(t, ctl.Start(at(0)))
	require.NoError(t, ctl.EditText("doomed", at(0)))

	ctl.Tick(at(300))
	require.Equal(t, PhaseEnded, ctl.Phase())
	require.Empty(t, ctl.Buffer())
	require.Equal(t, 0, ctl.Remaining())
	require.Equal(t, 1, rec.countOf(isErased))
	require.Equal(t, 1, rec.countOf(isEnded))

	// Erasure must precede the end event in the same tick.
	var erasedIdx, endedIdx int
	for i, e := range rec.events {
		switch e.(type) {
		case BufferErased:
			erasedIdx = i
		case SessionEnded:
			endedIdx = i
		}
	}
	require.Less(t, erasedIdx, endedIdx)
}

func TestController_EditResetsWindow(t *testing.T) {
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 5}
	ctl, rec := newTestController(t, cfg)
	require.NoError(t, ctl.Start(at(0)))

	// Keystrokes landing exactly on the boundary are on-time.
	require.NoError(t, ctl.EditText("a", at(0)))
	require.NoError(t, ctl.EditText("ab", at(5)))
	ctl.Tick(at(5))
	require.Equal(t, 0, rec.countOf(isErased))
	require.Equal(t, "ab", ctl.Buffer())
}

// =============================================================================
// EVENT STREAM TESTS
// =============================================================================

func TestController_TimeRemainingChangedPerTick(t *testing.T) {
	cfg := Config{SessionDurationSeconds: 300, InactivityTimeoutSeconds: 15}
	ctl, rec := newTestController(t, cfg)
	require.NoError(t, ctl.Start(at(0)))

	for s := 1; s <= 5; s++ {
		require.NoError(t, ctl.EditText("x", at(s)))
		ctl.Tick(at(s))
	}

	var seen []int
	for _, e := range rec.events {
		if tr, ok := e.(TimeRemainingChanged); ok {
			seen = append(seen, tr.Seconds)
		}
	}
	require.Equal(t, []int{299, 298, 297, 296, 295}, seen)
}

func TestController_NilSink(t *testing.T) {
	ctl, err := NewController(DefaultConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, ctl.Start(at(0)))
	ctl.Tick(at(1))
	ctl.End(false)
	// No panic with a nil sink.
}

func TestSinkFunc(t *testing.T) {
	var got Event
	sink := SinkFunc(func(e Event) { got = e })
	sink.Notify(BufferErased{TimeoutSeconds: 5})
	erased, ok := got.(BufferErased)
	require.True(t, ok)
	require.Equal(t, 5, erased.TimeoutSeconds)
}
