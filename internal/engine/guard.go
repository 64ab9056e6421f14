// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine implements the dual-timer writing session state machine.
package engine

import "time"

// =============================================================================
// INACTIVITY GUARD
// =============================================================================

// Guard tracks the time of the last edit and decides when the inactivity
// timeout has been exceeded. Detection (Expired) is a pure query with no
// side effects; acting on an expiry goes through ConsumeExpiry so that a
// single lapse is signaled exactly once. The guard never owns the text
// buffer; the controller performs the actual erasure.
type Guard struct {
	// lastEditAt is the time of the most recent edit. The zero value
	// means no session activity has been recorded yet.
	lastEditAt time.Time
}

// RecordEdit sets the last-edit mark. Always succeeds.
func (g *Guard) RecordEdit(now time.Time) {
	g.lastEditAt = now
}

// LastEditAt returns the last-edit mark and whether one has been recorded.
func (g *Guard) LastEditAt() (time.Time, bool) {
	return g.lastEditAt, !g.lastEditAt.IsZero()
}

// Expired reports whether the inactivity timeout has elapsed since the last
// edit. The comparison is strictly greater-than: a keystroke landing exactly
// on the boundary counts as on-time. Returns false when no edit mark is set.
func (g *Guard) Expired(now time.Time, timeoutSeconds int) bool {
	if g.lastEditAt.IsZero() {
		return false
	}
	return now.Sub(g.lastEditAt) > time.Duration(timeoutSeconds)*time.Second
}

// ConsumeExpiry resets the last-edit mark to now after an expiry has been
// acted on. This stops the same lapse from being signaled twice and opens a
// fresh inactivity window, so the erasure itself cannot re-trigger erasure
// on the next tick.
func (g *Guard) ConsumeExpiry(now time.Time) {
	g.lastEditAt = now
}

// Reset clears the edit mark entirely. Used when a session leaves Active.
func (g *Guard) Reset() {
	g.lastEditAt = time.Time{}
}

// IdleSeconds returns the whole seconds since the last edit, or 0 when no
// edit mark is set.
func (g *Guard) IdleSeconds(now time.Time) int {
	if g.lastEditAt.IsZero() {
		return 0
	}
	idle := int(now.Sub(g.lastEditAt) / time.Second)
	if idle < 0 {
		return 0
	}
	return idle
}
