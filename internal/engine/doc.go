// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine implements the dual-timer state machine that drives a
// gauntlet writing session.
//
// A session runs under two independent clocks. The inactivity guard erases
// everything written so far whenever the gap since the last keystroke
// exceeds the configured timeout; erasure is a recurring event, not the end
// of the session. The session countdown bounds the total writing time and
// ends the session with the text intact when it reaches zero.
//
// # Key Types
//
//   - Controller: owns the session lifecycle and the text buffer
//   - Guard: tracks the last-edit mark and decides when erasure is due
//   - Config: immutable per-session bounds (duration, inactivity timeout)
//
// # Usage
//
// Create a controller and drive it from an external 1 Hz clock:
//
//	ctl, err := engine.NewController(engine.DefaultConfig(), sink)
//	ctl.Start(time.Now())
//	// on every keystroke:
//	ctl.EditText(text, time.Now())
//	// once per second while active:
//	ctl.Tick(time.Now())
//
// Every operation takes an explicit now so tests can drive the machine with
// synthetic clocks. The controller is not safe for concurrent use; the
// caller serializes edits and ticks onto one logical queue (the Bubble Tea
// update loop does this for the TUI).
package engine
