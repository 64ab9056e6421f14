// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package writer provides the writing view for the TUI.
//
// The Model wires the session engine to the terminal: keystrokes flow into a
// textarea and reset the inactivity window, a 1 Hz tick drives both timers,
// and engine events update the countdown, the danger meter, and the erase
// flash. The tick command is rescheduled only while a session is active.
//
// Screens by phase:
//   - Idle: welcome screen with the session rules
//   - Active: editor with countdown, danger meter, and status bar
//   - Ended: summary card with export and restart shortcuts
package writer
