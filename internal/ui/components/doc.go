// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the gauntlet TUI.
//
// Each component is a small value type with a Render method; the writer model
// composes them into the session screen. Components never talk to the engine
// directly, they display whatever state the model hands them.
//
// Components:
//   - Countdown: the session clock with a progress bar underneath
//   - DangerMeter: the inactivity bar that fills as the erase deadline nears
//   - StatusBar: bottom bar with phase, word count, and shortcuts
//   - SummaryCard: the end-of-session stats box
//   - Welcome: the idle screen shown before a session starts
package components
