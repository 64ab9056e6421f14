// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the gauntlet TUI.
//
// The package centralizes all Lip Gloss styles and colors. Colors are
// AdaptiveColor pairs that pick light or dark variants from the detected
// terminal background; the Theme struct bundles the configured styles for
// every screen.
//
// The danger meter palette runs Emerald (safe) through Amber (warning) to
// Rose (about to erase); Theme.DangerStyle maps an idle fraction onto it.
package styles
