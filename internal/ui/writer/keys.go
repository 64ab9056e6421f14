// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package writer provides the writing view for the TUI.
//
// This file defines the keyboard bindings. The set is deliberately tiny: the
// writing screen is supposed to get out of the way, and every binding uses a
// modifier so plain typing can never trigger an action.
package writer

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings for the writing view.
type KeyMap struct {
	Start  key.Binding
	End    key.Binding
	Export key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "start session"),
		),
		End: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "end session"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "export"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("C-q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.End, k.Export, k.Quit}
}

// FullHelp returns all binding groups.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.End},
		{k.Export, k.Quit},
	}
}
