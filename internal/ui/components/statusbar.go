// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/gauntlet-tui/internal/ui/styles"
	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Shortcut is a key binding shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar showing the session phase, word count, and the
// active key bindings.
type StatusBar struct {
	Phase     string
	WordCount int
	ShowWords bool
	Width     int
	Shortcuts []Shortcut

	theme *styles.Theme
}

// NewStatusBar creates a status bar with no shortcuts configured.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Phase:     "idle",
		ShowWords: true,
		Width:     80,
		theme:     theme,
	}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetShortcuts replaces the displayed key bindings.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.Shortcuts = shortcuts
}

// Render returns the status bar line.
func (s *StatusBar) Render() string {
	var left []string

	left = append(left, s.theme.ShortcutKey.Render(s.Phase))
	if s.ShowWords {
		left = append(left, s.theme.ShortcutDesc.Render(util.FormatCount(s.WordCount, "word")))
	}

	var right []string
	for _, sc := range s.Shortcuts {
		right = append(right,
			s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}

	sep := s.theme.ShortcutDesc.Render(" | ")
	leftStr := strings.Join(left, sep)
	rightStr := strings.Join(right, "  ")

	gap := s.Width - lipgloss.Width(leftStr) - lipgloss.Width(rightStr) - 2
	if gap < 1 {
		gap = 1
	}

	return s.theme.StatusBar.Width(s.Width).Render(
		leftStr + strings.Repeat(" ", gap) + rightStr)
}
