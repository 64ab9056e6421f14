// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/gauntlet-tui/internal/ui/styles"
	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// SUMMARY CARD COMPONENT
// =============================================================================

// SummaryCard shows the end-of-session statistics box.
type SummaryCard struct {
	Completed   bool
	WordCount   int
	CharCount   int
	WrittenSecs int
	EraseCount  int
	Exported    string // path of the exported file, empty until exported

	width  int
	height int

	theme *styles.Theme
}

// NewSummaryCard creates an empty summary card.
func NewSummaryCard(theme *styles.Theme) SummaryCard {
	return SummaryCard{theme: theme}
}

// SetSize updates the dimensions used to center the card.
func (c *SummaryCard) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Render returns the summary box centered in the available space.
func (c SummaryCard) Render() string {
	width := c.width
	if width == 0 {
		width = 80
	}
	height := c.height
	if height == 0 {
		height = 24
	}

	var parts []string

	if c.Completed {
		parts = append(parts, c.theme.SummaryTitle.Render("Session complete"))
	} else {
		parts = append(parts, c.theme.SummaryTitle.Render("Session ended"))
	}
	parts = append(parts, "")

	parts = append(parts, c.statLine("Time written", util.FormatClock(c.WrittenSecs)))
	parts = append(parts, c.statLine("Words", fmt.Sprintf("%d", c.WordCount)))
	parts = append(parts, c.statLine("Characters", fmt.Sprintf("%d", c.CharCount)))
	if c.EraseCount > 0 {
		parts = append(parts, c.statLine("Erasures", fmt.Sprintf("%d", c.EraseCount)))
	}

	parts = append(parts, "")
	if c.Exported != "" {
		parts = append(parts, styles.RenderSuccess("Exported to "+c.Exported))
	} else {
		hint := c.theme.ShortcutKey.Render("ctrl+e") + c.theme.ShortcutDesc.Render(" export") +
			"  " + c.theme.ShortcutKey.Render("ctrl+s") + c.theme.ShortcutDesc.Render(" new session") +
			"  " + c.theme.ShortcutKey.Render("ctrl+q") + c.theme.ShortcutDesc.Render(" quit")
		parts = append(parts, hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	box := c.theme.SummaryBox.Render(content)

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func (c SummaryCard) statLine(label, value string) string {
	return c.theme.StatsLabel.Render(fmt.Sprintf("%-14s", label)) +
		c.theme.StatsValue.Render(value)
}
