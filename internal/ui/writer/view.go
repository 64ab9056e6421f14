// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package writer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/gauntlet-tui/internal/engine"
	"github.com/jeranaias/gauntlet-tui/internal/ui/components"
	"github.com/jeranaias/gauntlet-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	switch m.engine.Phase() {
	case engine.PhaseIdle:
		return m.viewWelcome()
	case engine.PhaseActive:
		return m.viewWriting()
	case engine.PhaseEnded:
		return m.viewSummary()
	default:
		return ""
	}
}

func (m *Model) viewWelcome() string {
	out := m.welcome.View()
	if m.errMsg != "" {
		out += "\n" + styles.RenderError(m.errMsg)
	}
	return out
}

// viewWriting renders the active session: clock and danger meter on top, the
// editor in the middle, shortcuts at the bottom.
func (m *Model) viewWriting() string {
	var header string
	if m.cfg.UI.ShowDangerMeter {
		clock := m.countdown.RenderClock()
		meter := m.danger.Render()
		gapWidth := m.width - lipgloss.Width(clock) - lipgloss.Width(meter) - 4
		if gapWidth < 1 {
			gapWidth = 1
		}
		gap := lipgloss.NewStyle().Width(gapWidth).Render("")
		header = m.theme.Container.Render(
			lipgloss.JoinHorizontal(lipgloss.Center, clock, gap, meter))
	} else {
		header = m.theme.Container.Render(m.countdown.Render())
	}

	editorStyle := m.theme.Editor
	if m.flashRemaining > 0 {
		editorStyle = m.theme.EditorFlash
	}
	editor := editorStyle.Render(m.textarea.View())

	m.statusBar.SetShortcuts([]components.Shortcut{
		{Key: "esc", Desc: "end"},
		{Key: "ctrl+q", Desc: "quit"},
	})
	bar := m.statusBar.Render()

	parts := []string{header, editor, bar}
	if m.errMsg != "" {
		parts = append(parts, styles.RenderError(m.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) viewSummary() string {
	out := m.summary.Render()
	if m.errMsg != "" {
		out += "\n" + styles.RenderError(m.errMsg)
	}
	return out
}
