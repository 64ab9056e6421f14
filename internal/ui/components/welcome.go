// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/gauntlet-tui/internal/ui/styles"
	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// WELCOME SCREEN COMPONENT
// =============================================================================

// Welcome is the idle screen shown before a session starts. It states the
// rules so nobody loses a draft to a timer they did not know about.
type Welcome struct {
	version      string
	durationSecs int
	timeoutSecs  int

	width  int
	height int

	theme *styles.Theme
}

// NewWelcome creates the welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{
		version: "dev",
		theme:   theme,
	}
}

// SetVersion sets the version string.
func (w *Welcome) SetVersion(version string) {
	w.version = version
}

// SetSessionConfig sets the timer values displayed in the rules.
func (w *Welcome) SetSessionConfig(durationSecs, timeoutSecs int) {
	w.durationSecs = durationSecs
	w.timeoutSecs = timeoutSecs
}

// SetSize updates the dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// View renders the welcome screen centered in the available space.
func (w Welcome) View() string {
	width := w.width
	if width == 0 {
		width = 80
	}
	height := w.height
	if height == 0 {
		height = 24
	}

	boxWidth := 56
	if boxWidth > width-4 {
		boxWidth = width - 4
	}
	if boxWidth < 40 {
		boxWidth = 40
	}

	logo := w.theme.WelcomeLogo.Render(`
  __ _  __ _ _   _ _ __ | |_| | ___| |_
 / _' |/ _' | | | | '_ \| __| |/ _ \ __|
| (_| | (_| | |_| | | | | |_| |  __/ |_
 \__, |\__,_|\__,_|_| |_|\__|_|\___|\__|
 |___/`)

	version := w.theme.WelcomeInfo.Render("v" + w.version)

	rules := w.theme.WelcomeInfo.Render(
		"Write for " + util.FormatMinutes(w.durationSecs) + ".\n" +
			"Stop typing for " + util.FormatCount(w.timeoutSecs, "second") + " and everything is erased.\n" +
			"Survive the clock and the words are yours.")

	pressKey := w.theme.WelcomePressKey.Render("Press ctrl+s to begin")

	content := lipgloss.JoinVertical(lipgloss.Center,
		logo, "", version, "", rules, "", pressKey)

	box := w.theme.WelcomeBox.Width(boxWidth).Render(content)

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
