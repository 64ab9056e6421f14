// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the gauntlet TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// ==========================================================================
	// EDITOR STYLES
	// ==========================================================================

	Editor lipgloss.Style
	// EditorFlash is swapped in for a few frames after an erasure.
	EditorFlash lipgloss.Style

	// ==========================================================================
	// COUNTDOWN STYLES
	// ==========================================================================

	CountdownClock lipgloss.Style
	// CountdownLow takes over for the final minute.
	CountdownLow lipgloss.Style

	// ==========================================================================
	// DANGER METER STYLES
	// ==========================================================================

	DangerSafe     lipgloss.Style
	DangerWarn     lipgloss.Style
	DangerCritical lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SUMMARY CARD STYLES
	// ==========================================================================

	SummaryBox   lipgloss.Style
	SummaryTitle lipgloss.Style
	StatsLabel   lipgloss.Style
	StatsValue   lipgloss.Style

	// ==========================================================================
	// SESSION LIST STYLES (history command)
	// ==========================================================================

	SessionItem lipgloss.Style
	SessionID   lipgloss.Style
	SessionMeta lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox      lipgloss.Style
	WelcomeLogo     lipgloss.Style
	WelcomeInfo     lipgloss.Style
	WelcomePressKey lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	// Editor
	t.Editor = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.EditorFlash = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Background(RoseDeep).
		Padding(0, 1)

	// Countdown
	t.CountdownClock = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.CountdownLow = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	// Danger meter
	t.DangerSafe = lipgloss.NewStyle().
		Foreground(Emerald)

	t.DangerWarn = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.DangerCritical = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Summary card
	t.SummaryBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.SummaryTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.StatsLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatsValue = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	// Session list
	t.SessionItem = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.SessionID = lipgloss.NewStyle().
		Foreground(Cyan)

	t.SessionMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.WelcomeLogo = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.WelcomePressKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	// Status styles
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(InfoHighContrast).
		Bold(true)
}

// SetSize updates the theme's layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// DangerStyle picks the meter style for the current idle fraction, where
// fraction is idle seconds over the inactivity timeout.
func (t *Theme) DangerStyle(fraction float64) lipgloss.Style {
	switch {
	case fraction >= 0.75:
		return t.DangerCritical
	case fraction >= 0.4:
		return t.DangerWarn
	default:
		return t.DangerSafe
	}
}
