// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/gauntlet-tui/internal/ui/styles"
	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// COUNTDOWN COMPONENT
// =============================================================================

// lowWaterSecs is when the clock switches to the warning style.
const lowWaterSecs = 60

// Countdown renders the session clock and a progress bar showing how much of
// the session has elapsed.
type Countdown struct {
	remaining int
	total     int
	width     int

	bar   progress.Model
	theme *styles.Theme
}

// NewCountdown creates a countdown for a session of totalSecs seconds.
func NewCountdown(theme *styles.Theme, totalSecs int) Countdown {
	if totalSecs < 1 {
		totalSecs = 1
	}
	bar := progress.New(
		progress.WithSolidFill("#A78BFA"),
		progress.WithoutPercentage(),
	)
	return Countdown{
		remaining: totalSecs,
		total:     totalSecs,
		width:     40,
		bar:       bar,
		theme:     theme,
	}
}

// SetRemaining updates the seconds left on the clock.
func (c *Countdown) SetRemaining(secs int) {
	if secs < 0 {
		secs = 0
	}
	c.remaining = secs
}

// Remaining returns the seconds left on the clock.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// SetWidth sets the rendered width of the progress bar.
func (c *Countdown) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	c.width = width
	c.bar.Width = width
}

// Render returns the clock line followed by the progress bar.
func (c Countdown) Render() string {
	clockStyle := c.theme.CountdownClock
	if c.remaining <= lowWaterSecs {
		clockStyle = c.theme.CountdownLow
	}

	clock := clockStyle.Render(util.FormatClock(c.remaining))

	elapsed := float64(c.total-c.remaining) / float64(c.total)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > 1 {
		elapsed = 1
	}

	c.bar.Width = c.width
	bar := c.bar.ViewAs(elapsed)

	return lipgloss.JoinVertical(lipgloss.Left, clock, bar)
}

// RenderClock returns just the clock text, for compact layouts.
func (c Countdown) RenderClock() string {
	if c.remaining <= lowWaterSecs {
		return c.theme.CountdownLow.Render(util.FormatClock(c.remaining))
	}
	return c.theme.CountdownClock.Render(util.FormatClock(c.remaining))
}
