// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/gauntlet-tui/internal/ui/styles"
)

// =============================================================================
// DANGER METER COMPONENT
// =============================================================================

// DangerMeter shows how close the inactivity window is to erasing the buffer.
// It fills left to right as idle time accumulates and empties on every
// keystroke.
type DangerMeter struct {
	idleSecs    float64
	timeoutSecs int
	width       int

	theme *styles.Theme
}

// NewDangerMeter creates a meter for an inactivity timeout of timeoutSecs.
func NewDangerMeter(theme *styles.Theme, timeoutSecs int) DangerMeter {
	if timeoutSecs < 1 {
		timeoutSecs = 1
	}
	return DangerMeter{
		timeoutSecs: timeoutSecs,
		width:       20,
		theme:       theme,
	}
}

// SetIdle updates the seconds elapsed since the last keystroke.
func (d *DangerMeter) SetIdle(secs float64) {
	if secs < 0 {
		secs = 0
	}
	d.idleSecs = secs
}

// Reset empties the meter after a keystroke or an erasure.
func (d *DangerMeter) Reset() {
	d.idleSecs = 0
}

// SetWidth sets the rendered width of the bar in cells.
func (d *DangerMeter) SetWidth(width int) {
	if width < 5 {
		width = 5
	}
	d.width = width
}

// Fraction returns idle time over the timeout, clamped to [0, 1].
func (d DangerMeter) Fraction() float64 {
	f := d.idleSecs / float64(d.timeoutSecs)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Render returns the meter bar styled by how full it is.
func (d DangerMeter) Render() string {
	frac := d.Fraction()
	filled := int(frac * float64(d.width))
	if filled > d.width {
		filled = d.width
	}

	bar := strings.Repeat("#", filled) + strings.Repeat("-", d.width-filled)
	return d.theme.DangerStyle(frac).Render("[" + bar + "]")
}
