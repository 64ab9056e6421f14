// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the gauntlet application.
package util

import (
	"fmt"
	"strconv"
)

// FormatClock renders a second count as a countdown clock. Durations under
// an hour render as mm:ss, longer ones as h:mm:ss. Negative input is
// clamped to zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatMinutes renders a second count as whole minutes for settings
// display, e.g. "25 min".
func FormatMinutes(seconds int) string {
	return strconv.Itoa(seconds/60) + " min"
}

// FormatCount pluralizes a count with its noun, e.g. "1 word", "42 words".
func FormatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
