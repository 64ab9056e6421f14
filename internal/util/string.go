// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the gauntlet application.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Rune-aware truncation preserves multi-byte characters.
// These functions handle strings correctly regardless of character encoding,
// preventing mid-character truncation that would corrupt UTF-8 strings.

// TruncateRunes truncates a string to a maximum number of runes (characters).
// This is safe for UTF-8 strings as it counts characters, not bytes.
// If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates a string to a maximum display width, accounting
// for double-width characters (CJK) that take 2 columns.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// StringWidth returns the display width of a string.
// Double-width characters (CJK) count as 2 columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CountRunes returns the number of runes (characters) in a string.
// This is safer than len() for UTF-8 strings.
func CountRunes(s string) int {
	return len([]rune(s))
}

// CountWords returns the number of whitespace-separated words in a string.
// Used for session statistics and the summary card.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// Preview collapses a text buffer into a single-line preview of at most
// maxRunes characters, for history listings. Newlines and runs of
// whitespace become single spaces.
func Preview(s string, maxRunes int) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	return TruncateRunes(collapsed, maxRunes)
}
