// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// PLAIN TEXT EXPORTER
// =============================================================================

// TextExporter exports sessions as plain text with an optional header.
type TextExporter struct {
	options *Options
}

// NewTextExporter creates a new plain text exporter.
func NewTextExporter(opts *Options) *TextExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &TextExporter{options: opts}
}

// Export converts a session to plain text.
func (e *TextExporter) Export(sess *Session) ([]byte, error) {
	if sess == nil {
		return nil, fmt.Errorf("session is nil")
	}
	if sess.StartedAt.IsZero() {
		return nil, fmt.Errorf("session has invalid start timestamp")
	}

	var sb strings.Builder

	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("Writing session %s\n", formatTimestamp(sess.StartedAt)))
		sb.WriteString(fmt.Sprintf("Length %s, %s\n",
			util.FormatClock(sess.DurationSecs),
			util.FormatCount(util.CountWords(sess.Text), "word")))
		sb.WriteString(strings.Repeat("-", 40))
		sb.WriteString("\n\n")
	}

	sb.WriteString(strings.TrimRight(sess.Text, "\n"))
	sb.WriteString("\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for plain text.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// MimeType returns the MIME type for plain text.
func (e *TextExporter) MimeType() string {
	return "text/plain"
}
