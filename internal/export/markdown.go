// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports sessions to Markdown with YAML frontmatter.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a session to Markdown format.
func (e *MarkdownExporter) Export(sess *Session) ([]byte, error) {
	if sess == nil {
		return nil, fmt.Errorf("session is nil")
	}
	if sess.StartedAt.IsZero() {
		return nil, fmt.Errorf("session has invalid start timestamp")
	}

	var sb strings.Builder

	// YAML frontmatter with metadata
	if e.options.IncludeMetadata {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("session: %s\n", escapeYAML(sess.ID)))
		sb.WriteString(fmt.Sprintf("date: %s\n", sess.StartedAt.Format(time.RFC3339)))
		sb.WriteString(fmt.Sprintf("duration: %s\n", util.FormatClock(sess.DurationSecs)))
		sb.WriteString(fmt.Sprintf("timeout_secs: %d\n", sess.TimeoutSecs))
		sb.WriteString(fmt.Sprintf("completed: %t\n", sess.Completed))
		sb.WriteString(fmt.Sprintf("words: %d\n", util.CountWords(sess.Text)))
		sb.WriteString(fmt.Sprintf("characters: %d\n", util.CountRunes(sess.Text)))
		if sess.EraseCount > 0 {
			sb.WriteString(fmt.Sprintf("erases: %d\n", sess.EraseCount))
		}
		sb.WriteString(fmt.Sprintf("exported: %s\n", time.Now().Format(time.RFC3339)))
		sb.WriteString("generator: gauntlet\n")
		sb.WriteString("---\n\n")
	}

	sb.WriteString(fmt.Sprintf("# Writing Session %s\n\n", formatTimestamp(sess.StartedAt)))

	if e.options.IncludeMetadata {
		outcome := "ended early"
		if sess.Completed {
			outcome = "completed"
		}
		sb.WriteString(fmt.Sprintf("- **Length**: %s (%s)\n", util.FormatClock(sess.DurationSecs), outcome))
		sb.WriteString(fmt.Sprintf("- **Words**: %d\n", util.CountWords(sess.Text)))
		if sess.EraseCount > 0 {
			sb.WriteString(fmt.Sprintf("- **Erases survived**: %d\n", sess.EraseCount))
		}
		sb.WriteString("\n---\n\n")
	}

	sb.WriteString(strings.TrimRight(sess.Text, "\n"))
	sb.WriteString("\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// =============================================================================
// ESCAPING HELPERS
// =============================================================================

// escapeYAML escapes special YAML characters in values.
func escapeYAML(s string) string {
	// Quote if contains special characters (including backslash)
	if strings.ContainsAny(s, ":#|>@`\"'[]{}!%&*\n\r\\") || strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		s = strings.ReplaceAll(s, "\\", "\\\\")
		s = strings.ReplaceAll(s, "\"", "\\\"")
		s = strings.ReplaceAll(s, "\n", "\\n")
		s = strings.ReplaceAll(s, "\r", "\\r")
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}
