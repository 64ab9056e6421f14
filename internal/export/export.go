// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes finished writing sessions to disk as Markdown or
// plain text.
package export

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// SESSION PAYLOAD
// =============================================================================

// Session is the exported payload: the surviving text plus the metadata worth
// keeping alongside it. The history database never stores Text; this struct
// exists only at the moment the user asks for an export.
type Session struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time

	DurationSecs int
	TimeoutSecs  int
	Completed    bool
	EraseCount   int

	Text string
}

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for session exporters.
type Exporter interface {
	// Export converts a session to the target format and returns the content.
	Export(sess *Session) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md", ".txt").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// ForFormat returns the exporter for a config format name.
func ForFormat(format string, opts *Options) (Exporter, error) {
	switch format {
	case "markdown", "md":
		return NewMarkdownExporter(opts), nil
	case "txt", "text":
		return NewTextExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool

	// IncludeMetadata includes a metadata header (timestamps, counts).
	IncludeMetadata bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		OpenAfterExport: false,
		IncludeMetadata: true,
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile exports a session to a file using the specified exporter.
// Returns the output file path or an error.
func ExportToFile(sess *Session, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(sess)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	filename := fmt.Sprintf("session_%s%s",
		sess.StartedAt.Format("20060102_150405"),
		exporter.FileExtension(),
	)

	// RELIABILITY: Atomic write with fsync prevents data loss on crash.
	// The session text exists nowhere else once the app exits.
	outputPath := filepath.Join(opts.OutputDir, filename)
	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	if opts.OpenAfterExport {
		if err := openFile(outputPath); err != nil {
			// Non-fatal - file was still created successfully
			fmt.Fprintf(os.Stderr, "Warning: could not open file: %v\n", err)
		}
	}

	return outputPath, nil
}

// ExportMarkdown exports to Markdown format.
func ExportMarkdown(sess *Session, opts *Options) (string, error) {
	return ExportToFile(sess, NewMarkdownExporter(opts), opts)
}

// ExportText exports to plain text format.
func ExportText(sess *Session, opts *Options) (string, error) {
	return ExportToFile(sess, NewTextExporter(opts), opts)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// formatTimestamp formats a timestamp for display.
func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
