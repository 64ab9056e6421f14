// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes finished writing sessions to disk.
//
// Exports are the only way session text leaves the application: the history
// database stores counts, never content. Two formats are supported, Markdown
// (with YAML frontmatter) and plain text, both written atomically to the
// configured export directory.
//
// # Usage
//
//	path, err := export.ExportMarkdown(&export.Session{...}, &export.Options{
//	    OutputDir: exportDir,
//	})
package export
