// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the gauntlet application.
//
// This package contains common helper functions used throughout the
// application for string measurement, display formatting, and file
// operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - CountWords, CountRunes: text statistics for session summaries
//
// Display Formatting:
//   - FormatClock: seconds to mm:ss / h:mm:ss countdown display
//   - FormatCount: pluralized counts for summaries
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateRunes(preview, 50)
//
//	// Render the countdown clock
//	clock := util.FormatClock(remaining)
//
//	// Write exports atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
