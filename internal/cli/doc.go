// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the command-line interface for gauntlet.
//
// Running gauntlet with no arguments starts the writing TUI; everything else
// is a plain subcommand printed to stdout:
//
//	gauntlet history   browse past sessions
//	gauntlet stats     lifetime statistics
//	gauntlet config    view and modify configuration
//	gauntlet review    render an exported session
//
// All commands share the ArgParser in args.go so flags behave identically
// everywhere, and all support --json where structured output makes sense.
package cli
