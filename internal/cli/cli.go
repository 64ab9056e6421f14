// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for gauntlet.
package cli

import (
	"fmt"
	"os"
	"runtime"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdHistory
	CmdStats
	CmdConfig
	CmdReview
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON bool

	// Session overrides (--duration, --timeout, in seconds)
	DurationSecs int
	TimeoutSecs  int

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	File       string

	// Parser for command-specific flags
	Parser *ArgParser
}

const usageText = `gauntlet - a writing session that fights back

Start a timed session and keep typing: pause longer than the
inactivity timeout and everything you wrote is erased. Survive
until the countdown hits zero and the text is yours to export.

Usage:
  gauntlet                     Start a writing session (default)
  gauntlet history [list|show|delete|clear]
                               Browse past sessions
  gauntlet stats               Lifetime writing statistics
  gauntlet config [show|get|set|path|reset]
                               Configuration
  gauntlet review <file>       Render an exported session in the terminal
  gauntlet version             Show version
  gauntlet help                Show this help

Session flags (TUI):
  --duration SECS              Session length, 300-10800 in steps of 300
  --timeout SECS               Inactivity timeout, 3-15

History commands:
  gauntlet history             List recent sessions (default 20)
    --limit N                  Show last N sessions
  gauntlet history show <id>   Show one session record
  gauntlet history delete <id> --confirm
                               Delete a session record
  gauntlet history clear --confirm
                               Delete all session records

Config commands:
  gauntlet config show         Display current configuration
  gauntlet config get <key>    Read one value (dot notation)
  gauntlet config set <key> <value>
                               Write one value
  gauntlet config path         Show config file location
  gauntlet config reset        Reset to defaults

  Keys: session.duration_secs, session.timeout_secs, ui.theme,
        ui.show_danger_meter, ui.show_word_count, ui.flash_on_erase,
        history.enabled, history.db_path, export.dir, export.format

Environment overrides:
  GAUNTLET_DURATION_SECS, GAUNTLET_TIMEOUT_SECS, GAUNTLET_THEME,
  GAUNTLET_HISTORY, GAUNTLET_EXPORT_DIR

Examples:
  gauntlet                             5 minute session, 5 second timeout
  gauntlet --duration 900 --timeout 10 15 minutes, gentler timeout
  gauntlet history --limit 5           Last five sessions
  gauntlet config set ui.theme light
  gauntlet review ~/gauntlet/session_20250301_090000.md
`

// Parse parses os.Args and returns the command to run plus its arguments.
func Parse() (Command, Args) {
	raw := os.Args[1:]
	parser := NewArgParser(raw)

	args := Args{
		JSON:         parser.BoolFlag("json"),
		DurationSecs: parser.FlagIntOrDefault("duration", 0),
		TimeoutSecs:  parser.FlagIntOrDefault("timeout", 0),
		Parser:       parser,
	}

	cmd := CmdTUI
	switch parser.Subcommand() {
	case "":
		cmd = CmdTUI
	case "history", "sessions":
		cmd = CmdHistory
		args.Subcommand = parser.Positional(1)
	case "stats":
		cmd = CmdStats
	case "config":
		cmd = CmdConfig
		args.Subcommand = parser.Positional(1)
		args.ConfigKey = parser.Positional(2)
		args.ConfigVal = parser.Positional(3)
	case "review":
		cmd = CmdReview
		args.File = parser.Positional(1)
	case "version", "-v", "--version":
		cmd = CmdVersion
	case "help", "-h", "--help":
		cmd = CmdHelp
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", parser.Subcommand())
		cmd = CmdHelp
	}

	return cmd, args
}

// HandleVersion prints version information.
func HandleVersion(args Args) {
	if args.JSON {
		fmt.Printf(`{"version":%q,"commit":%q,"built":%q,"go":%q}`+"\n",
			Version, GitCommit, BuildDate, runtime.Version())
		return
	}
	fmt.Printf("gauntlet %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
	fmt.Printf("  go:     %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// HandleHelp prints the usage text.
func HandleHelp() {
	fmt.Print(usageText)
}
