// gauntlet - a timed writing session that erases your draft if you stop.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/gauntlet-tui/internal/cli"
	"github.com/jeranaias/gauntlet-tui/internal/config"
	"github.com/jeranaias/gauntlet-tui/internal/storage"
	"github.com/jeranaias/gauntlet-tui/internal/ui/writer"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdHistory:
		exitOnError(cli.HandleHistory(args))
	case cli.CmdStats:
		exitOnError(cli.HandleStats(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdReview:
		exitOnError(cli.HandleReview(args))
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		runTUI(args)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the writing session interface.
func runTUI(args cli.Args) {
	cfg := config.Global()

	// CLI flags override config for this run only
	if args.DurationSecs > 0 {
		cfg.Session.DurationSecs = args.DurationSecs
	}
	if args.TimeoutSecs > 0 {
		cfg.Session.TimeoutSecs = args.TimeoutSecs
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// History store is optional; a broken database should not block writing.
	var store *storage.HistoryStore
	if cfg.History.Enabled {
		path, err := cfg.HistoryDBPath()
		if err == nil {
			store, err = storage.Open(path)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	m, err := writer.New(cfg, store, Version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	// Watch the config file so edits apply between sessions.
	if path, err := config.ConfigPath(); err == nil {
		watcher, werr := config.NewWatcher(path, 500*time.Millisecond, func(reloaded *config.Config) {
			config.SetGlobal(reloaded)
			p.Send(writer.ConfigReloadedMsg{Config: reloaded})
		})
		if werr == nil && watcher.Watch() == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running gauntlet: %v\n", err)
		os.Exit(1)
	}
}
