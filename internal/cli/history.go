// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history.go - History command implementation for gauntlet.
//
// Command: history [subcommand]
// Short:   Browse past writing sessions
// Aliases: sessions
//
// Subcommands:
//   list (default)      List recent sessions
//   show <id>           Show one session record
//   delete <id>         Delete a session record (requires --confirm)
//   clear               Delete all session records (requires --confirm)
//
// Only session metadata is stored; the text itself never touches the
// database, so there is nothing here to leak a draft from.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/gauntlet-tui/internal/config"
	"github.com/jeranaias/gauntlet-tui/internal/storage"
	"github.com/jeranaias/gauntlet-tui/internal/ui/styles"
	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// HISTORY STYLES
// =============================================================================

var (
	historyTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(styles.Purple).
				MarginBottom(1)

	historyIDStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)

	historyMetaStyle = lipgloss.NewStyle().
				Foreground(styles.TextMuted)

	historyValueStyle = lipgloss.NewStyle().
				Foreground(styles.TextPrimary)
)

// =============================================================================
// HANDLE HISTORY
// =============================================================================

// HandleHistory handles the "history" command.
func HandleHistory(args Args) error {
	store, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	switch args.Subcommand {
	case "", "list":
		limit := args.Parser.FlagIntOrDefault("limit", 20)
		return handleHistoryList(store, limit, args.JSON)

	case "show":
		id := args.Parser.Positional(2)
		if id == "" {
			return fmt.Errorf("usage: gauntlet history show <id>")
		}
		return handleHistoryShow(store, id, args.JSON)

	case "delete":
		id := args.Parser.Positional(2)
		if id == "" {
			return fmt.Errorf("usage: gauntlet history delete <id> --confirm")
		}
		if !args.Parser.BoolFlag("confirm") {
			return fmt.Errorf("deleting a session record requires --confirm")
		}
		if err := store.Delete(id); err != nil {
			return err
		}
		fmt.Println(styles.RenderSuccess("Deleted session " + id))
		return nil

	case "clear":
		if !args.Parser.BoolFlag("confirm") {
			return fmt.Errorf("clearing history requires --confirm")
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println(styles.RenderSuccess("History cleared"))
		return nil

	default:
		return fmt.Errorf("unknown history subcommand: %s", args.Subcommand)
	}
}

// openHistoryStore opens the history database at its configured location.
func openHistoryStore() (*storage.HistoryStore, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	if !cfg.History.Enabled {
		return nil, fmt.Errorf("history is disabled (history.enabled = false)")
	}

	path, err := cfg.HistoryDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolving history path: %w", err)
	}
	return storage.Open(path)
}

func handleHistoryList(store *storage.HistoryStore, limit int, asJSON bool) error {
	recs, err := store.List(limit)
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(recs)
	}

	if len(recs) == 0 {
		fmt.Println(historyMetaStyle.Render("No sessions yet. Run gauntlet to start one."))
		return nil
	}

	fmt.Println(historyTitleStyle.Render("Writing sessions"))
	for _, rec := range recs {
		fmt.Println(formatRecordLine(rec))
	}
	return nil
}

func handleHistoryShow(store *storage.HistoryStore, id string, asJSON bool) error {
	rec, err := store.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("no session with ID %s", id)
		}
		return err
	}

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(rec)
	}

	fmt.Println(historyTitleStyle.Render("Session " + rec.ID))
	printField("Started", rec.StartedAt.Local().Format("2006-01-02 15:04:05"))
	printField("Ended", rec.EndedAt.Local().Format("2006-01-02 15:04:05"))
	printField("Length", util.FormatMinutes(rec.DurationSecs))
	printField("Timeout", util.FormatCount(rec.TimeoutSecs, "second"))
	printField("Completed", fmt.Sprintf("%t", rec.Completed))
	printField("Words", fmt.Sprintf("%d", rec.WordCount))
	printField("Characters", fmt.Sprintf("%d", rec.CharCount))
	printField("Erasures", fmt.Sprintf("%d", rec.EraseCount))
	return nil
}

// formatRecordLine renders one row of the session list.
func formatRecordLine(rec storage.SessionRecord) string {
	outcome := styles.StatusIndicators.Success
	if !rec.Completed {
		outcome = styles.StatusIndicators.Warning
	}

	id := rec.ID
	if len(id) > 8 {
		id = id[:8]
	}

	meta := fmt.Sprintf("%s  %s, %s",
		rec.StartedAt.Local().Format("2006-01-02 15:04"),
		util.FormatCount(rec.WordCount, "word"),
		util.FormatMinutes(rec.DurationSecs))
	if rec.EraseCount > 0 {
		meta += fmt.Sprintf(", %s", util.FormatCount(rec.EraseCount, "erasure"))
	}

	return strings.Join([]string{
		"  " + outcome,
		historyIDStyle.Render(id),
		historyMetaStyle.Render(meta),
	}, " ")
}

func printField(label, value string) {
	fmt.Printf("  %s %s\n",
		historyMetaStyle.Render(fmt.Sprintf("%-12s", label)),
		historyValueStyle.Render(value))
}
