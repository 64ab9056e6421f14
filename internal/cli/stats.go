// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// stats.go - Stats command implementation for gauntlet.
//
// Command: stats
// Short:   Lifetime writing statistics
//
// Aggregates across every recorded session: totals, completion rate, and the
// best single-session word count.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// HandleStats handles the "stats" command.
func HandleStats(args Args) error {
	store, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(stats)
	}

	if stats.TotalSessions == 0 {
		fmt.Println(historyMetaStyle.Render("No sessions yet. Run gauntlet to start one."))
		return nil
	}

	completionPct := float64(stats.CompletedSessions) / float64(stats.TotalSessions) * 100

	fmt.Println(historyTitleStyle.Render("Lifetime statistics"))
	printField("Sessions", fmt.Sprintf("%d", stats.TotalSessions))
	printField("Completed", fmt.Sprintf("%d (%.0f%%)", stats.CompletedSessions, completionPct))
	printField("Words", fmt.Sprintf("%d", stats.TotalWords))
	printField("Characters", fmt.Sprintf("%d", stats.TotalChars))
	printField("Time written", util.FormatClock(stats.TotalWritingSecs))
	printField("Erasures", fmt.Sprintf("%d", stats.TotalErases))
	printField("Best session", util.FormatCount(stats.BestWordCount, "word"))
	return nil
}
