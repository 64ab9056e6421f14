// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides session history persistence for gauntlet.
//
// Finished sessions are recorded in a local SQLite database
// (~/.gauntlet/history.db by default). Only metadata is stored: timestamps,
// timer settings, word and character counts, and how many times the buffer
// was erased. The written text never touches the database; exporting text is
// the export package's job and happens only at the user's request.
//
// # Key Types
//
//   - HistoryStore: the SQLite-backed store
//   - SessionRecord: one finished session
//   - Stats: whole-history aggregates
//
// # Usage
//
//	store, err := storage.Open(dbPath)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	err = store.Record(&storage.SessionRecord{...})
package storage
