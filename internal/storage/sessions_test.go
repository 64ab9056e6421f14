// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides session history persistence for gauntlet.
package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *HistoryStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(id string, started time.Time) *SessionRecord {
	return &SessionRecord{
		ID:           id,
		StartedAt:    started,
		EndedAt:      started.Add(5 * time.Minute),
		DurationSecs: 300,
		TimeoutSecs:  5,
		Completed:    true,
		WordCount:    250,
		CharCount:    1400,
		EraseCount:   1,
	}
}

// =============================================================================
// RECORD AND GET TESTS
// =============================================================================

func TestHistoryStore_RecordAndGet(t *testing.T) {
	store := openTestStore(t)
	started := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(sampleRecord("sess-1", started)))

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, started, got.StartedAt)
	assert.Equal(t, started.Add(5*time.Minute), got.EndedAt)
	assert.Equal(t, 300, got.DurationSecs)
	assert.Equal(t, 5, got.TimeoutSecs)
	assert.True(t, got.Completed)
	assert.Equal(t, 250, got.WordCount)
	assert.Equal(t, 1400, got.CharCount)
	assert.Equal(t, 1, got.EraseCount)
}

func TestHistoryStore_Record_RequiresID(t *testing.T) {
	store := openTestStore(t)
	rec := sampleRecord("", time.Now())
	assert.Error(t, store.Record(rec))
}

func TestHistoryStore_Record_DuplicateID(t *testing.T) {
	store := openTestStore(t)
	started := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(sampleRecord("sess-1", started)))
	assert.Error(t, store.Record(sampleRecord("sess-1", started)))
}

func TestHistoryStore_Get_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("missing")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

// =============================================================================
// LIST TESTS
// =============================================================================

func TestHistoryStore_List_MostRecentFirst(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(sampleRecord("old", base)))
	require.NoError(t, store.Record(sampleRecord("mid", base.Add(time.Hour))))
	require.NoError(t, store.Record(sampleRecord("new", base.Add(2*time.Hour))))

	recs, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "new", recs[0].ID)
	assert.Equal(t, "mid", recs[1].ID)
	assert.Equal(t, "old", recs[2].ID)
}

func TestHistoryStore_List_Limit(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		rec := sampleRecord("", base.Add(time.Duration(i)*time.Hour))
		rec.ID = string(rune('a' + i))
		require.NoError(t, store.Record(rec))
	}

	recs, err := store.List(2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, "e", recs[0].ID)
}

func TestHistoryStore_List_Empty(t *testing.T) {
	store := openTestStore(t)

	recs, err := store.List(0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// =============================================================================
// STATS TESTS
// =============================================================================

func TestHistoryStore_Stats(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	first := sampleRecord("a", base)
	first.WordCount = 100
	first.CharCount = 500
	first.EraseCount = 2
	require.NoError(t, store.Record(first))

	second := sampleRecord("b", base.Add(time.Hour))
	second.Completed = false
	second.WordCount = 300
	second.CharCount = 1600
	second.EraseCount = 0
	require.NoError(t, store.Record(second))

	st, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalSessions)
	assert.Equal(t, 1, st.CompletedSessions)
	assert.Equal(t, 400, st.TotalWords)
	assert.Equal(t, 2100, st.TotalChars)
	assert.Equal(t, 2, st.TotalErases)
	assert.Equal(t, 600, st.TotalWritingSecs)
	assert.Equal(t, 300, st.BestWordCount)
}

func TestHistoryStore_Stats_Empty(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, st.TotalSessions)
	assert.Equal(t, 0, st.TotalWords)
	assert.Equal(t, 0, st.BestWordCount)
}

// =============================================================================
// DELETE TESTS
// =============================================================================

func TestHistoryStore_Delete(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Record(sampleRecord("sess-1", time.Now())))

	require.NoError(t, store.Delete("sess-1"))
	_, err := store.Get("sess-1")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestHistoryStore_Delete_NotFound(t *testing.T) {
	store := openTestStore(t)
	err := store.Delete("missing")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestHistoryStore_Clear(t *testing.T) {
	store := openTestStore(t)
	base := time.Now()
	require.NoError(t, store.Record(sampleRecord("a", base)))
	require.NoError(t, store.Record(sampleRecord("b", base.Add(time.Minute))))

	require.NoError(t, store.Clear())

	recs, err := store.List(0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// =============================================================================
// REOPEN TESTS
// =============================================================================

func TestHistoryStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(sampleRecord("sess-1", time.Now())))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)
}
