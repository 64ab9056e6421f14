// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/gauntlet-tui/internal/config"
	"github.com/jeranaias/gauntlet-tui/internal/engine"
	"github.com/jeranaias/gauntlet-tui/internal/storage"
)

var testBase = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// testClock is a settable clock injected into the model.
type testClock struct {
	now time.Time
}

func (c *testClock) advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newTestModel(t *testing.T) (*Model, *testClock) {
	t.Helper()

	cfg := config.Default()
	cfg.Export.Dir = t.TempDir()

	m, err := New(cfg, nil, "test")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	clock := &testClock{now: testBase}
	m.now = func() time.Time { return clock.now }
	m.resize(100, 30)
	return m, clock
}

func press(t *testing.T, m *Model, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

func keyCtrlS() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyCtrlS} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func keyCtrlE() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyCtrlE} }

func typeText(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// =============================================================================
// LIFECYCLE TESTS
// =============================================================================

func TestModel_StartsIdle(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Phase() != engine.PhaseIdle {
		t.Errorf("Phase() = %v, want Idle", m.Phase())
	}
	if !strings.Contains(m.View(), "ctrl+s") {
		t.Error("welcome screen should show the start hint")
	}
}

func TestModel_StartSession(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(t, m, keyCtrlS())
	if m.Phase() != engine.PhaseActive {
		t.Fatalf("Phase() = %v, want Active", m.Phase())
	}
	if cmd == nil {
		t.Error("start should schedule the tick loop")
	}
}

func TestModel_StartWhileActiveShowsError(t *testing.T) {
	m, _ := newTestModel(t)
	press(t, m, keyCtrlS())

	press(t, m, keyCtrlS())
	if m.errMsg == "" {
		t.Error("expected error message for start during active session")
	}
	if m.Phase() != engine.PhaseActive {
		t.Error("session should still be active")
	}
}

func TestModel_TypingUpdatesBuffer(t *testing.T) {
	m, clock := newTestModel(t)
	press(t, m, keyCtrlS())
	clock.advance(time.Second)

	typeText(t, m, "hello world")

	if m.engine.Buffer() != "hello world" {
		t.Errorf("engine buffer = %q", m.engine.Buffer())
	}
	if m.statusBar.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", m.statusBar.WordCount)
	}
}

func TestModel_EndSessionPreservesText(t *testing.T) {
	m, clock := newTestModel(t)
	press(t, m, keyCtrlS())
	clock.advance(time.Second)
	typeText(t, m, "keep this")

	press(t, m, keyEsc())

	if m.Phase() != engine.PhaseEnded {
		t.Fatalf("Phase() = %v, want Ended", m.Phase())
	}
	if m.endedText != "keep this" {
		t.Errorf("endedText = %q", m.endedText)
	}
	if m.summary.Completed {
		t.Error("manual end should not be marked completed")
	}
	if !strings.Contains(m.View(), "Session ended") {
		t.Error("summary screen should be shown")
	}
}

// =============================================================================
// TICK TESTS
// =============================================================================

func TestModel_TickAdvancesCountdown(t *testing.T) {
	m, clock := newTestModel(t)
	press(t, m, keyCtrlS())
	typeText(t, m, "x")

	_, cmd := m.Update(tickMsg(clock.advance(time.Second)))

	if got := m.engine.Remaining(); got != 299 {
		t.Errorf("Remaining() = %d, want 299", got)
	}
	if got := m.countdown.Remaining(); got != 299 {
		t.Errorf("countdown.Remaining() = %d, want 299", got)
	}
	if cmd == nil {
		t.Error("tick should reschedule while active")
	}
}

func TestModel_InactivityErasesEditor(t *testing.T) {
	m, clock := newTestModel(t)
	press(t, m, keyCtrlS())
	clock.advance(time.Second)
	typeText(t, m, "doomed draft")

	// Jump well past the 5 second timeout in one late tick.
	m.Update(tickMsg(clock.advance(10 * time.Second)))

	if m.engine.Buffer() != "" {
		t.Errorf("engine buffer should be erased, got %q", m.engine.Buffer())
	}
	if m.textarea.Value() != "" {
		t.Errorf("textarea should be erased, got %q", m.textarea.Value())
	}
	if m.Phase() != engine.PhaseActive {
		t.Error("session should survive an erasure")
	}
	if m.flashRemaining == 0 {
		t.Error("erase flash should be armed")
	}
}

func TestModel_CountdownZeroEndsCompleted(t *testing.T) {
	m, clock := newTestModel(t)
	press(t, m, keyCtrlS())

	// One giant late tick burns the whole session. The inactivity erase
	// fires first, then the completed end.
	m.Update(tickMsg(clock.advance(301 * time.Second)))

	if m.Phase() != engine.PhaseEnded {
		t.Fatalf("Phase() = %v, want Ended", m.Phase())
	}
	if !m.summary.Completed {
		t.Error("countdown end should be marked completed")
	}
}

func TestModel_StaleTickAfterEndIsNoOp(t *testing.T) {
	m, clock := newTestModel(t)
	press(t, m, keyCtrlS())
	clock.advance(time.Second)
	typeText(t, m, "done")
	press(t, m, keyEsc())

	_, cmd := m.Update(tickMsg(clock.advance(time.Second)))
	if cmd != nil {
		t.Error("tick after end should not reschedule")
	}
	if m.endedText != "done" {
		t.Errorf("stale tick mutated ended state: %q", m.endedText)
	}
}

func TestModel_RestartAfterEnd(t *testing.T) {
	m, clock := newTestModel(t)
	press(t, m, keyCtrlS())
	clock.advance(time.Second)
	typeText(t, m, "first")
	press(t, m, keyEsc())

	press(t, m, keyCtrlS())
	if m.Phase() != engine.PhaseActive {
		t.Fatalf("Phase() = %v, want Active after restart", m.Phase())
	}
	if m.textarea.Value() != "" {
		t.Error("restart should clear the editor")
	}
}

// =============================================================================
// EXPORT AND HISTORY TESTS
// =============================================================================

func TestModel_ExportAfterEnd(t *testing.T) {
	m, clock := newTestModel(t)
	press(t, m, keyCtrlS())
	clock.advance(time.Second)
	typeText(t, m, "words that made it")
	press(t, m, keyEsc())

	press(t, m, keyCtrlE())

	if m.exportedTo == "" {
		t.Fatalf("export produced no path, errMsg=%q", m.errMsg)
	}
	content, err := os.ReadFile(m.exportedTo)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(content), "words that made it") {
		t.Error("exported file missing session text")
	}
}

func TestModel_ExportIgnoredWhileActive(t *testing.T) {
	m, _ := newTestModel(t)
	press(t, m, keyCtrlS())

	press(t, m, keyCtrlE())
	if m.exportedTo != "" {
		t.Error("export should be ignored during an active session")
	}
}

func TestModel_RecordsHistory(t *testing.T) {
	cfg := config.Default()
	cfg.Export.Dir = t.TempDir()

	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer store.Close()

	m, err := New(cfg, store, "test")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	clock := &testClock{now: testBase}
	m.now = func() time.Time { return clock.now }
	m.resize(100, 30)

	press(t, m, keyCtrlS())
	clock.advance(time.Second)
	typeText(t, m, "two words")
	press(t, m, keyEsc())

	recs, err := store.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", recs[0].WordCount)
	}
	if recs[0].Completed {
		t.Error("manual end should be recorded as not completed")
	}
}
