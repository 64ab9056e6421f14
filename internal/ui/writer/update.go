// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package writer

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/gauntlet-tui/internal/config"
	"github.com/jeranaias/gauntlet-tui/internal/engine"
	"github.com/jeranaias/gauntlet-tui/internal/export"
	"github.com/jeranaias/gauntlet-tui/internal/storage"
	"github.com/jeranaias/gauntlet-tui/internal/ui/components"
	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applyConfig picks up an edited config file. Timer settings are locked while
// a session is active, so mid-session edits are dropped; the rest of the
// config is safe to apply any time.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if m.engine.Phase() == engine.PhaseActive {
		return
	}
	if err := m.engine.Configure(cfg.Engine()); err != nil {
		m.errMsg = err.Error()
		return
	}

	m.cfg = cfg
	m.countdown = components.NewCountdown(m.theme, cfg.Session.DurationSecs)
	m.danger = components.NewDangerMeter(m.theme, cfg.Session.TimeoutSecs)
	m.statusBar.ShowWords = cfg.UI.ShowWordCount
	m.welcome.SetSessionConfig(cfg.Session.DurationSecs, cfg.Session.TimeoutSecs)
	m.resize(m.width, m.height)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	m.textarea.SetWidth(width - 6)
	editorHeight := height - 8
	if editorHeight < 3 {
		editorHeight = 3
	}
	m.textarea.SetHeight(editorHeight)

	barWidth := width - 8
	if barWidth > 40 {
		barWidth = 40
	}
	m.countdown.SetWidth(barWidth)
	m.danger.SetWidth(20)
	m.statusBar.SetWidth(width)
	m.summary.SetSize(width, height)
	m.welcome.SetSize(width, height)
}

// handleTick drives the engine clock. The tick is rescheduled only while the
// session stays active, so the 1 Hz loop dies with the session instead of
// spinning forever in the background.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.engine.Phase() != engine.PhaseActive {
		return m, nil
	}

	if m.flashRemaining > 0 {
		m.flashRemaining--
	}

	m.engine.Tick(now)
	m.applyEvents(now)

	if m.engine.Phase() != engine.PhaseActive {
		return m, nil
	}
	m.danger.SetIdle(float64(m.engine.IdleSeconds(now)))
	return m, tick()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	now := m.now()

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Start):
		return m.startSession(now)

	case key.Matches(msg, m.keyMap.End):
		if m.engine.Phase() == engine.PhaseActive {
			m.engine.End(false)
			m.applyEvents(now)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Export):
		if m.engine.Phase() == engine.PhaseEnded {
			m.exportSession()
		}
		return m, nil
	}

	if m.engine.Phase() != engine.PhaseActive {
		return m, nil
	}

	// Plain typing flows into the textarea; a keystroke that changes the
	// text resets the inactivity window.
	before := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	after := m.textarea.Value()

	if after != before {
		if err := m.engine.EditText(after, now); err != nil {
			m.errMsg = err.Error()
		} else {
			m.danger.Reset()
		}
		m.statusBar.WordCount = util.CountWords(after)
	}
	return m, cmd
}

// =============================================================================
// SESSION LIFECYCLE
// =============================================================================

func (m *Model) startSession(now time.Time) (tea.Model, tea.Cmd) {
	if err := m.engine.Start(now); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.textarea.Reset()
	focusCmd := m.textarea.Focus()
	m.danger.Reset()
	m.countdown.SetRemaining(m.cfg.Session.DurationSecs)
	m.flashRemaining = 0
	m.exportedTo = ""
	m.endedText = ""
	m.statusBar.WordCount = 0
	m.applyEvents(now)

	return m, tea.Batch(tick(), focusCmd)
}

// applyEvents drains the engine's event buffer and updates the UI state.
func (m *Model) applyEvents(now time.Time) {
	for _, ev := range m.events.drain() {
		switch ev := ev.(type) {
		case engine.SessionStarted:
			m.statusBar.Phase = "writing"

		case engine.BufferErased:
			m.textarea.Reset()
			m.danger.Reset()
			m.statusBar.WordCount = 0
			if m.cfg.UI.FlashOnErase {
				m.flashRemaining = flashTicks
			}

		case engine.TimeRemainingChanged:
			m.countdown.SetRemaining(ev.Seconds)

		case engine.SessionEnded:
			m.finishSession(ev.Completed, now)
		}
	}
}

// finishSession snapshots the buffer for export, fills the summary card, and
// records the session in history. Text never goes into the database.
func (m *Model) finishSession(completed bool, now time.Time) {
	m.endedText = m.engine.Buffer()
	m.endedAt = now
	m.writtenSecs = m.cfg.Session.DurationSecs - m.engine.Remaining()
	m.textarea.Blur()
	m.statusBar.Phase = "ended"

	m.summary.Completed = completed
	m.summary.WordCount = util.CountWords(m.endedText)
	m.summary.CharCount = util.CountRunes(m.endedText)
	m.summary.WrittenSecs = m.writtenSecs
	m.summary.EraseCount = m.engine.EraseCount()
	m.summary.Exported = ""

	if m.history != nil {
		rec := &storage.SessionRecord{
			ID:           m.engine.SessionID(),
			StartedAt:    m.engine.StartedAt(),
			EndedAt:      now,
			DurationSecs: m.cfg.Session.DurationSecs,
			TimeoutSecs:  m.cfg.Session.TimeoutSecs,
			Completed:    completed,
			WordCount:    m.summary.WordCount,
			CharCount:    m.summary.CharCount,
			EraseCount:   m.summary.EraseCount,
		}
		if err := m.history.Record(rec); err != nil {
			m.errMsg = "history: " + err.Error()
		}
	}
}

// exportSession writes the surviving text to the export directory.
func (m *Model) exportSession() {
	dir, err := m.cfg.ExportDir()
	if err != nil {
		m.errMsg = "export: " + err.Error()
		return
	}

	opts := &export.Options{OutputDir: dir, IncludeMetadata: true}
	exporter, err := export.ForFormat(m.cfg.Export.Format, opts)
	if err != nil {
		m.errMsg = "export: " + err.Error()
		return
	}

	sess := &export.Session{
		ID:           m.engine.SessionID(),
		StartedAt:    m.engine.StartedAt(),
		EndedAt:      m.endedAt,
		DurationSecs: m.cfg.Session.DurationSecs,
		TimeoutSecs:  m.cfg.Session.TimeoutSecs,
		Completed:    m.summary.Completed,
		EraseCount:   m.summary.EraseCount,
		Text:         m.endedText,
	}

	path, err := export.ExportToFile(sess, exporter, opts)
	if err != nil {
		m.errMsg = "export: " + err.Error()
		return
	}
	m.exportedTo = path
	m.summary.Exported = path
}
