// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package writer provides the writing view for the TUI.
package writer

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/gauntlet-tui/internal/config"
	"github.com/jeranaias/gauntlet-tui/internal/engine"
	"github.com/jeranaias/gauntlet-tui/internal/storage"
	"github.com/jeranaias/gauntlet-tui/internal/ui/components"
	"github.com/jeranaias/gauntlet-tui/internal/ui/styles"
)

// =============================================================================
// WRITER MODEL
// =============================================================================

// flashTicks is how many 1 Hz ticks the erase flash stays on screen.
const flashTicks = 2

// eventBuffer collects engine events emitted during a single Update call.
// The engine delivers synchronously, so the buffer needs no locking; the
// model drains it after every engine call. It lives behind a pointer because
// Bubble Tea copies the model on every update.
type eventBuffer struct {
	events []engine.Event
}

func (b *eventBuffer) Notify(e engine.Event) {
	b.events = append(b.events, e)
}

func (b *eventBuffer) drain() []engine.Event {
	evs := b.events
	b.events = nil
	return evs
}

// Model is the Bubble Tea model for the writing view.
type Model struct {
	// Configuration
	cfg     *config.Config
	version string

	// Engine
	engine *engine.Controller
	events *eventBuffer

	// Persistence, nil when history is disabled
	history *storage.HistoryStore

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// UI components
	textarea  textarea.Model
	countdown components.Countdown
	danger    components.DangerMeter
	statusBar *components.StatusBar
	summary   components.SummaryCard
	welcome   components.Welcome

	// Key bindings
	keyMap KeyMap

	// Erase flash state
	flashRemaining int

	// End-of-session state
	endedText   string
	endedAt     time.Time
	writtenSecs int
	exportedTo  string

	// Error display, cleared on the next key
	errMsg string

	// now is stubbed in tests
	now func() time.Time
}

// New creates the writing view. The history store may be nil.
func New(cfg *config.Config, history *storage.HistoryStore, version string) (*Model, error) {
	events := &eventBuffer{}
	ctrl, err := engine.NewController(cfg.Engine(), events)
	if err != nil {
		return nil, err
	}

	theme := styles.NewTheme()

	ta := textarea.New()
	ta.Placeholder = "Start typing. Stop and it all goes away."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Blur()

	welcome := components.NewWelcome(theme)
	welcome.SetVersion(version)
	welcome.SetSessionConfig(cfg.Session.DurationSecs, cfg.Session.TimeoutSecs)

	statusBar := components.NewStatusBar(theme)
	statusBar.ShowWords = cfg.UI.ShowWordCount

	m := &Model{
		cfg:       cfg,
		version:   version,
		engine:    ctrl,
		events:    events,
		history:   history,
		theme:     theme,
		textarea:  ta,
		countdown: components.NewCountdown(theme, cfg.Session.DurationSecs),
		danger:    components.NewDangerMeter(theme, cfg.Session.TimeoutSecs),
		statusBar: statusBar,
		summary:   components.NewSummaryCard(theme),
		welcome:   welcome,
		keyMap:    DefaultKeyMap(),
		now:       time.Now,
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Phase exposes the engine phase for the view and for tests.
func (m *Model) Phase() engine.Phase {
	return m.engine.Phase()
}

// =============================================================================
// TICK SCHEDULING
// =============================================================================

// tickMsg is the 1 Hz clock driving the engine. It carries the wall time so
// the engine can burn real elapsed seconds even when the scheduler lags.
type tickMsg time.Time

// tick schedules the next clock tick. It is only ever scheduled while a
// session is active; the engine ignores any stale tick that arrives after
// the session ends.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
