package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// ScoreSaver persists a finished game's score. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveScore(gameID string, score int, difficulty string) (int64, error)
}

var _ ScoreSaver = (*storage.Store)(nil)

// Model is the Bubble Tea model that drives one game session.
// Input is buffered between ticks and drained once per tick.
type Model struct {
	session    *flappy.Session
	screen     *core.Screen
	store      ScoreSaver
	config     core.RuntimeConfig
	difficulty config.DifficultyPreset
	events     *core.EventQueue
	keyMapper  *KeyMapper
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model running a fresh session.
// store may be nil, in which case scores are not persisted.
func NewModel(game config.GameConfig, difficulty config.DifficultyPreset, store ScoreSaver, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		session:    flappy.NewSession(game, rand.New(rand.NewSource(cfg.Seed))),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		events:     core.NewEventQueue(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := m.keyMapper.MapKey(msg); ok {
			m.events.Push(ev)
		}
		return m, nil

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.events.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The field is scaled to the terminal; the simulation is unaffected.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick drains buffered input, advances the session one step and
// records the score once per game over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	quit := m.session.Advance(m.events.Drain())

	if !m.session.Terminal() {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		if m.store != nil && m.session.Score() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(flappy.ID, m.session.Score(), string(m.difficulty))
		}
		m.scoreSaved = true
	}

	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Session exposes the running session.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Run starts the Bubble Tea program and blocks until the player quits.
// store may be nil.
func Run(game config.GameConfig, difficulty config.DifficultyPreset, store *storage.Store, cfg core.RuntimeConfig) error {
	var saver ScoreSaver
	if store != nil {
		saver = store
	}
	model := NewModel(game, difficulty, saver, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
