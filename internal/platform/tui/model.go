package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// footerHeight is the number of rows reserved below the board for help.
const footerHeight = 1

// resizer is implemented by games that can adapt to a new terminal size
// without a reset.
type resizer interface {
	Resize(width, height int)
}

// Options configures the terminal shell.
type Options struct {
	Logger  *log.Logger // Nil discards log records
	Palette Palette     // Nil uses DefaultPalette
}

// Model is the Bubble Tea model that drives a game.
// Bubble Tea delivers messages sequentially, so the game only ever sees
// signals from one goroutine.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	palette    Palette
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// cfg.ScreenH is the full terminal height; the board gets what the footer leaves.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	boardCfg := cfg
	boardCfg.ScreenH = max(cfg.ScreenH-footerHeight, 1)
	game.Reset(boardCfg)

	logger.Info("game ready", "game", game.ID(), "seed", cfg.Seed, "cols", cfg.ScreenW, "rows", boardCfg.ScreenH)

	return Model{
		game:       game,
		screen:     core.NewScreen(boardCfg.ScreenW, boardCfg.ScreenH),
		config:     boardCfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		palette:    palette,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
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
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns motion into pointer moves and a left press into a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.inputFrame.MovePointer(msg.X)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.MovePointer(msg.X)
			m.inputFrame.Set(core.ActionClick)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else {
		m.game.Reset(m.config)
	}

	m.logger.Debug("resize", "cols", m.config.ScreenW, "rows", m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	// The game gets its own copy; the model reuses its frame.
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State
	m.logTransition(prev, m.gameState)
	if result.Events != "" {
		m.logger.Debug("tick", "events", result.Events)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransition records state changes worth keeping in the log.
func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case cur.Outcome != prev.Outcome && cur.Outcome != core.OutcomeNone:
		m.logger.Info("round over", "outcome", string(cur.Outcome), "score", cur.Score)
	case !prev.Started && cur.Started:
		m.logger.Info("ball launched", "lives", cur.Lives)
	case cur.Lives < prev.Lives:
		m.logger.Info("life lost", "lives", cur.Lives, "score", cur.Score)
	case cur.Score != prev.Score && cur.Outcome == core.OutcomeNone:
		m.logger.Debug("score", "score", cur.Score)
	}

	if cur.Paused != prev.Paused {
		m.logger.Debug("pause", "paused", cur.Paused)
	}
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer tracking without a held button
	)

	_, err := p.Run()
	return err
}
