package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tilebreaker/internal/core"
	"github.com/vovakirdan/tilebreaker/internal/registry"
	"github.com/vovakirdan/tilebreaker/internal/storage"
)

// ScoreStore is the subset of storage the game loop writes to.
type ScoreStore interface {
	SaveScore(rec storage.ScoreRecord) (int64, error)
}

// layoutGame is implemented by games whose scores depend on board settings.
type layoutGame interface {
	Layout() string
}

// Options configures a GameModel.
type Options struct {
	Player string      // recorded with every score
	Logger *log.Logger // nil discards log output
}

// GameModel is the Bubble Tea model that runs one game: it feeds input to
// the game each tick, renders it and saves each finished round once.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreStore
	config     core.RuntimeConfig
	keys       KeyMap
	logger     *log.Logger
	player     string
	roundID    string
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	showScores bool
	scoreSaved bool
}

// NewGameModel resets the game and returns a model ready to run it.
// store may be nil, in which case rounds are not recorded.
func NewGameModel(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, opts Options) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := game.Reset(cfg); err != nil {
		return GameModel{}, fmt.Errorf("tui: cannot start %s: %w", game.ID(), err)
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		logger:     logger,
		player:     opts.Player,
		roundID:    uuid.NewString(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
	m.logger.Debug("round started", "round", m.roundID, "layout", m.layout(), "seed", cfg.Seed)
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.showScores = true
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize follows the terminal size. Games that can relayout keep
// their board; others restart.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.restart()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new round with a fresh seed.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("cannot restart", "game", m.game.ID(), "error", err)
		return
	}
	m.gameState = m.game.State()
	m.roundID = uuid.NewString()
	m.scoreSaved = false
	m.logger.Debug("round started", "round", m.roundID, "layout", m.layout(), "seed", m.config.Seed)
}

// saveScore records the finished round. Failures are logged, never fatal.
func (m *GameModel) saveScore() {
	m.logger.Info("game over",
		"player", m.player,
		"layout", m.layout(),
		"score", m.gameState.Score,
		"moves", m.gameState.Moves,
	)

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreRecord{
		RoundID: m.roundID,
		Layout:  m.layout(),
		Player:  m.player,
		Score:   m.gameState.Score,
		Moves:   m.gameState.Moves,
	})
	if err != nil {
		m.logger.Error("cannot save score", "round", m.roundID, "error", err)
	}
}

// layout returns the key scores of the current game are grouped by.
func (m GameModel) layout() string {
	if lg, ok := m.game.(layoutGame); ok {
		return lg.Layout()
	}
	return m.game.ID()
}

// saveScreenshot writes the current screen as plain text under the XDG data dir.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path, err := xdg.DataFile("tilebreaker/screenshots/" + name)
	if err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsScores returns true if the user asked for the scoreboard.
func (m GameModel) WantsScores() bool {
	return m.showScores
}

// Layout returns the score layout of the running game.
func (m GameModel) Layout() string {
	return m.layout()
}

// RoundID returns the ID of the round in progress.
func (m GameModel) RoundID() string {
	return m.roundID
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}
