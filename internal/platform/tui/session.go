package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilebreaker/internal/core"
	"github.com/vovakirdan/tilebreaker/internal/registry"
	"github.com/vovakirdan/tilebreaker/internal/storage"
)

// Store is what a session needs from score storage.
type Store interface {
	ScoreStore
	ScoreReader
}

var _ Store = (*storage.Store)(nil)

// SessionModel switches between the game and the scoreboard.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	game       GameModel
	scoreboard *ScoreboardModel
	store      Store
	width      int
	height     int
	quitting   bool
}

// NewSessionModel starts the game and wraps it in a session.
func NewSessionModel(game registry.Game, store Store, cfg core.RuntimeConfig, opts Options) (SessionModel, error) {
	var scores ScoreStore
	if store != nil {
		scores = store
	}
	gm, err := NewGameModel(game, scores, cfg, opts)
	if err != nil {
		return SessionModel{}, err
	}

	return SessionModel{
		game:   gm,
		store:  store,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}, nil
}

// Init starts the game's tick loop.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the scoreboard while it is open, else to the game.
// Ticks always reach the game so its loop keeps running.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.scoreboard != nil {
		if _, isTick := msg.(TickMsg); !isTick {
			return m.updateScoreboard(msg)
		}
	}
	return m.updateGame(msg)
}

// updateGame handles updates while the game is shown.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.WantsScores() {
		m.game.showScores = false
		if m.store != nil {
			sb := NewScoreboardModel(m.store, m.width, m.height, m.game.Layout())
			sb.embedded = true
			m.scoreboard = &sb
		}
	}

	return m, cmd
}

// updateScoreboard handles updates while the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The game follows resizes too so it is laid out on return.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		next, _ := m.game.Update(wsm)
		if gm, ok := next.(GameModel); ok {
			m.game = gm
		}
	}

	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// View renders whichever screen is active.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	return m.game.View()
}

// Game returns the wrapped game model.
func (m SessionModel) Game() GameModel {
	return m.game
}

// ShowingScores reports whether the scoreboard is open.
func (m SessionModel) ShowingScores() bool {
	return m.scoreboard != nil
}

// Run plays the game in the local terminal until the user quits.
func Run(game registry.Game, store Store, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewSessionModel(game, store, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
