// Package tilebreaker adapts the board engine to the arcade platform:
// a cursor, mouse clicks, pause and game-over handling around a Session.
package tilebreaker

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tilebreaker/internal/config"
	"github.com/vovakirdan/tilebreaker/internal/core"
	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/engine"
	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/puzzles"
	"github.com/vovakirdan/tilebreaker/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "tilebreaker"

// Game implements registry.Game for TileBreaker.
type Game struct {
	cfg      config.TileBreakerConfig
	palette  []core.Color
	session  *engine.Session
	layout   string
	tick     uint64
	cursor   engine.Pos
	best     int // best score since the process started this game
	lastGain int // columns scored by the last applied move
	lastHit  int // tiles cleared by the last applied move

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level settings applied on every Reset, set from the CLI.
var (
	configPath     string
	widthOverride  int
	colorsOverride int
	puzzle         *puzzles.Puzzle
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetBoardOverrides replaces the configured width and color count.
// Zero keeps the configured value.
func SetBoardOverrides(width, colors int) {
	widthOverride = width
	colorsOverride = colors
}

// SetPuzzle makes every Reset start from the puzzle's board instead of a
// random one. nil goes back to random boards.
func SetPuzzle(p *puzzles.Puzzle) {
	puzzle = p
}

// New creates a new TileBreaker game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "TileBreaker"
}

// LoadConfig resolves the config the next Reset will use.
// A puzzle's board replaces the configured one.
func LoadConfig() (config.TileBreakerConfig, string, error) {
	cfg, source, err := config.LoadTileBreaker(configPath)
	if err != nil {
		return cfg, source, err
	}
	if puzzle != nil {
		cfg.ApplyOverrides(puzzle.Width(), puzzle.Colors)
	} else {
		cfg.ApplyOverrides(widthOverride, colorsOverride)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// Reset starts a new board. The best score survives resets.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	cfg, _, err := LoadConfig()
	if err != nil {
		return err
	}

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := engine.NewRandomSource(seed, cfg.Board.Colors)

	var session *engine.Session
	if puzzle != nil {
		session, err = puzzle.NewSession(src)
	} else {
		session, err = engine.NewGame(cfg.Board.Width,
			engine.WithColors(cfg.Board.Colors),
			engine.WithColorSource(src),
		)
	}
	if err != nil {
		return fmt.Errorf("tilebreaker: %w", err)
	}

	g.start(cfg, session)
	if puzzle != nil {
		g.layout = puzzle.Layout()
	}
	g.Resize(rt.ScreenW, rt.ScreenH)
	return nil
}

// start installs a fresh session and clears per-round state.
func (g *Game) start(cfg config.TileBreakerConfig, session *engine.Session) {
	g.cfg = cfg
	g.palette = cfg.PaletteColors()
	g.session = session
	g.layout = cfg.Layout()
	g.tick = 0
	g.cursor = engine.P(0, 0)
	g.lastGain = 0
	g.lastHit = 0
	g.paused = false
	g.gameOver = !session.HasValidMoves()
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the HUD and the board.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Layout returns the key scores are grouped by, e.g. "10x5", or
// "puzzle-<id>" when playing a puzzle.
func (g *Game) Layout() string {
	return g.layout
}

// Session exposes the underlying engine session, nil before Reset.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch {
	case in.Click != nil:
		if row, col, ok := g.CellAt(in.Click.X, in.Click.Y); ok {
			g.cursor = engine.P(row, col)
			g.click(row, col)
		}
	case in.Has(core.ActionConfirm):
		g.click(g.cursor.Row, g.cursor.Col)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor moves the cursor one cell per pressed direction.
// Row 0 is drawn at the bottom, so Up increases the row.
func (g *Game) moveCursor(in core.InputFrame) {
	last := g.session.Width() - 1
	if in.Has(core.ActionUp) {
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, last)
	}
	if in.Has(core.ActionDown) {
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, last)
	}
	if in.Has(core.ActionLeft) {
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, last)
	}
	if in.Has(core.ActionRight) {
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, last)
	}
}

// click performs a move. Clicks that clear nothing are ignored.
func (g *Game) click(row, col int) {
	res, err := g.session.PerformMove(row, col)
	if err != nil || !res.Applied {
		return
	}

	g.lastHit = len(res.Cleared)
	g.lastGain = res.ScoreDelta
	g.best = max(g.best, g.session.Score())

	if !g.session.HasValidMoves() {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Moves:    g.session.Moves(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Best returns the highest score reached since the game was created.
func (g *Game) Best() int {
	return g.best
}

// Cursor returns the board cell under the cursor.
func (g *Game) Cursor() engine.Pos {
	return g.cursor
}
