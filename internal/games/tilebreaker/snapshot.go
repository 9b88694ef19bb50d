package tilebreaker

import "github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Layout string
	Score  int
	Moves  int
	Best   int
	Cursor engine.Pos
	Board  [][]engine.Color // row 0 is the bottom row
	State  GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:   g.tick,
		Layout: g.Layout(),
		Best:   g.best,
		Cursor: g.cursor,
		State:  state,
	}
	if g.session != nil {
		s.Score = g.session.Score()
		s.Moves = g.session.Moves()
		s.Board = g.session.Snapshot()
	}
	return s
}
