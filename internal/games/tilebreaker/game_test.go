package tilebreaker

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tilebreaker/internal/config"
	"github.com/vovakirdan/tilebreaker/internal/core"
	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/engine"
	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/puzzles"
)

// newTestGame builds a game around a fixed layout. grid[row][col], row 0 at the bottom.
func newTestGame(t *testing.T, grid [][]engine.Color, colors int) *Game {
	t.Helper()

	cfg := config.DefaultTileBreakerConfig()
	cfg.Board.Width = len(grid)
	cfg.Board.Colors = colors

	s, err := engine.NewGameFromGrid(grid,
		engine.WithColors(colors),
		engine.WithColorSource(engine.NewSequenceSource(1, 2, 3)),
	)
	if err != nil {
		t.Fatalf("NewGameFromGrid() failed: %v", err)
	}

	g := New()
	g.start(cfg, s)
	g.Resize(80, 24)
	return g
}

// useDefaultConfig points Reset at a freshly written default config file.
func useDefaultConfig(t *testing.T, width, colors int) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tilebreaker.yaml")
	if err := config.WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}
	SetConfigPath(path)
	SetBoardOverrides(width, colors)
	t.Cleanup(func() {
		SetConfigPath("")
		SetBoardOverrides(0, 0)
	})
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func click(x, y int) core.InputFrame {
	in := core.NewInputFrame()
	in.SetClick(x, y)
	return in
}

// pairGrid: breaking the pair at the bottom left leaves no moves.
var pairGrid = [][]engine.Color{
	{1, 1, 2},
	{2, 3, 1},
	{3, 2, 3},
}

func TestResetBuildsFullBoard(t *testing.T) {
	useDefaultConfig(t, 6, 3)

	g := New()
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	snap := g.Snapshot()
	if snap.Layout != "6x3" {
		t.Errorf("Layout = %q, expected %q", snap.Layout, "6x3")
	}
	if len(snap.Board) != 6 {
		t.Fatalf("board has %d rows, expected 6", len(snap.Board))
	}
	for row, cells := range snap.Board {
		for col, c := range cells {
			if c < 1 || c > 3 {
				t.Errorf("cell (%d,%d) = %d, expected a color in 1..3", row, col, c)
			}
		}
	}
	if snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("fresh game score/moves = %d/%d, expected 0/0", snap.Score, snap.Moves)
	}
	if (snap.State == StateGameOver) == g.Session().HasValidMoves() {
		t.Errorf("State = %s disagrees with HasValidMoves() = %v", snap.State, g.Session().HasValidMoves())
	}
}

func TestResetDeterministic(t *testing.T) {
	useDefaultConfig(t, 8, 4)
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345}

	g1, g2 := New(), New()
	if err := g1.Reset(rt); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if err := g2.Reset(rt); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if !reflect.DeepEqual(g1.Snapshot().Board, g2.Snapshot().Board) {
		t.Error("same seed should produce the same board")
	}
}

func TestResetRejectsInvalidOverride(t *testing.T) {
	useDefaultConfig(t, 0, 1)

	err := New().Reset(core.DefaultConfig())
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Reset() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(t, pairGrid, 3)

	tests := []struct {
		action   core.Action
		expected engine.Pos
	}{
		{core.ActionDown, engine.P(0, 0)}, // clamped at the bottom row
		{core.ActionUp, engine.P(1, 0)},
		{core.ActionUp, engine.P(2, 0)},
		{core.ActionUp, engine.P(2, 0)}, // clamped at the top row
		{core.ActionRight, engine.P(2, 1)},
		{core.ActionRight, engine.P(2, 2)},
		{core.ActionRight, engine.P(2, 2)},
		{core.ActionLeft, engine.P(2, 1)},
		{core.ActionDown, engine.P(1, 1)},
	}

	for i, tt := range tests {
		g.Step(frame(tt.action))
		if g.Cursor() != tt.expected {
			t.Errorf("step %d (%s): cursor = %v, expected %v", i, tt.action, g.Cursor(), tt.expected)
		}
	}
}

func TestConfirmBreaksRegion(t *testing.T) {
	g := newTestGame(t, pairGrid, 3)

	res := g.Step(frame(core.ActionConfirm))

	if res.State.Moves != 1 {
		t.Errorf("Moves = %d, expected 1", res.State.Moves)
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected 0", res.State.Score)
	}

	expected := [][]engine.Color{
		{2, 3, 2},
		{3, 2, 1},
		{0, 0, 3},
	}
	if got := g.Snapshot().Board; !reflect.DeepEqual(got, expected) {
		t.Errorf("board = %v, expected %v", got, expected)
	}
	if !res.State.GameOver {
		t.Error("board without adjacent pairs should end the game")
	}
}

func TestInvalidClickIgnored(t *testing.T) {
	g := newTestGame(t, pairGrid, 3)
	before := g.Snapshot().Board

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionUp))
	res := g.Step(frame(core.ActionConfirm))

	if res.State.Moves != 0 {
		t.Errorf("Moves = %d, expected 0", res.State.Moves)
	}
	if !reflect.DeepEqual(g.Snapshot().Board, before) {
		t.Error("a single tile click should not change the board")
	}
	if res.State.GameOver {
		t.Error("game should continue after an ignored click")
	}
}

func TestPointerClick(t *testing.T) {
	g := newTestGame(t, pairGrid, 3)

	// Outside the board
	g.Step(click(0, 0))
	if g.Snapshot().Moves != 0 {
		t.Fatal("click outside the board should be ignored")
	}

	// Right half of the tile at (0, 1)
	x, y := g.screenPos(0, 1)
	g.Step(click(x+1, y))

	if g.Cursor() != engine.P(0, 1) {
		t.Errorf("cursor = %v, expected the clicked cell", g.Cursor())
	}
	if g.Snapshot().Moves != 1 {
		t.Errorf("Moves = %d, expected 1", g.Snapshot().Moves)
	}
}

func TestCellAtRoundTrip(t *testing.T) {
	grid := [][]engine.Color{
		{1, 2, 3, 1},
		{2, 3, 1, 2},
		{3, 1, 2, 3},
		{1, 2, 3, 1},
	}
	g := newTestGame(t, grid, 3)

	for row := range 4 {
		for col := range 4 {
			x, y := g.screenPos(row, col)
			for dx := range cellWidth {
				r, c, ok := g.CellAt(x+dx, y)
				if !ok || r != row || c != col {
					t.Errorf("CellAt(%d,%d) = (%d,%d,%v), expected (%d,%d,true)", x+dx, y, r, c, ok, row, col)
				}
			}
		}
	}

	box := g.boardRect()
	if _, _, ok := g.CellAt(box.X, box.Y); ok {
		t.Error("frame corner should not map to a board cell")
	}

	// Row 0 is drawn below row 1
	_, y0 := g.screenPos(0, 0)
	_, y1 := g.screenPos(1, 0)
	if y0 != y1+1 {
		t.Errorf("row 0 at y=%d, row 1 at y=%d; expected row 0 directly below", y0, y1)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, pairGrid, 3)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused after pause action")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Snapshot().Moves != 0 {
		t.Error("moves should be ignored while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StatePaused)
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := newTestGame(t, pairGrid, 3)
	g.Resize(20, 5)

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}
	if !g.State().Paused {
		t.Error("too-small window should report paused")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Snapshot().Moves != 0 {
		t.Error("input should be ignored while the window is too small")
	}

	screen := core.NewScreen(20, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State after resize = %s, expected %s", g.Snapshot().State, StatePlaying)
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, pairGrid, 3)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// (2,2) holds color 3, the third palette entry
	x, y := g.screenPos(2, 2)
	for dx := range cellWidth {
		cell := screen.GetCell(x+dx, y)
		if cell.Rune != '█' || cell.Color != core.ColorGreen {
			t.Errorf("cell at (%d,%d) = %+v, expected green tile", x+dx, y, cell)
		}
	}

	cx, cy := g.screenPos(0, 0)
	if !screen.GetCell(cx, cy).Reverse {
		t.Error("cursor cell should be drawn reversed")
	}

	if !strings.Contains(screen.Row(1), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(1))
	}
	if !strings.Contains(screen.Row(2), "Selection: 2 tiles") {
		t.Errorf("HUD row = %q, expected selection preview", screen.Row(2))
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, pairGrid, 3)
	g.Step(frame(core.ActionConfirm))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "NO MORE MOVES") {
		t.Errorf("expected game over overlay, got:\n%s", screen.String())
	}
}

func TestBestSurvivesReset(t *testing.T) {
	useDefaultConfig(t, 4, 3)

	grid := [][]engine.Color{
		{1, 2},
		{1, 2},
	}
	g := newTestGame(t, grid, 3)

	res := g.Step(frame(core.ActionConfirm))
	if res.State.Score != 1 {
		t.Fatalf("Score = %d, expected 1 for a cleared column", res.State.Score)
	}
	if g.Best() != 1 {
		t.Errorf("Best() = %d, expected 1", g.Best())
	}

	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.State().Score != 0 {
		t.Errorf("Score after reset = %d, expected 0", g.State().Score)
	}
	if g.Best() != 1 {
		t.Errorf("Best() after reset = %d, expected 1", g.Best())
	}
}

func TestGameOverIgnoresInput(t *testing.T) {
	g := newTestGame(t, pairGrid, 3)
	g.Step(frame(core.ActionConfirm))

	res := g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("pause should not toggle after game over")
	}
	g.Step(frame(core.ActionUp))
	if g.Cursor() != engine.P(0, 0) {
		t.Errorf("cursor moved to %v after game over", g.Cursor())
	}
}

func TestResetFromPuzzle(t *testing.T) {
	useDefaultConfig(t, 10, 5)

	p, err := puzzles.ParseYAML([]byte("id: pair\nrows: [\"12\", \"11\"]\n"))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	SetPuzzle(&p)
	t.Cleanup(func() { SetPuzzle(nil) })

	g := New()
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	snap := g.Snapshot()
	if snap.Layout != "puzzle-pair" {
		t.Errorf("Layout = %q, expected puzzle-pair", snap.Layout)
	}
	expected := [][]engine.Color{{1, 1}, {1, 2}}
	if !reflect.DeepEqual(snap.Board, expected) {
		t.Errorf("Board = %v, expected %v", snap.Board, expected)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %v, expected playing", snap.State)
	}
}
