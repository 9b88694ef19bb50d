package tilebreaker

import (
	"fmt"

	"github.com/vovakirdan/tilebreaker/internal/core"
	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/engine"
)

const (
	cellWidth = 2 // screen columns per tile
	hudHeight = 3
	minWidth  = 34 // fits the HUD lines
)

// minSize returns the smallest screen that fits the HUD, board and footer.
func (g *Game) minSize() (int, int) {
	w := g.cfg.Board.Width
	return max(w*cellWidth+2, minWidth), hudHeight + w + 2 + 2
}

// boardRect returns the framed board area on screen.
func (g *Game) boardRect() core.Rect {
	w := g.cfg.Board.Width
	boardW := w*cellWidth + 2
	return core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, w+2)
}

// cellsRect returns the area inside the frame where tiles are drawn.
func (g *Game) cellsRect() core.Rect {
	return g.boardRect().Inset(1)
}

// CellAt maps a screen cell to the board cell drawn there.
func (g *Game) CellAt(x, y int) (row, col int, ok bool) {
	if g.session == nil || g.tooSmall {
		return 0, 0, false
	}
	inner := g.cellsRect()
	if !inner.Contains(x, y) {
		return 0, 0, false
	}
	col = (x - inner.X) / cellWidth
	row = g.session.Width() - 1 - (y - inner.Y)
	return row, col, true
}

// screenPos returns the top-left screen cell of a board cell.
func (g *Game) screenPos(row, col int) (int, int) {
	inner := g.cellsRect()
	return inner.X + col*cellWidth, inner.Y + g.session.Width() - 1 - row
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.boardRect()
	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	dst.DrawTextCentered(board.Bottom()+1, g.Controls())
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	minW, minH := g.minSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title, counters and the selection preview.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawTextCentered(0, g.Title())

	stats := fmt.Sprintf("Score: %d  Moves: %d  Best: %d", g.session.Score(), g.session.Moves(), g.best)
	dst.DrawTextCentered(1, stats)

	selection := "Selection: -"
	if n := g.session.RegionSize(g.cursor.Row, g.cursor.Col); n > 0 {
		selection = fmt.Sprintf("Selection: %d tiles", n)
	}
	if g.lastHit > 0 {
		selection += fmt.Sprintf("  Last: %d tiles, +%d", g.lastHit, g.lastGain)
	}
	dst.DrawTextCentered(2, selection)
}

// renderBoard draws the frame and every tile, row 0 at the bottom.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBoxColored(board, g.cfg.FrameColor())

	tileRune := g.cfg.TileRune()
	for _, t := range g.session.Tiles() {
		x, y := g.screenPos(t.Row, t.Col)
		cell := core.Cell{Rune: tileRune, Color: g.tileColor(t.Color)}
		for i := range cellWidth {
			dst.SetCell(x+i, y, cell)
		}
	}

	if g.gameOver {
		return
	}
	x, y := g.screenPos(g.cursor.Row, g.cursor.Col)
	cursor := core.Cell{Rune: '▒', Color: g.tileColor(g.session.ColorAt(g.cursor.Row, g.cursor.Col)), Reverse: true}
	if g.session.ColorAt(g.cursor.Row, g.cursor.Col) == engine.ColorEmpty {
		cursor = core.Cell{Rune: ' ', Reverse: true}
	}
	for i := range cellWidth {
		dst.SetCell(x+i, y, cursor)
	}
}

// tileColor maps a tile color to its palette entry.
func (g *Game) tileColor(c engine.Color) core.Color {
	if int(c) < len(g.palette) {
		return g.palette[c]
	}
	return core.ColorDefault
}

// renderOverlays draws the pause and game over boxes.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	if g.paused {
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		drawOverlay(dst, cx, cy,
			"NO MORE MOVES",
			fmt.Sprintf("Score: %d in %d moves", g.session.Score(), g.session.Moves()),
			"Press R to restart")
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.CenteredAt(centerX, centerY, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len([]rune(line))/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Click: Break | P: Pause | R: Restart | Q: Quit"
}
