package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilebreaker/internal/core"
)

// cellStyle returns the lipgloss style for a cell's color and reverse flag.
func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code := c.Color.ANSI(); code != "" {
		style = style.Foreground(lipgloss.Color(code))
	}
	return style.Reverse(c.Reverse)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are written as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Reverse != start.Reverse {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
