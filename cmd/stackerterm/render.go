package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/stackerterm/pkg/game"
	"github.com/qnkhuat/stackerterm/pkg/stacker"
)

const (
	cellWidth = 2

	textMajorPrize = "MAJOR PRIZE"
	textMinorPrize = "MINOR PRIZE"
	textWin        = "YOU WIN!"
	textLose       = "GAME OVER"
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawCentered places text centered within width columns starting at x.
func drawCentered(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	pad := (width - utf8.RuneCountInString(text)) / 2
	if pad < 0 {
		pad = 0
	}
	drawText(s, x+pad, y, style, text)
}

func fill(s tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

// boardSize returns the screen area taken by drawBoard.
func boardSize(snap stacker.Snapshot) (int, int) {
	return snap.Columns*cellWidth + 2, snap.Rows + 4
}

func cellStyle(c stacker.Cell, t Theme) tcell.Style {
	style := tcell.StyleDefault.Background(t.Background)
	switch c {
	case stacker.CellStack:
		return style.Foreground(t.Stack)
	case stacker.CellMoving:
		return style.Foreground(t.Moving)
	default:
		return style.Foreground(t.Empty)
	}
}

// drawBoard draws the cabinet at (x, y): the major prize banner, the
// bordered grid with the top row first, the minor prize banner and, once
// the game is over, the result overlay.
func drawBoard(s tcell.Screen, x, y int, snap stacker.Snapshot, t Theme, restartKey string) {
	width, _ := boardSize(snap)
	inner := width - 2

	banner := tcell.StyleDefault.Foreground(t.Banner)
	fill(s, x, y, width, banner.Background(t.Major))
	drawCentered(s, x, y, width, banner.Background(t.Major).Bold(true), textMajorPrize)

	border := tcell.StyleDefault.Foreground(t.Border).Background(t.Background)
	s.SetContent(x, y+1, tcell.RuneULCorner, nil, border)
	s.SetContent(x+width-1, y+1, tcell.RuneURCorner, nil, border)
	for i := 1; i <= inner; i++ {
		s.SetContent(x+i, y+1, tcell.RuneHLine, nil, border)
	}

	for row := snap.Rows - 1; row >= 0; row-- {
		sy := y + 2 + (snap.Rows - 1 - row)

		s.SetContent(x, sy, tcell.RuneVLine, nil, border)
		for col := 0; col < snap.Columns; col++ {
			c := snap.Cell(col, row)
			style := cellStyle(c, t)

			sx := x + 1 + col*cellWidth
			if c == stacker.CellEmpty {
				s.SetContent(sx, sy, ' ', nil, style)
				s.SetContent(sx+1, sy, c.Rune(), nil, style)
			} else {
				s.SetContent(sx, sy, c.Rune(), nil, style)
				s.SetContent(sx+1, sy, c.Rune(), nil, style)
			}
		}
		s.SetContent(x+width-1, sy, tcell.RuneVLine, nil, border)
	}

	by := y + 2 + snap.Rows
	s.SetContent(x, by, tcell.RuneLLCorner, nil, border)
	s.SetContent(x+width-1, by, tcell.RuneLRCorner, nil, border)
	for i := 1; i <= inner; i++ {
		s.SetContent(x+i, by, tcell.RuneHLine, nil, border)
	}

	fill(s, x, by+1, width, banner.Background(t.Minor))
	drawCentered(s, x, by+1, width, banner.Background(t.Minor).Bold(true), textMinorPrize)

	if snap.State.Terminal() {
		drawOverlay(s, x+1, y+2, inner, snap, t, restartKey)
	}
}

func drawOverlay(s tcell.Screen, x, y, width int, snap stacker.Snapshot, t Theme, restartKey string) {
	text, color := textLose, t.Lose
	if snap.State == stacker.StateWon {
		text, color = textWin, t.Win
	}

	oy := y + snap.Rows*2/5
	style := tcell.StyleDefault.Background(t.Background)

	fill(s, x, oy, width, style)
	drawCentered(s, x, oy, width, style.Foreground(color).Bold(true), text)

	fill(s, x, oy+1, width, style)
	drawCentered(s, x, oy+1, width, style.Foreground(t.Text), restartLabel(restartKey))
}

func restartLabel(key string) string {
	if key == "" {
		return "RESTART"
	}
	return fmt.Sprintf("RESTART (%s)", strings.ToUpper(key))
}

// renderSide returns the side panel text.
func renderSide(player string, snap stacker.Snapshot, stats game.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Player\n  %s\n\n", player)
	fmt.Fprintf(&b, "Height\n  %d / %d\n\n", snap.Height(), snap.Rows-1)
	fmt.Fprintf(&b, "Speed\n  %s\n\n", snap.Speed)
	fmt.Fprintf(&b, "State\n  %s\n\n", snap.State)
	fmt.Fprintf(&b, "Games\n  %d (%d won)\n\n", stats.Played, stats.Won)
	fmt.Fprintf(&b, "Best\n  %d", stats.Best)

	return b.String()
}
