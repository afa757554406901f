// apps/go-tui/internal/tui/render.go
//
// Renderer. Reads the board once per frame and draws:
//   - a title line,
//   - the 6x5 grid as bordered 5x3 boxes colored by verdict,
//   - a status line (key help, win or loss message),
//   - an A–Z keyboard summary colored by the best verdict per letter.
//
// Read-only over the board.

package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

const (
	cellW = 5
	cellH = 3
	gridW = game.Cols * cellW
	gridH = game.Rows * cellH

	gridTop = 2

	helpText = "(Esc) quit | (Enter) submit | (Backspace) delete"
)

// Draw renders one full frame of b onto s.
func Draw(s tcell.Screen, b *game.Board) {
	s.Clear()
	w, _ := s.Size()
	x0 := max((w-gridW)/2, 0)

	drawCentered(s, w, 0, "W O R D L E", titleStyle)

	cursorRow, cursorCol := b.Cursor()
	active := !b.Finished()
	cells := b.Cells()
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			x, y := cellOrigin(x0, r, c)
			drawBox(s, x, y, cells[r][c], active && r == cursorRow && c == cursorCol)
		}
	}

	drawCentered(s, w, gridTop+gridH+1, statusLine(b), baseStyle)
	drawKeyboard(s, w, gridTop+gridH+3, b.LetterHints())
	s.Show()
}

// cellOrigin returns the top-left screen position of grid cell (row, col).
func cellOrigin(x0, row, col int) (x, y int) {
	return x0 + col*cellW, gridTop + row*cellH
}

func statusLine(b *game.Board) string {
	switch b.Outcome() {
	case game.Won:
		return fmt.Sprintf("Solved in %d/%d! (Enter) quit", b.Attempts(), game.Rows)
	case game.Lost:
		return fmt.Sprintf("The word was %s. (Enter) quit", strings.ToUpper(b.Solution()))
	default:
		return helpText
	}
}

func drawBox(s tcell.Screen, x, y int, cell game.Cell, cursor bool) {
	style := CellStyle(cell.Verdict)
	border := style
	switch {
	case cursor:
		border = cursorStyle
	case cell.Verdict == game.Unscored && cell.Empty():
		border = mutedStyle
	}

	last := cellW - 1
	bottom := cellH - 1
	for dy := 0; dy < cellH; dy++ {
		for dx := 0; dx < cellW; dx++ {
			r, st := ' ', style
			switch {
			case dy == 0 && dx == 0:
				r, st = tcell.RuneULCorner, border
			case dy == 0 && dx == last:
				r, st = tcell.RuneURCorner, border
			case dy == bottom && dx == 0:
				r, st = tcell.RuneLLCorner, border
			case dy == bottom && dx == last:
				r, st = tcell.RuneLRCorner, border
			case dy == 0 || dy == bottom:
				r, st = tcell.RuneHLine, border
			case dx == 0 || dx == last:
				r, st = tcell.RuneVLine, border
			}
			s.SetContent(x+dx, y+dy, r, nil, st)
		}
	}
	if !cell.Empty() {
		s.SetContent(x+cellW/2, y+cellH/2, toUpper(cell.Letter), nil, style)
	}
}

func drawKeyboard(s tcell.Screen, w, y int, hints map[rune]game.Verdict) {
	const width = 26*2 - 1
	x := max((w-width)/2, 0)
	for r := 'a'; r <= 'z'; r++ {
		st := mutedStyle
		if v, ok := hints[r]; ok {
			st = CellStyle(v)
		}
		s.SetContent(x, y, toUpper(r), nil, st)
		x += 2
	}
}

func drawCentered(s tcell.Screen, w, y int, text string, style tcell.Style) {
	runes := []rune(text)
	x := max((w-len(runes))/2, 0)
	for i, r := range runes {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
