package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

var (
	baseStyle   = tcell.StyleDefault
	titleStyle  = tcell.StyleDefault.Bold(true)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	mutedStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// CellStyle maps a verdict to the colors used to draw it.
func CellStyle(v game.Verdict) tcell.Style {
	switch v {
	case game.Correct:
		return tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack).Bold(true)
	case game.Present:
		return tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true)
	case game.Absent:
		return tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	default:
		return baseStyle
	}
}
