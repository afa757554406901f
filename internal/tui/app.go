// apps/go-tui/internal/tui/app.go
//
// Session event loop. Owns the screen and the board for the lifetime of one
// game: draw, poll, route, apply, repeat. Single-threaded.

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

// App is one interactive game session.
type App struct {
	screen tcell.Screen
	board  *game.Board
}

// NewApp binds an initialized screen to a fresh board.
func NewApp(s tcell.Screen, b *game.Board) *App {
	return &App{screen: s, board: b}
}

// Board exposes the session board (read-only use).
func (a *App) Board() *game.Board { return a.board }

// Run draws and processes events until the player quits or the screen is
// finalized. Returns the outcome at exit.
func (a *App) Run() game.Outcome {
	Draw(a.screen, a.board)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		if a.Handle(ev) {
			break
		}
		Draw(a.screen, a.board)
	}
	outcome := a.board.Outcome()
	log.Info().Stringer("outcome", outcome).Int("attempts", a.board.Attempts()).Msg("session ended")
	return outcome
}

// Handle processes one screen event and reports whether the session should end.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.Apply(Route(ev))
	}
	return false
}

// Apply routes a command to the board and reports whether the session should
// end. On a finished board, Submit also ends the session.
func (a *App) Apply(cmd Command) bool {
	switch cmd.Kind {
	case Quit:
		return true
	case AppendLetter:
		a.board.AppendLetter(cmd.Letter)
	case RemoveLetter:
		a.board.RemoveLetter()
	case Submit:
		if a.board.Finished() {
			return true
		}
		row, _ := a.board.Cursor()
		verdicts, ok := a.board.Submit()
		if !ok {
			log.Debug().Int("row", row).Msg("submit ignored: row not full")
			return false
		}
		log.Info().
			Int("row", row).
			Str("verdicts", verdicts.Emoji()).
			Stringer("outcome", a.board.Outcome()).
			Msg("guess submitted")
	}
	return false
}
