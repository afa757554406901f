package tui

import "github.com/gdamore/tcell/v2"

// CommandKind identifies what a key press asks the board to do.
type CommandKind int

const (
	CommandNone CommandKind = iota
	AppendLetter
	RemoveLetter
	Submit
	Quit
)

// Command is a routed key press. Letter is set only for AppendLetter.
type Command struct {
	Kind   CommandKind
	Letter rune
}

// Route translates a raw key event into a Command. Letters carrying
// Ctrl/Alt/Meta modifiers and every unmapped key route to CommandNone.
func Route(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: Quit}
	case tcell.KeyEnter:
		return Command{Kind: Submit}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return Command{Kind: RemoveLetter}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return Command{}
		}
		r := ev.Rune()
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return Command{Kind: AppendLetter, Letter: r}
		}
	}
	return Command{}
}
