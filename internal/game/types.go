// apps/go-tui/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Verdict: per-letter result of a scored guess.
//   - Cell: one board position (letter + verdict).
//   - Outcome: session-level result derived from the board.

package game

// Board dimensions. Fixed for the lifetime of the program.
const (
	Rows = 6
	Cols = 5
)

// Verdict represents the evaluation result for a single letter in a guess.
// The zero value is Unscored so an empty Cell needs no initialization.
type Verdict int

const (
	Unscored Verdict = iota // not yet submitted
	Absent                  // letter not in the solution (or its budget is spent)
	Present                 // letter in the solution, different position
	Correct                 // letter in the correct position
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unscored"
	}
}

// Verdicts is the scored result of one guess, index-aligned with the guess.
type Verdicts []Verdict

// AllCorrect reports whether every verdict is Correct.
func (vs Verdicts) AllCorrect() bool {
	if len(vs) == 0 {
		return false
	}
	for _, v := range vs {
		if v != Correct {
			return false
		}
	}
	return true
}

// Emoji renders the verdicts as the familiar share string, e.g. "🟨🟨⬛🟩🟩".
func (vs Verdicts) Emoji() string {
	out := make([]rune, 0, len(vs))
	for _, v := range vs {
		switch v {
		case Correct:
			out = append(out, '🟩')
		case Present:
			out = append(out, '🟨')
		case Absent:
			out = append(out, '⬛')
		default:
			out = append(out, '⬜')
		}
	}
	return string(out)
}

// Cell is a single board position. Letter 0 means empty.
// Invariant: Verdict != Unscored implies Letter != 0.
type Cell struct {
	Letter  rune
	Verdict Verdict
}

// Empty reports whether no letter has been written to the cell.
func (c Cell) Empty() bool { return c.Letter == 0 }

// Outcome is the coarse session state, derived from the board.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}
