// apps/go-tui/internal/game/score.go
//
// Scoring engine. Pure: no state, no I/O.

package game

import (
	"errors"
	"strings"
)

// ErrLengthMismatch is returned when the guess or the solution is not
// exactly Cols characters long.
var ErrLengthMismatch = errors.New("game: guess and solution must both be 5 letters")

// Score implements the standard two-pass Wordle scoring algorithm.
// Comparison is case-insensitive.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the remaining (unconsumed) solution letters.
//
// Pass 2:
//   - For each non-Correct guess letter: if an unconsumed occurrence is left,
//     mark Present and consume it; otherwise mark Absent.
//
// Present+Correct for a letter therefore never exceeds its count in the solution.
func Score(guess, solution string) (Verdicts, error) {
	g := []rune(strings.ToLower(guess))
	s := []rune(strings.ToLower(solution))
	if len(g) != Cols || len(s) != Cols {
		return nil, ErrLengthMismatch
	}

	res := make(Verdicts, Cols)
	unconsumed := make(map[rune]int, Cols)

	for i := range g {
		if g[i] == s[i] {
			res[i] = Correct
		} else {
			unconsumed[s[i]]++
		}
	}

	for i := range g {
		if res[i] == Correct {
			continue
		}
		if unconsumed[g[i]] > 0 {
			res[i] = Present
			unconsumed[g[i]]--
		} else {
			res[i] = Absent
		}
	}
	return res, nil
}
