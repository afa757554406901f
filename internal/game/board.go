// apps/go-tui/internal/game/board.go
//
// Board state machine for a single Wordle session.
// Responsibilities:
//   - Hold the 6x5 grid of cells and the cursor (next writable cell).
//   - Apply append/remove/submit transitions; invalid calls are no-ops.
//   - Score a full row on submit (via Score) and derive the outcome.
//
// State transitions:
//   - Accepting(row, col) → Accepting(row, col±1) on append/remove.
//   - Accepting(row, 5) → Accepting(row+1, 0) on submit of a non-winning row.
//   - Any submit of an all-Correct row → Won.
//   - Submit of a non-winning last row → Lost.

package game

import (
	"fmt"
	"strings"
)

// Board is the mutable grid for one session. It is not safe for concurrent
// use; the event loop owns it exclusively.
type Board struct {
	solution string
	cells    [Rows][Cols]Cell
	row, col int
}

// NewBoard constructs an empty board for the given solution.
// The solution is normalized to lowercase and must be exactly Cols letters.
func NewBoard(solution string) (*Board, error) {
	solution = strings.ToLower(strings.TrimSpace(solution))
	if len([]rune(solution)) != Cols {
		return nil, fmt.Errorf("new board: %w", ErrLengthMismatch)
	}
	return &Board{solution: solution}, nil
}

// AppendLetter writes c into the cursor cell and advances the cursor.
// Ignored when the row is full, the game is finished, or c is not a letter a–z.
// Reports whether the board changed.
func (b *Board) AppendLetter(c rune) bool {
	if b.Finished() || b.col >= Cols {
		return false
	}
	c, ok := normalizeLetter(c)
	if !ok {
		return false
	}
	b.cells[b.row][b.col] = Cell{Letter: c}
	b.col++
	return true
}

// RemoveLetter clears the cell before the cursor and moves the cursor back.
// Ignored on an empty row or a finished game. Reports whether the board changed.
func (b *Board) RemoveLetter() bool {
	if b.Finished() || b.col == 0 {
		return false
	}
	b.col--
	b.cells[b.row][b.col] = Cell{}
	return true
}

// Submit scores the current row in place when it is full.
// Returns the verdicts and true if a row was scored; nil and false otherwise.
func (b *Board) Submit() (Verdicts, bool) {
	if b.Finished() || b.col != Cols {
		return nil, false
	}

	verdicts, err := Score(b.Guess(), b.solution)
	if err != nil {
		// Unreachable: a full row always holds Cols letters and NewBoard
		// validated the solution.
		panic(fmt.Sprintf("game: scoring full row %d: %v", b.row, err))
	}
	for i, v := range verdicts {
		b.cells[b.row][i].Verdict = v
	}

	b.row++
	b.col = 0
	return verdicts, true
}

// Guess returns the letters currently typed in the cursor row.
func (b *Board) Guess() string {
	if b.row >= Rows {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < b.col; i++ {
		sb.WriteRune(b.cells[b.row][i].Letter)
	}
	return sb.String()
}

// Outcome derives the session state from the completed rows:
// Won if any completed row is all Correct, Lost if every row was used
// without a win, InProgress otherwise.
func (b *Board) Outcome() Outcome {
	for r := 0; r < b.row; r++ {
		if rowCorrect(b.cells[r]) {
			return Won
		}
	}
	if b.row >= Rows {
		return Lost
	}
	return InProgress
}

// Finished reports whether the game is over (won or lost).
func (b *Board) Finished() bool { return b.Outcome() != InProgress }

// Cursor returns the position of the next writable cell.
func (b *Board) Cursor() (row, col int) { return b.row, b.col }

// Attempts returns the number of submitted rows.
func (b *Board) Attempts() int { return b.row }

// Solution returns the lowercase solution word.
func (b *Board) Solution() string { return b.solution }

// Cell returns the cell at (row, col). Out-of-range positions yield an empty cell.
func (b *Board) Cell(row, col int) Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Cell{}
	}
	return b.cells[row][col]
}

// Cells returns a copy of the whole grid for rendering.
func (b *Board) Cells() [Rows][Cols]Cell { return b.cells }

// LetterHints returns the best verdict seen for each letter across the
// completed rows (Correct > Present > Absent).
func (b *Board) LetterHints() map[rune]Verdict {
	hints := make(map[rune]Verdict)
	for r := 0; r < b.row && r < Rows; r++ {
		for _, c := range b.cells[r] {
			if c.Verdict > hints[c.Letter] {
				hints[c.Letter] = c.Verdict
			}
		}
	}
	return hints
}

// rowCorrect returns true if every cell in the row is Correct.
func rowCorrect(row [Cols]Cell) bool {
	for _, c := range row {
		if c.Verdict != Correct {
			return false
		}
	}
	return true
}

// normalizeLetter lowercases ASCII letters and rejects everything else.
func normalizeLetter(c rune) (rune, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return c, true
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 'a', true
	}
	return 0, false
}
