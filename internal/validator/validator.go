// Package validator provides board and placement legality checks plus the
// capped solution counting the generator uses for uniqueness estimation.
// It is deliberately independent of the solver contract: counting solutions
// is exponential and must not leak statistics or step history.
package validator

import (
	"fmt"

	"svw.info/sudoku-solvers/internal/board"
)

// Result is a verdict with a human-readable reason.
type Result struct {
	OK     bool
	Reason string
}

// CheckBoard reports whether the board satisfies Sudoku constraints.
func CheckBoard(b *board.Board) Result {
	if b == nil {
		return Result{Reason: "board is nil"}
	}
	if !b.IsValid() {
		return Result{Reason: "board contains duplicate values in a row, column, or box"}
	}
	return Result{OK: true, Reason: "valid puzzle"}
}

// CheckPlacement reports whether value v may be placed at (r, c).
func CheckPlacement(b *board.Board, r, c, v int) Result {
	if r < 0 || r >= board.Size {
		return Result{Reason: fmt.Sprintf("row index %d out of range", r)}
	}
	if c < 0 || c >= board.Size {
		return Result{Reason: fmt.Sprintf("column index %d out of range", c)}
	}
	if v < 1 || v > board.Size {
		return Result{Reason: fmt.Sprintf("value %d must be between 1 and 9", v)}
	}
	if b.Get(r, c) != board.Empty {
		return Result{Reason: fmt.Sprintf("cell (%d,%d) is already filled", r, c)}
	}
	if !b.IsValidPlacement(r, c, v) {
		return Result{Reason: fmt.Sprintf("value %d conflicts with row, column, or box", v)}
	}
	return Result{OK: true, Reason: "valid placement"}
}

// CountSolutions counts complete solutions of b, stopping once max have been
// found. The input board is not modified.
func CountSolutions(b *board.Board, max int) int {
	if max <= 0 || !b.IsValid() {
		return 0
	}
	work := b.Clone()
	count := 0

	var dfs func() bool // true = stop early, cap reached
	dfs = func() bool {
		r, c, ok := firstEmpty(work)
		if !ok {
			count++
			return count >= max
		}
		for v := 1; v <= board.Size; v++ {
			if !work.IsValidPlacement(r, c, v) {
				continue
			}
			work.SetForce(r, c, v)
			stop := dfs()
			work.Clear(r, c)
			if stop {
				return true
			}
		}
		return false
	}
	dfs()
	return count
}

// HasUniqueSolution reports whether b has exactly one solution.
func HasUniqueSolution(b *board.Board) bool {
	return CountSolutions(b, 2) == 1
}

// LooksWellFormed is the cheap heuristic pre-check: a proper puzzle needs at
// least 17 givens and at least one empty cell. It does not guarantee
// uniqueness; use HasUniqueSolution for that.
func LooksWellFormed(b *board.Board) bool {
	givens := board.CellCount - b.EmptyCount()
	return givens >= 17 && b.EmptyCount() >= 1
}

func firstEmpty(b *board.Board) (int, int, bool) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.Get(r, c) == board.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
