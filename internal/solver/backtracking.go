package solver

import "svw.info/sudoku-solvers/internal/board"

// Backtracking is the naive exhaustive search: depth-first over empty cells
// in fixed row-major order, digits tried 1..9 ascending. Exponential worst
// case; kept as the baseline the other algorithms are measured against.
type Backtracking struct {
	tracker
}

// NewBacktracking creates a plain backtracking solver over a copy of b.
func NewBacktracking(b *board.Board) *Backtracking {
	return &Backtracking{tracker: newTracker(AlgorithmBacktracking, b)}
}

func (s *Backtracking) Solve() bool {
	return s.dfs()
}

func (s *Backtracking) SolveWithTiming() bool {
	return s.timed(s.Solve)
}

func (s *Backtracking) Reset() {
	s.resetTracking()
}

func (s *Backtracking) dfs() bool {
	r, c, ok := firstEmpty(s.board)
	if !ok {
		return s.board.IsSolved()
	}
	for v := 1; v <= board.Size; v++ {
		if !s.board.IsValidPlacement(r, c, v) {
			continue
		}
		s.board.SetForce(r, c, v)
		s.recordAssignment(r, c, v)
		s.guesses++
		if s.dfs() {
			return true
		}
		s.board.Clear(r, c)
		s.backtracks++
	}
	return false
}
