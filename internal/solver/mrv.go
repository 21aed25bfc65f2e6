package solver

import (
	"math/bits"

	"svw.info/sudoku-solvers/internal/board"
)

// BacktrackingMRV is backtracking with the minimum-remaining-values
// heuristic: each step guesses in the empty cell with the fewest candidates,
// ties broken by row-major order. Because candidates are derived from the
// board's unit masks, Clear is an exact undo: the peer candidate sets
// reduced by a trial assignment revert with it, no snapshot needed.
type BacktrackingMRV struct {
	tracker
}

// NewBacktrackingMRV creates an MRV backtracking solver over a copy of b.
func NewBacktrackingMRV(b *board.Board) *BacktrackingMRV {
	return &BacktrackingMRV{tracker: newTracker(AlgorithmBacktrackingMRV, b)}
}

func (s *BacktrackingMRV) Solve() bool {
	return s.dfs()
}

func (s *BacktrackingMRV) SolveWithTiming() bool {
	return s.timed(s.Solve)
}

func (s *BacktrackingMRV) Reset() {
	s.resetTracking()
}

func (s *BacktrackingMRV) dfs() bool {
	if s.board.EmptyCount() == 0 {
		return s.board.IsSolved()
	}

	r, c, mask := selectMRV(s.board)
	if mask == 0 {
		// A cell with no candidates: immediate contradiction.
		return false
	}

	for v := 1; v <= board.Size; v++ {
		if mask&(1<<(v-1)) == 0 {
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

// selectMRV finds the empty cell with the fewest candidates and returns its
// candidate mask. A zero mask signals a contradiction at that cell.
func selectMRV(b *board.Board) (row, col int, mask uint16) {
	best := board.Size + 1
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.Get(r, c) != board.Empty {
				continue
			}
			m := b.CandidatesMask(r, c)
			if n := bits.OnesCount16(m); n < best {
				best = n
				row, col, mask = r, c, m
				if best <= 1 {
					return
				}
			}
		}
	}
	return
}
