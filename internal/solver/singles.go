package solver

import (
	"math/bits"

	"svw.info/sudoku-solvers/internal/board"
)

// Outcome classifies how a naked-singles run ended. Stuck and Contradiction
// both make Solve return false but stay distinguishable for diagnostics.
type Outcome int

const (
	OutcomeUnknown Outcome = iota // Solve has not run since construction/reset
	OutcomeSolved
	OutcomeStuck         // no single left, empty cells remain
	OutcomeContradiction // some empty cell has no candidates
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeStuck:
		return "stuck"
	case OutcomeContradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// NakedSingles is pure constraint propagation: repeatedly commit every cell
// whose candidate set has exactly one member, until the board is solved or
// no single remains. Intentionally incomplete: many solvable puzzles cannot
// be finished by singles alone, and returning false then does not imply the
// puzzle is invalid.
type NakedSingles struct {
	tracker
	outcome Outcome
}

// NewNakedSingles creates a naked-singles solver over a copy of b.
func NewNakedSingles(b *board.Board) *NakedSingles {
	return &NakedSingles{tracker: newTracker(AlgorithmNakedSingles, b)}
}

func (s *NakedSingles) Solve() bool {
	for {
		if s.board.EmptyCount() == 0 {
			s.outcome = OutcomeSolved
			return true
		}

		progressed := false
		for r := 0; r < board.Size; r++ {
			for c := 0; c < board.Size; c++ {
				if s.board.Get(r, c) != board.Empty {
					continue
				}
				mask := s.board.CandidatesMask(r, c)
				if mask == 0 {
					s.outcome = OutcomeContradiction
					return false
				}
				if bits.OnesCount16(mask) != 1 {
					continue
				}
				v := bits.TrailingZeros16(mask) + 1
				s.board.SetForce(r, c, v)
				s.recordAssignment(r, c, v)
				progressed = true
			}
		}

		if !progressed {
			s.outcome = OutcomeStuck
			return false
		}
	}
}

func (s *NakedSingles) SolveWithTiming() bool {
	return s.timed(s.Solve)
}

func (s *NakedSingles) Reset() {
	s.resetTracking()
	s.outcome = OutcomeUnknown
}

// Outcome reports how the last Solve ended.
func (s *NakedSingles) Outcome() Outcome {
	return s.outcome
}
