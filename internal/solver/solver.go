// Package solver provides the shared solving contract and four
// interchangeable algorithms: plain backtracking, MRV backtracking,
// naked-singles propagation, and Dancing Links (Algorithm X).
package solver

import (
	"fmt"
	"time"

	"svw.info/sudoku-solvers/internal/board"
)

// Algorithm names as reported in Statistics.
const (
	AlgorithmBacktracking    = "Backtracking"
	AlgorithmBacktrackingMRV = "BacktrackingMRV"
	AlgorithmNakedSingles    = "NakedSingles"
	AlgorithmDancingLinks    = "DancingLinks"
)

// Step is one committed cell assignment, recorded in the order it happened.
// The step history is consumed by external replay tooling only.
type Step struct {
	Row, Col, Value int
}

// Statistics is an immutable snapshot of a solve run.
type Statistics struct {
	Algorithm     string
	CellsAssigned int
	Guesses       int
	Backtracks    int
	ExecutionTime time.Duration
	Solved        bool
}

// Solver is the contract every algorithm implements. A solver exclusively
// owns its working board; Solve returning false is a legitimate outcome
// (unsatisfiable or stuck), never an error.
type Solver interface {
	Solve() bool
	SolveWithTiming() bool
	Statistics() Statistics
	Steps() []Step
	Board() *board.Board
	Reset()
}

// Algorithms lists the available algorithm names in comparison order.
func Algorithms() []string {
	return []string{
		AlgorithmBacktracking,
		AlgorithmBacktrackingMRV,
		AlgorithmNakedSingles,
		AlgorithmDancingLinks,
	}
}

// New constructs the named algorithm over its own copy of b.
func New(algorithm string, b *board.Board) (Solver, error) {
	switch algorithm {
	case AlgorithmBacktracking:
		return NewBacktracking(b), nil
	case AlgorithmBacktrackingMRV:
		return NewBacktrackingMRV(b), nil
	case AlgorithmNakedSingles:
		return NewNakedSingles(b), nil
	case AlgorithmDancingLinks:
		return NewDancingLinks(b), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

// tracker carries the per-run state shared by all algorithms: the working
// board, the original snapshot, counters, and the ordered step history.
type tracker struct {
	algorithm string
	board     *board.Board
	original  *board.Board

	cellsAssigned int
	guesses       int
	backtracks    int
	execTime      time.Duration
	steps         []Step
}

func newTracker(algorithm string, b *board.Board) tracker {
	return tracker{
		algorithm: algorithm,
		board:     b.Clone(),
		original:  b.Clone(),
	}
}

// recordAssignment logs a committed cell write. Every algorithm calls this
// for every value it commits to the working board.
func (t *tracker) recordAssignment(r, c, v int) {
	t.steps = append(t.steps, Step{Row: r, Col: c, Value: v})
	t.cellsAssigned++
}

// resetTracking restores the working board from the original snapshot and
// clears counters and history.
func (t *tracker) resetTracking() {
	t.board = t.original.Clone()
	t.cellsAssigned = 0
	t.guesses = 0
	t.backtracks = 0
	t.execTime = 0
	t.steps = nil
}

// timed runs solve and records the wall-clock duration.
func (t *tracker) timed(solve func() bool) bool {
	start := time.Now()
	ok := solve()
	t.execTime = time.Since(start)
	return ok
}

// Statistics returns a snapshot of the current counters.
func (t *tracker) Statistics() Statistics {
	return Statistics{
		Algorithm:     t.algorithm,
		CellsAssigned: t.cellsAssigned,
		Guesses:       t.guesses,
		Backtracks:    t.backtracks,
		ExecutionTime: t.execTime,
		Solved:        t.board.IsSolved(),
	}
}

// Steps returns a copy of the step history. Its length equals the
// CellsAssigned counter at the time of the call.
func (t *tracker) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// Board returns the solver's working board.
func (t *tracker) Board() *board.Board {
	return t.board
}

// firstEmpty returns the first empty cell in row-major order.
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
