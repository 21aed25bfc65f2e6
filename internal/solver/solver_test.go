package solver

import (
	"strings"
	"testing"

	"svw.info/sudoku-solvers/internal/board"
)

const (
	classic         = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

	// Valid board with no solution: row 0 holds 1..8 and the 9 below (0,0)
	// sits in its box, leaving (0,0) without a single candidate.
	unsolvable = "012345678" + "900000000" + "000000000000000000000000000000000000000000000000000000000000000"
)

func mustBoard(t *testing.T, s string) *board.Board {
	t.Helper()
	b, err := board.NewFromString(s)
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	return b
}

// singlesSolvable is the classic solution with three independent cells
// blanked; each is the only empty cell in its row, column, and box, so
// naked singles alone finishes it.
func singlesSolvable() string {
	s := []byte(classicSolution)
	s[0] = '0'
	s[4*9+4] = '0'
	s[8*9+8] = '0'
	return string(s)
}

func TestFactory(t *testing.T) {
	b := mustBoard(t, classic)
	for _, name := range Algorithms() {
		s, err := New(name, b)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if got := s.Statistics().Algorithm; got != name {
			t.Fatalf("algorithm name %q, want %q", got, name)
		}
	}
	if _, err := New("simulated-annealing", b); err == nil {
		t.Fatal("want error for unknown algorithm")
	}
}

func TestSolverOwnsBoardCopy(t *testing.T) {
	b := mustBoard(t, classic)
	s := NewDancingLinks(b)
	if !s.Solve() {
		t.Fatal("solve failed")
	}
	if b.String() != classic {
		t.Fatal("solver mutated the caller's board")
	}
}

func TestAllCompletingAlgorithmsAgree(t *testing.T) {
	b := mustBoard(t, classic)
	for _, name := range []string{AlgorithmBacktracking, AlgorithmBacktrackingMRV, AlgorithmDancingLinks} {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, b)
			if err != nil {
				t.Fatal(err)
			}
			if !s.SolveWithTiming() {
				t.Fatalf("%s failed to solve the classic puzzle", name)
			}
			if got := s.Board().String(); got != classicSolution {
				t.Fatalf("solution mismatch:\nwant %s\ngot  %s", classicSolution, got)
			}
			st := s.Statistics()
			if !st.Solved {
				t.Fatal("statistics must report solved")
			}
			if st.ExecutionTime <= 0 {
				t.Fatal("SolveWithTiming must record a duration")
			}
		})
	}
}

func TestUnsolvableReturnsFalseNotError(t *testing.T) {
	b := mustBoard(t, unsolvable)
	if !b.IsValid() {
		t.Fatal("fixture must be a valid board")
	}
	for _, name := range Algorithms() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, b)
			if err != nil {
				t.Fatal(err)
			}
			if s.Solve() {
				t.Fatalf("%s claims to solve an unsolvable puzzle", name)
			}
			if s.Statistics().Solved {
				t.Fatal("statistics must not report solved")
			}
		})
	}
}

func TestMRVGuessesNeverExceedPlain(t *testing.T) {
	for _, puzzle := range []string{
		classic,
		"003020600900305001001806400008102900700000008006708200002609500800203006005010300",
	} {
		b := mustBoard(t, puzzle)
		plain := NewBacktracking(b)
		mrv := NewBacktrackingMRV(b)
		if !plain.Solve() || !mrv.Solve() {
			t.Fatal("both solvers must complete")
		}
		pg := plain.Statistics().Guesses
		mg := mrv.Statistics().Guesses
		if mg > pg {
			t.Fatalf("MRV guesses %d > plain guesses %d", mg, pg)
		}
	}
}

func TestStepHistoryLengthMatchesCellsAssigned(t *testing.T) {
	b := mustBoard(t, classic)
	for _, name := range Algorithms() {
		s, err := New(name, b)
		if err != nil {
			t.Fatal(err)
		}
		s.Solve()
		st := s.Statistics()
		if got := len(s.Steps()); got != st.CellsAssigned {
			t.Fatalf("%s: %d steps, %d cells assigned", name, got, st.CellsAssigned)
		}
	}
}

func TestStepReplayForPropagation(t *testing.T) {
	// Naked singles never backtracks, so its history replays to the final
	// board exactly.
	s := NewNakedSingles(mustBoard(t, singlesSolvable()))
	if !s.Solve() {
		t.Fatal("singles-solvable puzzle not solved")
	}
	replay := mustBoard(t, singlesSolvable())
	for _, step := range s.Steps() {
		if err := replay.Set(step.Row, step.Col, step.Value); err != nil {
			t.Fatalf("replaying step %+v: %v", step, err)
		}
	}
	if replay.String() != s.Board().String() {
		t.Fatal("step replay does not reproduce the solved board")
	}
}

func TestResetClearsEverything(t *testing.T) {
	b := mustBoard(t, classic)
	for _, name := range Algorithms() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, b)
			if err != nil {
				t.Fatal(err)
			}
			s.SolveWithTiming()
			s.Reset()

			st := s.Statistics()
			if st.CellsAssigned != 0 || st.Guesses != 0 || st.Backtracks != 0 || st.ExecutionTime != 0 {
				t.Fatalf("counters not cleared: %+v", st)
			}
			if len(s.Steps()) != 0 {
				t.Fatal("step history not cleared")
			}
			if s.Board().String() != classic {
				t.Fatal("working board not restored from snapshot")
			}
		})
	}
}

func TestSolveAgainAfterReset(t *testing.T) {
	s := NewDancingLinks(mustBoard(t, classic))
	if !s.Solve() {
		t.Fatal("first solve failed")
	}
	first := s.Board().String()
	s.Reset()
	if !s.Solve() {
		t.Fatal("solve after reset failed")
	}
	if got := s.Board().String(); got != first {
		t.Fatalf("solution changed after reset:\nfirst %s\nthen  %s", first, got)
	}
}

func TestBacktrackingCounters(t *testing.T) {
	s := NewBacktracking(mustBoard(t, classic))
	if !s.Solve() {
		t.Fatal("solve failed")
	}
	st := s.Statistics()
	if st.Guesses != st.CellsAssigned {
		t.Fatalf("plain backtracking: guesses %d != assignments %d", st.Guesses, st.CellsAssigned)
	}
	if st.Backtracks != st.CellsAssigned-51 {
		// 51 empty cells in the classic puzzle; every assignment beyond the
		// 51 that stick was undone exactly once.
		t.Fatalf("backtracks %d, want %d", st.Backtracks, st.CellsAssigned-51)
	}
}

func TestFirstEmptyRowMajor(t *testing.T) {
	b := mustBoard(t, classic)
	r, c, ok := firstEmpty(b)
	if !ok || r != 0 || c != 2 {
		t.Fatalf("firstEmpty = (%d,%d,%t), want (0,2,true)", r, c, ok)
	}
	full := mustBoard(t, classicSolution)
	if _, _, ok := firstEmpty(full); ok {
		t.Fatal("firstEmpty on a full board must report none")
	}
}

func TestSolvedBoardSolvesTrivially(t *testing.T) {
	for _, name := range Algorithms() {
		s, err := New(name, mustBoard(t, classicSolution))
		if err != nil {
			t.Fatal(err)
		}
		if !s.Solve() {
			t.Fatalf("%s must accept an already-solved board", name)
		}
		if st := s.Statistics(); st.CellsAssigned != 0 {
			t.Fatalf("%s assigned %d cells on a solved board", name, st.CellsAssigned)
		}
	}
}

func TestStepsReturnsCopy(t *testing.T) {
	s := NewNakedSingles(mustBoard(t, singlesSolvable()))
	s.Solve()
	steps := s.Steps()
	if len(steps) == 0 {
		t.Fatal("expected steps")
	}
	steps[0] = Step{Row: -1, Col: -1, Value: -1}
	if s.Steps()[0] == (Step{Row: -1, Col: -1, Value: -1}) {
		t.Fatal("mutating returned slice must not affect solver history")
	}
}

func TestUnsolvableFixtureShape(t *testing.T) {
	if len(unsolvable) != board.CellCount || strings.Count(unsolvable, "0") != 72 {
		t.Fatalf("fixture drifted: len %d", len(unsolvable))
	}
}
