package solver

import "testing"

// 16 givens, far too few for propagation to bite: singles must get stuck
// without declaring a contradiction.
const sparsePuzzle = "006000070050080000000000006000010300080000020005030000100000000000070040030000200"

func TestNakedSinglesSolvesSinglesOnlyPuzzle(t *testing.T) {
	s := NewNakedSingles(mustBoard(t, singlesSolvable()))
	if !s.Solve() {
		t.Fatalf("singles-solvable puzzle not solved, outcome %v", s.Outcome())
	}
	if got := s.Board().String(); got != classicSolution {
		t.Fatalf("wrong solution:\nwant %s\ngot  %s", classicSolution, got)
	}
	if s.Outcome() != OutcomeSolved {
		t.Fatalf("outcome %v, want solved", s.Outcome())
	}
	st := s.Statistics()
	if st.Guesses != 0 || st.Backtracks != 0 {
		t.Fatalf("propagation must not guess or backtrack: %+v", st)
	}
	if st.CellsAssigned != 3 {
		t.Fatalf("assigned %d cells, want 3", st.CellsAssigned)
	}
}

func TestNakedSinglesStuckIsNotFailure(t *testing.T) {
	s := NewNakedSingles(mustBoard(t, sparsePuzzle))
	if s.Solve() {
		t.Fatal("sparse puzzle should not be solvable by singles alone")
	}
	if s.Outcome() != OutcomeStuck {
		t.Fatalf("outcome %v, want stuck", s.Outcome())
	}
	// Stuck is a local limitation, not invalidity: the board stays valid.
	if !s.Board().IsValid() {
		t.Fatal("board must remain valid when stuck")
	}
}

func TestNakedSinglesContradiction(t *testing.T) {
	s := NewNakedSingles(mustBoard(t, unsolvable))
	if s.Solve() {
		t.Fatal("unsolvable puzzle reported solved")
	}
	if s.Outcome() != OutcomeContradiction {
		t.Fatalf("outcome %v, want contradiction", s.Outcome())
	}
}

func TestNakedSinglesMayFailOnClassic(t *testing.T) {
	// The classic puzzle needs more than naked singles; whichever way it
	// goes, the contract holds: success means the right solution, failure
	// means stuck, never contradiction.
	s := NewNakedSingles(mustBoard(t, classic))
	if s.Solve() {
		if got := s.Board().String(); got != classicSolution {
			t.Fatalf("wrong solution: %s", got)
		}
	} else if s.Outcome() != OutcomeStuck {
		t.Fatalf("outcome %v, want stuck for a solvable puzzle", s.Outcome())
	}
}

func TestNakedSinglesOutcomeResets(t *testing.T) {
	s := NewNakedSingles(mustBoard(t, sparsePuzzle))
	s.Solve()
	s.Reset()
	if s.Outcome() != OutcomeUnknown {
		t.Fatalf("outcome %v after reset, want unknown", s.Outcome())
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{
		OutcomeUnknown:       "unknown",
		OutcomeSolved:        "solved",
		OutcomeStuck:         "stuck",
		OutcomeContradiction: "contradiction",
	}
	for o, want := range cases {
		if got := o.String(); got != want {
			t.Fatalf("Outcome(%d).String() = %q, want %q", o, got, want)
		}
	}
}
