// Package generator creates Sudoku puzzles: fill a complete random grid,
// then dig cells back out toward a target clue count while the puzzle stays
// well formed (and, optionally, uniquely solvable).
package generator

import (
	"errors"
	"math/rand"
	"time"

	"svw.info/sudoku-solvers/internal/board"
	"svw.info/sudoku-solvers/internal/validator"
)

var (
	ErrInvalidClueCount = errors.New("clue count must be between 17 and 80")
	ErrGenerationFailed = errors.New("failed to generate puzzle within timeout")
)

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a generator with the given options (nil = defaults).
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultClueCount)
	}
	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate produces a puzzle and its solution.
// Digging stops at the target clue count; if uniqueness checks keep too many
// clues pinned, the attempt is retried until the timeout expires.
func (g *Generator) Generate() (puzzle, solution *board.Board, err error) {
	if g.options.ClueCount < MinClueCount || g.options.ClueCount > MaxClueCount {
		return nil, nil, ErrInvalidClueCount
	}

	deadline := time.Now().Add(g.options.Timeout)
	for time.Now().Before(deadline) {
		solution = g.fillComplete()
		if solution == nil {
			continue
		}
		puzzle = g.dig(solution, deadline)
		if puzzle == nil {
			continue
		}
		// Re-snapshot so the dug grid, not the full solution, is the
		// puzzle's reset state.
		p, perr := board.NewFromString(puzzle.String())
		if perr != nil {
			return nil, nil, perr
		}
		return p, solution, nil
	}
	return nil, nil, ErrGenerationFailed
}

// fillComplete solves an empty grid with randomized digit order.
func (g *Generator) fillComplete() *board.Board {
	b := board.New()
	order := [board.Size]int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	var dfs func(pos int) bool
	dfs = func(pos int) bool {
		if pos == board.CellCount {
			return true
		}
		r, c := pos/board.Size, pos%board.Size
		g.rng.Shuffle(board.Size, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for _, v := range order {
			if !b.IsValidPlacement(r, c, v) {
				continue
			}
			b.SetForce(r, c, v)
			if dfs(pos + 1) {
				return true
			}
			b.Clear(r, c)
		}
		return false
	}
	if !dfs(0) {
		return nil
	}
	return b
}

// dig removes cells from a copy of the solution in shuffled order until the
// target clue count is reached. Every removal that breaks the well-formed
// check (or uniqueness, when required) is reverted.
func (g *Generator) dig(solution *board.Board, deadline time.Time) *board.Board {
	puzzle := solution.Clone()
	target := g.options.ClueCount

	positions := g.rng.Perm(board.CellCount)
	for _, pos := range positions {
		if board.CellCount-puzzle.EmptyCount() <= target {
			break
		}
		if time.Now().After(deadline) {
			return nil
		}
		r, c := pos/board.Size, pos%board.Size
		v := puzzle.Get(r, c)
		if v == board.Empty {
			continue
		}
		puzzle.Clear(r, c)

		ok := validator.LooksWellFormed(puzzle)
		if ok && g.options.EnsureUnique {
			ok = validator.HasUniqueSolution(puzzle)
		}
		if !ok {
			puzzle.SetForce(r, c, v)
		}
	}

	if board.CellCount-puzzle.EmptyCount() > target {
		return nil
	}
	return puzzle
}
