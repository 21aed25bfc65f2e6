package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solvers/internal/generator"
)

var (
	genNumber  int
	genClues   string
	genSeed    int64
	genUnique  bool
	genTimeout time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles with a target clue count.

Examples:
  sudoku gen --clues 40
  sudoku gen -n 5 --clues 28:32
  sudoku gen --clues 20 --timeout 15s --seed 42`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genNumber, "number", "n", 1, "number of puzzles to generate")
	genCmd.Flags().StringVarP(&genClues, "clues", "c", strconv.Itoa(generator.DefaultClueCount),
		"clue count 17-80, or a range like 28:32")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "rng seed for reproducible puzzles (0 = time-based)")
	genCmd.Flags().BoolVar(&genUnique, "unique", true, "keep only removals that preserve a unique solution")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "generation timeout per puzzle")

	rootCmd.AddCommand(genCmd)
}

// parseClueRange parses a clue count flag: a single number ("32") or an
// inclusive range ("28:32").
func parseClueRange(s string) (lo, hi int, err error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		lo, err = strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count: %w", err)
		}
		return lo, lo, nil
	case 2:
		lo, err = strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count min: %w", err)
		}
		hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count max: %w", err)
		}
		if lo > hi {
			return 0, 0, fmt.Errorf("clue count min (%d) cannot be greater than max (%d)", lo, hi)
		}
		return lo, hi, nil
	default:
		return 0, 0, fmt.Errorf("invalid clue count format: %s (use '32' or '28:32')", s)
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	lo, hi, err := parseClueRange(genClues)
	if err != nil {
		return err
	}
	if lo < generator.MinClueCount || hi > generator.MaxClueCount {
		return fmt.Errorf("clue count must be between %d and %d",
			generator.MinClueCount, generator.MaxClueCount)
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < genNumber; i++ {
		clues := lo
		if hi > lo {
			clues = lo + rng.Intn(hi-lo+1)
		}

		opts := generator.DefaultOptions(clues)
		opts.Seed = rng.Int63()
		opts.EnsureUnique = genUnique
		opts.Timeout = genTimeout

		start := time.Now()
		puzzle, solution, err := generator.New(opts).Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		logger.Info("generated puzzle",
			"clues", clues, "unique", genUnique, "dur", time.Since(start).Round(time.Millisecond))

		fmt.Printf("Puzzle #%d (clues: %d):\n", i+1, clues)
		fmt.Println(puzzle.Format())
		fmt.Println(puzzle.String())
		fmt.Println("\nSolution:")
		fmt.Println(solution.Format())
		fmt.Println()
	}
	return nil
}
