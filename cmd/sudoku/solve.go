package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solvers/internal/board"
	"svw.info/sudoku-solvers/internal/loader"
	"svw.info/sudoku-solvers/internal/metrics"
	"svw.info/sudoku-solvers/internal/solver"
)

var (
	solveAlgorithm string
	solveAll       bool
	solveSteps     bool
	solveExemplar  string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle given as an 81-character string",
		Long: `Solve a Sudoku puzzle. The puzzle is 81 ASCII digits in row-major
order with '0' for empty cells, either as an argument or via --exemplar.

Examples:
  sudoku solve 530070000600195000098000060800060003400803001700020006060000280000419005000080079
  sudoku solve --exemplar easy -a BacktrackingMRV --steps
  sudoku solve --exemplar hard --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveAlgorithm, "algorithm", "a", solver.AlgorithmDancingLinks,
		"algorithm: "+strings.Join(solver.Algorithms(), "|"))
	solveCmd.Flags().BoolVar(&solveAll, "all", false, "run every algorithm on its own board copy and compare")
	solveCmd.Flags().BoolVar(&solveSteps, "steps", false, "print the ordered assignment history after solving")
	solveCmd.Flags().StringVar(&solveExemplar, "exemplar", "", "solve a built-in puzzle: easy|medium|hard|expert")

	rootCmd.AddCommand(solveCmd)
}

func puzzleInput(args []string) (string, error) {
	if solveExemplar != "" {
		p, ok := loader.Exemplars()[strings.ToLower(solveExemplar)]
		if !ok {
			return "", fmt.Errorf("unknown exemplar %q", solveExemplar)
		}
		return p, nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("provide a puzzle string or --exemplar")
}

func runSolve(cmd *cobra.Command, args []string) error {
	input, err := puzzleInput(args)
	if err != nil {
		return err
	}
	b, err := loader.FromString(input)
	if err != nil {
		return err
	}

	if solveAll {
		return solveAllAlgorithms(b)
	}

	s, err := solver.New(solveAlgorithm, b)
	if err != nil {
		return err
	}
	ok := s.SolveWithTiming()
	st := s.Statistics()
	logger.Info("solve finished",
		"algorithm", st.Algorithm,
		"solved", ok,
		"assigned", st.CellsAssigned,
		"guesses", st.Guesses,
		"backtracks", st.Backtracks,
		"dur", st.ExecutionTime.Round(time.Microsecond),
	)

	if !ok {
		fmt.Println("no solution found")
	} else {
		fmt.Println(s.Board().Format())
		fmt.Println(s.Board().String())
	}
	printStatistics([]solver.Statistics{st})

	if solveSteps {
		for i, step := range s.Steps() {
			fmt.Printf("%3d: (%d,%d) <- %d\n", i+1, step.Row, step.Col, step.Value)
		}
	}
	return nil
}

func solveAllAlgorithms(b *board.Board) error {
	coll := metrics.NewCollector()
	solution := ""
	for _, name := range solver.Algorithms() {
		s, err := solver.New(name, b)
		if err != nil {
			return err
		}
		if s.SolveWithTiming() && solution == "" {
			solution = s.Board().String()
		}
		coll.Collect(s)
	}

	if solution != "" {
		fmt.Println(solution)
	}
	printStatistics(coll.Table())

	cmp := coll.Compare()
	if cmp.Fastest == "" {
		fmt.Println("no algorithm solved the puzzle")
	} else {
		fmt.Printf("fastest: %s (%v), solved by %d of %d algorithms\n",
			cmp.Fastest, cmp.FastestTime.Round(time.Microsecond), cmp.Solved, len(solver.Algorithms()))
	}
	return nil
}

func printStatistics(stats []solver.Statistics) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSOLVED\tASSIGNED\tGUESSES\tBACKTRACKS\tTIME")
	for _, st := range stats {
		fmt.Fprintf(w, "%s\t%t\t%d\t%d\t%d\t%v\n",
			st.Algorithm, st.Solved, st.CellsAssigned, st.Guesses, st.Backtracks,
			st.ExecutionTime.Round(time.Microsecond))
	}
	w.Flush()
}
