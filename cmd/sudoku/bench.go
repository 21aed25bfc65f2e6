package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solvers/internal/loader"
	"svw.info/sudoku-solvers/internal/solver"
)

var (
	benchInput      string
	benchAlgorithms []string
	benchProfile    bool
	benchProfileDir string
)

func init() {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark algorithms over a puzzle file",
		Long: `Run the selected algorithms over every puzzle in a file (one
81-character puzzle per line; blank lines and '#' comments are skipped) and
print aggregate statistics per algorithm.

Examples:
  sudoku bench -i puzzles.txt
  sudoku bench -i puzzles.txt -a DancingLinks,BacktrackingMRV --profile`,
		RunE: runBench,
	}

	benchCmd.Flags().StringVarP(&benchInput, "input", "i", "", "puzzle file (required)")
	benchCmd.Flags().StringSliceVarP(&benchAlgorithms, "algorithms", "a", solver.Algorithms(),
		"algorithms to benchmark")
	benchCmd.Flags().BoolVar(&benchProfile, "profile", false, "write a CPU profile of the run")
	benchCmd.Flags().StringVar(&benchProfileDir, "profile-path", "output", "directory for the CPU profile")
	benchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	puzzles, err := loader.FromFile(benchInput)
	if err != nil {
		return err
	}
	if len(puzzles) == 0 {
		return fmt.Errorf("no puzzles in %s", benchInput)
	}

	if benchProfile {
		defer profile.Start(profile.ProfilePath(benchProfileDir)).Stop()
	}
	logger.Info("bench starting",
		"puzzles", len(puzzles), "algorithms", strings.Join(benchAlgorithms, ","))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSOLVED\tGUESSES\tBACKTRACKS\tTOTAL TIME\tAVG TIME")
	for _, name := range benchAlgorithms {
		var (
			solved     int
			guesses    int
			backtracks int
			total      time.Duration
		)
		for _, p := range puzzles {
			s, err := solver.New(name, p)
			if err != nil {
				return err
			}
			if s.SolveWithTiming() {
				solved++
			}
			st := s.Statistics()
			guesses += st.Guesses
			backtracks += st.Backtracks
			total += st.ExecutionTime
		}
		fmt.Fprintf(w, "%s\t%d/%d\t%d\t%d\t%v\t%v\n",
			name, solved, len(puzzles), guesses, backtracks,
			total.Round(time.Microsecond),
			(total / time.Duration(len(puzzles))).Round(time.Microsecond))
	}
	return w.Flush()
}
