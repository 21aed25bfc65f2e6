// Package loader builds boards from strings, files, and grids.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"svw.info/sudoku-solvers/internal/board"
)

// FromString parses a puzzle from its 81-character form. Whitespace is
// stripped first, so multi-line input works; anything else must be the
// canonical digits-only encoding.
func FromString(s string) (*board.Board, error) {
	var sb strings.Builder
	sb.Grow(board.CellCount)
	for _, r := range s {
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return board.NewFromString(sb.String())
}

// FromFile loads puzzles from a file, one 81-character puzzle per line.
// Blank lines and lines starting with '#' are skipped.
func FromFile(path string) ([]*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []*board.Board
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		b, err := board.NewFromString(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}
		out = append(out, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}

// FromGrid builds a board from a 9x9 grid of values 0-9.
func FromGrid(grid [][]int) (*board.Board, error) {
	return board.NewFromGrid(grid)
}

// Exemplars returns sample puzzles by difficulty name.
func Exemplars() map[string]string {
	return map[string]string{
		"easy":   "530070000600195000098000060800060003400803001700020006060000280000419005000080079",
		"medium": "003020600900305001001806400008102900700000008006708200002609500800203006005010300",
		"hard":   "006000070050080000000000006000010300080000020005030000100000000000070040030000200",
		"expert": "000000000000003085001020000000507000004000100090000000500000073002010000000040009",
	}
}
