// Package board implements the 9x9 Sudoku board model: grid state, derived
// per-cell candidate sets, validity and completion checks, and the canonical
// 81-character serialization.
package board

import (
	"fmt"
	"strings"
)

// Board dimensions and special cell values.
const (
	Size      = 9
	BoxSize   = 3
	CellCount = Size * Size

	Empty       = 0
	InvalidCell = -1
)

// allDigits has bits 0..8 set; bit i represents digit i+1.
const allDigits = 0x1FF

// Cell identifies a board position.
type Cell struct {
	Row, Col int
}

// Board is a 9x9 Sudoku grid. Candidate sets are not stored per cell but
// derived from unit bitmasks, so they are always consistent with the grid
// and Clear is an exact undo for Set.
type Board struct {
	cells   [Size][Size]uint8
	initial [Size][Size]uint8

	// Placed digits per unit; bit i = digit i+1. O(1) candidate lookup.
	rowMasks [Size]uint16
	colMasks [Size]uint16
	boxMasks [Size]uint16

	emptyCount int
}

// New creates an empty Board.
func New() *Board {
	return &Board{emptyCount: CellCount}
}

// NewFromGrid creates a Board from a 9x9 grid of values 0-9 (0 = empty).
// Returns ErrFormat for a wrong shape, out-of-range values, or a given that
// duplicates another in its row, column, or box.
func NewFromGrid(grid [][]int) (*Board, error) {
	if len(grid) != Size {
		return nil, fmt.Errorf("%w: grid must have %d rows, got %d", ErrFormat, Size, len(grid))
	}
	b := New()
	for r, row := range grid {
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d must have %d cells, got %d", ErrFormat, r, Size, len(row))
		}
		for c, v := range row {
			if v < 0 || v > Size {
				return nil, fmt.Errorf("%w: value %d at (%d,%d) out of range", ErrFormat, v, r, c)
			}
			if v == Empty {
				continue
			}
			if err := b.Set(r, c, v); err != nil {
				return nil, fmt.Errorf("%w: given at (%d,%d): %v", ErrFormat, r, c, err)
			}
		}
	}
	b.initial = b.cells
	return b, nil
}

// NewFromString creates a Board from the canonical 81-character form:
// ASCII digits in row-major order, '0' for empty. Anything else is ErrFormat.
func NewFromString(s string) (*Board, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: string must be exactly %d characters, got %d", ErrFormat, CellCount, len(s))
	}
	b := New()
	for i := 0; i < CellCount; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrFormat, ch, i)
		}
		if ch == '0' {
			continue
		}
		if err := b.Set(i/Size, i%Size, int(ch-'0')); err != nil {
			return nil, fmt.Errorf("%w: given at position %d: %v", ErrFormat, i, err)
		}
	}
	b.initial = b.cells
	return b, nil
}

// boxIndex maps a cell to its 3x3 box (0-8).
func boxIndex(r, c int) int {
	return (r/BoxSize)*BoxSize + c/BoxSize
}

// Get returns the value at (r, c), or InvalidCell if out of bounds.
func (b *Board) Get(r, c int) int {
	if !inBounds(r, c) {
		return InvalidCell
	}
	return int(b.cells[r][c])
}

// Set places value v (1-9) at (r, c), or clears the cell when v is 0.
// Returns ErrOutOfRange for bad coordinates or values and ErrConflict if v
// already occurs among the cell's peers; the board is unchanged on error.
func (b *Board) Set(r, c, v int) error {
	if !inBounds(r, c) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, r, c)
	}
	if v < 0 || v > Size {
		return fmt.Errorf("%w: value %d", ErrOutOfRange, v)
	}
	if v == Empty {
		return b.Clear(r, c)
	}
	if int(b.cells[r][c]) == v {
		return nil
	}

	// Conflict check before any mutation. The cell's own current digit (if
	// any) differs from v here, so its mask bit cannot shadow v's.
	mask := digitMask(v)
	box := boxIndex(r, c)
	switch {
	case b.rowMasks[r]&mask != 0:
		return fmt.Errorf("%w: value %d already in row %d", ErrConflict, v, r)
	case b.colMasks[c]&mask != 0:
		return fmt.Errorf("%w: value %d already in column %d", ErrConflict, v, c)
	case b.boxMasks[box]&mask != 0:
		return fmt.Errorf("%w: value %d already in box %d", ErrConflict, v, box)
	}

	if b.cells[r][c] != Empty {
		b.Clear(r, c)
	}
	b.place(r, c, v)
	return nil
}

// SetForce places a value without legality checks.
// Use only when the move is known to be valid.
func (b *Board) SetForce(r, c, v int) {
	if b.cells[r][c] != Empty {
		b.Clear(r, c)
	}
	b.place(r, c, v)
}

func (b *Board) place(r, c, v int) {
	mask := digitMask(v)
	b.cells[r][c] = uint8(v)
	b.rowMasks[r] |= mask
	b.colMasks[c] |= mask
	b.boxMasks[boxIndex(r, c)] |= mask
	b.emptyCount--
}

// Clear removes the value at (r, c). Clearing an empty cell is a no-op.
// Clear is the exact inverse of a preceding Set/SetForce on the same cell:
// all peer candidate sets revert with it.
func (b *Board) Clear(r, c int) error {
	if !inBounds(r, c) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, r, c)
	}
	v := b.cells[r][c]
	if v == Empty {
		return nil
	}
	mask := digitMask(int(v))
	b.cells[r][c] = Empty
	b.rowMasks[r] &^= mask
	b.colMasks[c] &^= mask
	b.boxMasks[boxIndex(r, c)] &^= mask
	b.emptyCount++
	return nil
}

// CandidatesMask returns the candidate bitmask for (r, c): bit i set means
// digit i+1 is legal there. Returns 0 for filled or out-of-bounds cells.
func (b *Board) CandidatesMask(r, c int) uint16 {
	if !inBounds(r, c) || b.cells[r][c] != Empty {
		return 0
	}
	return allDigits &^ b.rowMasks[r] &^ b.colMasks[c] &^ b.boxMasks[boxIndex(r, c)]
}

// Candidates returns the legal digits for (r, c) in ascending order.
// The slice is a fresh copy; empty for filled cells.
func (b *Board) Candidates(r, c int) []int {
	mask := b.CandidatesMask(r, c)
	out := make([]int, 0, Size)
	for v := 1; v <= Size; v++ {
		if mask&digitMask(v) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// EmptyCells returns the empty positions in row-major order.
func (b *Board) EmptyCells() []Cell {
	out := make([]Cell, 0, b.emptyCount)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == Empty {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}
	return out
}

// EmptyCount returns the number of unfilled cells.
func (b *Board) EmptyCount() int {
	return b.emptyCount
}

// Clone returns an independent deep copy, including the initial snapshot.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Reset restores the grid to the initial snapshot captured at construction
// and rebuilds the unit masks from scratch.
func (b *Board) Reset() {
	b.cells = b.initial
	b.rowMasks = [Size]uint16{}
	b.colMasks = [Size]uint16{}
	b.boxMasks = [Size]uint16{}
	b.emptyCount = 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := b.cells[r][c]; v != Empty {
				mask := digitMask(int(v))
				b.rowMasks[r] |= mask
				b.colMasks[c] |= mask
				b.boxMasks[boxIndex(r, c)] |= mask
			} else {
				b.emptyCount++
			}
		}
	}
}

// String returns the canonical 81-character form, '0' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte('0' + b.cells[r][c])
		}
	}
	return sb.String()
}

// Format returns a human-readable grid with box separators.
func (b *Board) Format() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r%BoxSize == 0 && r != 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < Size; c++ {
			if c%BoxSize == 0 && c != 0 {
				sb.WriteString("| ")
			}
			if v := b.cells[r][c]; v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func digitMask(v int) uint16 {
	return 1 << (v - 1)
}

func inBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}
