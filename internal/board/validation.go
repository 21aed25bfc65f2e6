package board

import "errors"

var (
	// ErrFormat reports a malformed serialization or grid shape.
	ErrFormat = errors.New("malformed puzzle")
	// ErrOutOfRange reports an out-of-bounds row, column, or value.
	ErrOutOfRange = errors.New("row, column, or value out of range")
	// ErrConflict reports a placement that duplicates a peer value.
	ErrConflict = errors.New("placement conflicts with row, column, or box")
)

// IsValidPlacement reports whether v could legally occupy (r, c): no peer in
// the same row, column, or box holds v. The cell (r, c) itself is excluded,
// so a value already placed there does not conflict with itself.
func (b *Board) IsValidPlacement(r, c, v int) bool {
	if !inBounds(r, c) || v < 1 || v > Size {
		return false
	}
	for i := 0; i < Size; i++ {
		if i != c && int(b.cells[r][i]) == v {
			return false
		}
		if i != r && int(b.cells[i][c]) == v {
			return false
		}
	}
	br, bc := (r/BoxSize)*BoxSize, (c/BoxSize)*BoxSize
	for rr := br; rr < br+BoxSize; rr++ {
		for cc := bc; cc < bc+BoxSize; cc++ {
			if (rr != r || cc != c) && int(b.cells[rr][cc]) == v {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether the board has no duplicate non-zero value in any
// row, column, or box. Empty cells are ignored. The check scans with fresh
// masks rather than trusting the incrementally maintained ones.
func (b *Board) IsValid() bool {
	var rowCheck, colCheck, boxCheck [Size]uint16
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.cells[r][c]
			if v == Empty {
				continue
			}
			mask := digitMask(int(v))
			box := boxIndex(r, c)
			if rowCheck[r]&mask != 0 || colCheck[c]&mask != 0 || boxCheck[box]&mask != 0 {
				return false
			}
			rowCheck[r] |= mask
			colCheck[c] |= mask
			boxCheck[box] |= mask
		}
	}
	return true
}

// IsSolved reports whether every cell is filled and the board is valid.
func (b *Board) IsSolved() bool {
	return b.emptyCount == 0 && b.IsValid()
}
