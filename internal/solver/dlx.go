package solver

import "svw.info/sudoku-solvers/internal/board"

// DancingLinks solves the puzzle as an exact-cover problem with Knuth's
// Algorithm X over a dancing-links matrix.
//
// Mapping: 324 constraint columns, 729 placement rows (r, c, v).
// Columns: 0..80   -> cell (r, c) is filled
//          81..161 -> row r contains v
//          162..242-> column c contains v
//          243..323-> box b contains v, b = (r/3)*3 + c/3
//
// The matrix is an arena of nodes addressed by index: neighbor links are
// int32 indices into a flat slice instead of pointers. Index 0 is the root
// header, 1..324 the column headers, and the 729*4 row nodes follow.
type DancingLinks struct {
	tracker
	m        *dlxMatrix
	selected []int32 // placement ids of tentatively selected rows
}

const (
	dlxCols = 4 * board.CellCount          // 324
	dlxRows = board.CellCount * board.Size // 729

	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

type dlxNode struct {
	left, right, up, down int32
	col                   int32 // owning column header index
	row                   int32 // placement id 0..728; -1 for headers
}

type dlxMatrix struct {
	nodes []dlxNode
	size  [dlxCols + 1]int // live rows per column header index
}

// NewDancingLinks creates a Dancing Links solver over a copy of b. The
// matrix is built fresh from the board's givens.
func NewDancingLinks(b *board.Board) *DancingLinks {
	s := &DancingLinks{tracker: newTracker(AlgorithmDancingLinks, b)}
	s.rebuild()
	return s
}

func (s *DancingLinks) Solve() bool {
	if !s.search() {
		return false
	}
	for _, row := range s.selected {
		r, c, v := decodePlacement(int(row))
		s.board.SetForce(r, c, v)
		s.recordAssignment(r, c, v)
	}
	return s.board.IsSolved()
}

func (s *DancingLinks) SolveWithTiming() bool {
	return s.timed(s.Solve)
}

// Reset restores the board from its snapshot and rebuilds the matrix from
// scratch; prior link state is never reused.
func (s *DancingLinks) Reset() {
	s.resetTracking()
	s.rebuild()
}

func (s *DancingLinks) rebuild() {
	s.m = newDLXMatrix()
	s.selected = s.selected[:0]
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if v := s.board.Get(r, c); v != board.Empty {
				s.m.applyGiven(r, c, v)
			}
		}
	}
}

// search is Algorithm X. Cover/uncover calls nest like a stack: every cover
// is undone in exact reverse order on the way out, so the matrix is back in
// its post-givens state whether or not a solution was found.
func (s *DancingLinks) search() bool {
	m := s.m
	if m.nodes[0].right == 0 {
		// Header ring is empty: every constraint is satisfied.
		return true
	}
	h := m.chooseColumn()
	if m.size[h] == 0 {
		return false
	}
	m.cover(h)
	for i := m.nodes[h].down; i != h; i = m.nodes[i].down {
		s.guesses++
		s.selected = append(s.selected, m.nodes[i].row)
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			m.cover(m.nodes[j].col)
		}
		if s.search() {
			for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
				m.uncover(m.nodes[j].col)
			}
			m.uncover(h)
			return true
		}
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.uncover(m.nodes[j].col)
		}
		s.selected = s.selected[:len(s.selected)-1]
		s.backtracks++
	}
	m.uncover(h)
	return false
}

// newDLXMatrix builds the full 324-column, 729-row matrix with no givens
// applied yet.
func newDLXMatrix() *dlxMatrix {
	m := &dlxMatrix{nodes: make([]dlxNode, 0, 1+dlxCols+4*dlxRows)}

	// Root and column headers form a horizontal ring; header up/down rings
	// start out self-linked.
	m.nodes = append(m.nodes, dlxNode{left: dlxCols, right: 1, row: -1})
	for h := int32(1); h <= dlxCols; h++ {
		m.nodes = append(m.nodes, dlxNode{
			left:  h - 1,
			right: (h + 1) % (dlxCols + 1),
			up:    h,
			down:  h,
			col:   h,
			row:   -1,
		})
	}

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			for v := 1; v <= board.Size; v++ {
				row := int32(placementIndex(r, c, v))
				first := int32(-1)
				prev := int32(-1)
				for _, colID := range placementColumns(r, c, v) {
					h := int32(colID + 1)
					n := int32(len(m.nodes))
					m.nodes = append(m.nodes, dlxNode{col: h, row: row})

					// Vertical insert at the bottom of the column ring.
					m.nodes[n].down = h
					m.nodes[n].up = m.nodes[h].up
					m.nodes[m.nodes[h].up].down = n
					m.nodes[h].up = n
					m.size[h]++

					// Horizontal ring of the row's 4 nodes.
					if first < 0 {
						first = n
						m.nodes[n].left = n
						m.nodes[n].right = n
					} else {
						m.nodes[n].left = prev
						m.nodes[n].right = m.nodes[prev].right
						m.nodes[m.nodes[prev].right].left = n
						m.nodes[prev].right = n
					}
					prev = n
				}
			}
		}
	}
	return m
}

// cover unlinks column h from the header ring and every row sharing it from
// the other columns' vertical rings.
func (m *dlxMatrix) cover(h int32) {
	n := m.nodes
	n[n[h].left].right = n[h].right
	n[n[h].right].left = n[h].left
	for i := n[h].down; i != h; i = n[i].down {
		for j := n[i].right; j != i; j = n[j].right {
			n[n[j].down].up = n[j].up
			n[n[j].up].down = n[j].down
			m.size[n[j].col]--
		}
	}
}

// uncover replays cover's traversal in exact reverse order. Correct only
// because cover/uncover calls are perfectly nested.
func (m *dlxMatrix) uncover(h int32) {
	n := m.nodes
	for i := n[h].up; i != h; i = n[i].up {
		for j := n[i].left; j != i; j = n[j].left {
			m.size[n[j].col]++
			n[n[j].down].up = j
			n[n[j].up].down = j
		}
	}
	n[n[h].left].right = h
	n[n[h].right].left = h
}

// chooseColumn picks the live column with the fewest live rows, ties broken
// by ring traversal order. Callers handle the empty-ring case first.
func (m *dlxMatrix) chooseColumn() int32 {
	best := int32(0)
	for h := m.nodes[0].right; h != 0; h = m.nodes[h].right {
		if best == 0 || m.size[h] < m.size[best] {
			best = h
			if m.size[best] == 0 {
				break
			}
		}
	}
	return best
}

// applyGiven force-selects the placement row for a given cell by covering
// its four columns, shrinking the search before the first guess.
func (m *dlxMatrix) applyGiven(r, c, v int) {
	for _, colID := range placementColumns(r, c, v) {
		m.cover(int32(colID + 1))
	}
}

// placementIndex maps (r, c, v) to a placement id 0..728.
func placementIndex(r, c, v int) int {
	return (r*board.Size+c)*board.Size + (v - 1)
}

// placementColumns returns the four constraint columns satisfied by placing
// v at (r, c).
func placementColumns(r, c, v int) [4]int {
	box := (r/board.BoxSize)*board.BoxSize + c/board.BoxSize
	return [4]int{
		colCell + r*board.Size + c,
		colRowNum + r*board.Size + (v - 1),
		colColNum + c*board.Size + (v - 1),
		colBoxNum + box*board.Size + (v - 1),
	}
}

// decodePlacement is the inverse of placementIndex.
func decodePlacement(row int) (r, c, v int) {
	cell := row / board.Size
	return cell / board.Size, cell % board.Size, row%board.Size + 1
}
