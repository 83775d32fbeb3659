package dlx

import "fmt"

// rootSentinel fills the root node's unused col/data fields so a heap dump
// shows an unmistakable value there instead of a stray zero. It carries no
// semantic meaning.
const rootSentinel = 0x51DEB00B

// node is the single cell type populating the arena. Every field is an
// index into the owning Matrix's nodes slice. For a header node, data holds
// the column's current size (count of linked data nodes); for a data node,
// data holds the row id.
type node struct {
	l, r, u, d int
	col        int
	data       int
}

// Matrix is the toroidal quadruply-linked sparse-matrix representation of
// an exact cover instance. Index 0 is always the root header; indices
// 1..numCols are the column headers in construction order; everything
// after that is a data node. The zero Matrix is not usable; construct one
// with Build.
type Matrix[L any] struct {
	nodes     []node
	numCols   int
	rowLabels []L
}

// Build ingests an ExactCoverSource and constructs the matrix: a root,
// numCols headers, then each source row spliced into its columns' U/D
// cycles and its own circular L/R cycle. Columns left empty after every
// row has been added are detached from the active header list, so a
// column no row could ever satisfy doesn't block the rest of the matrix
// from being solved.
//
// Build panics with a *Error carrying OutOfRangeColumn or DuplicateColumn
// if a row references a column outside [0, NumColumns()) or repeats one.
func Build[L any](src ExactCoverSource[L]) *Matrix[L] {
	numCols := src.NumColumns()
	m := &Matrix[L]{numCols: numCols}
	m.setupHeaders()
	for label, cols := range src.Rows() {
		m.addRow(label, cols)
	}
	m.removeEmptyColumns()
	return m
}

func (m *Matrix[L]) setupHeaders() {
	m.nodes = make([]node, 1+m.numCols)
	m.nodes[0] = node{
		col:  rootSentinel,
		data: rootSentinel,
		l:    m.numCols,
		r:    (0 + 1) % (m.numCols + 1),
	}
	for i := 0; i < m.numCols; i++ {
		h := i + 1
		m.nodes[h] = node{
			l:    i,
			r:    (i + 2) % (m.numCols + 1),
			u:    h,
			d:    h,
			col:  h,
			data: 0,
		}
	}
}

// headerIndex maps a caller-facing column index to its header's slot in
// the arena, panicking with OutOfRangeColumn if out of bounds.
func (m *Matrix[L]) headerIndex(col int) int {
	if col < 0 || col >= m.numCols {
		fatal(OutOfRangeColumn, fmt.Sprintf("column %d out of range [0, %d)", col, m.numCols))
	}
	return col + 1
}

func (m *Matrix[L]) addRow(label L, cols []int) {
	rowID := len(m.rowLabels)
	m.rowLabels = append(m.rowLabels, label)

	rowStart := len(m.nodes)
	rowLen := len(cols)
	seen := make(map[int]struct{}, rowLen)

	for i, col := range cols {
		header := m.headerIndex(col)
		if _, dup := seen[col]; dup {
			fatal(DuplicateColumn, fmt.Sprintf("row %d repeats column %d", rowID, col))
		}
		seen[col] = struct{}{}

		idx := len(m.nodes)
		n := node{
			l:    (i+rowLen-1)%rowLen + rowStart,
			r:    (i+rowLen+1)%rowLen + rowStart,
			u:    m.nodes[header].u,
			d:    header,
			col:  header,
			data: rowID,
		}
		m.nodes[n.u].d = idx
		m.nodes[header].u = idx
		m.nodes[header].data++
		m.nodes = append(m.nodes, n)
	}
}

func (m *Matrix[L]) removeEmptyColumns() {
	for idx := 1; idx <= m.numCols; idx++ {
		n := m.nodes[idx]
		if n.d == idx {
			m.nodes[n.l].r = n.r
			m.nodes[n.r].l = n.l
		}
	}
}

// cover removes header h from the active header list and, for every data
// node in h's column, unlinks each row-sibling from its own column cycle.
// Row L/R links are left untouched, which is exactly what lets uncover
// restore the structure byte-for-byte.
func (m *Matrix[L]) cover(h int) {
	header := m.nodes[h]
	m.nodes[header.l].r = header.r
	m.nodes[header.r].l = header.l

	for i := header.d; i != h; i = m.nodes[i].d {
		for j := m.nodes[i].r; j != i; j = m.nodes[j].r {
			n := m.nodes[j]
			m.nodes[n.d].u = n.u
			m.nodes[n.u].d = n.d
			m.nodes[n.col].data--
		}
	}
}

// uncover is cover's exact inverse. It must walk up the column and then
// leftward along each row, the reverse of cover's down/rightward walk, so
// that every node is re-spliced via links it still holds.
func (m *Matrix[L]) uncover(h int) {
	header := m.nodes[h]

	for i := header.u; i != h; i = m.nodes[i].u {
		for j := m.nodes[i].l; j != i; j = m.nodes[j].l {
			n := m.nodes[j]
			m.nodes[n.col].data++
			m.nodes[n.u].d = j
			m.nodes[n.d].u = j
		}
	}

	m.nodes[header.l].r = h
	m.nodes[header.r].l = h
}

// chooseColumn scans the active header list starting at root.R and returns
// the header with the smallest data (size), breaking ties by whichever is
// encountered first. It panics with NoColumnChosen if the active list is
// empty; search's base case must never let that happen.
func (m *Matrix[L]) chooseColumn() int {
	const unset = -1
	chosen := unset
	min := int(^uint(0) >> 1) // max int

	for c := m.nodes[0].r; c != 0; c = m.nodes[c].r {
		if m.nodes[c].data < min {
			chosen = c
			min = m.nodes[c].data
		}
	}

	if chosen == unset {
		fatal(NoColumnChosen, "chooseColumn called with empty active header list")
	}
	return chosen
}
