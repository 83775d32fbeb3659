package dlx

import "iter"

// ExactCoverSource is the input contract for Build. It produces a fixed
// column count and a lazy, finite sequence of rows, each a caller-supplied
// label paired with the set of column indices that row occupies.
//
// Column indices within a row must be distinct and in [0, NumColumns()).
// Order within a row is preserved for L/R linkage, but never affects which
// solutions are found, only the diagnostic content of a row's cycle.
//
// The label type L is unconstrained (any). The engine stores each label
// and returns it by value inside every solution that uses its row, so
// labels should be small, comparable-by-value types.
type ExactCoverSource[L any] interface {
	// NumColumns returns the total, fixed column count of the matrix.
	NumColumns() int
	// Rows yields each row as a (label, columns) pair, in construction
	// order. The row-label association order determines row ids, which in
	// turn affects D-cycle order and therefore solution enumeration order.
	Rows() iter.Seq2[L, []int]
}
