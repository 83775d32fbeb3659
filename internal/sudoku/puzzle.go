// Package sudoku reduces an N×N Sudoku puzzle (N = k² for some integer k)
// to the exact cover contract consumed by internal/dlx: a cell/row-digit/
// col-digit/box-digit column layout and one row per un-conflicted
// (row, col, digit) candidate placement.
package sudoku

import (
	"fmt"
	"iter"
	"math"

	"github.com/kpitt/exactcover/internal/dlx"
	"github.com/kpitt/exactcover/internal/set"
)

// Puzzle is an ExactCoverSource reduction of an N×N Sudoku board's clues.
// It implements dlx.ExactCoverSource[Clue].
type Puzzle struct {
	clues       []Clue
	size        int
	boxSize     int
	coveredCols *set.Set[int]
}

// NewFromClues validates size and clues, then builds the reduction. size
// must be a perfect square; every clue must lie within [0, size) on all
// three axes; and no two clues may cover the same exact-cover column (a
// conflicting puzzle). NewFromClues panics with a *Error on any violation.
func NewFromClues(clues []Clue, size int) *Puzzle {
	boxSize := isqrt(size)
	if boxSize*boxSize != size {
		fatal(InvalidSize, fmt.Sprintf("size %d is not a perfect square", size))
	}

	p := &Puzzle{
		size:        size,
		boxSize:     boxSize,
		coveredCols: set.NewSet[int](),
	}

	kept := make([]Clue, 0, len(clues))
	for _, c := range clues {
		if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size || c.Digit < 0 || c.Digit >= size {
			fatal(OutOfRangeClue, fmt.Sprintf("clue %s outside bounds of %dx%d sudoku", c, size, size))
		}
		for _, col := range p.columnsFor(c) {
			if p.coveredCols.Contains(col) {
				fatal(ClueConflict, fmt.Sprintf("conflict with previous clues: %s", c))
			}
			p.coveredCols.Add(col)
		}
		kept = append(kept, c)
	}
	p.clues = kept

	return p
}

// NewFromBytes decodes clues from a packed byte sequence in groups of
// three (row, col, digit) and delegates to NewFromClues.
func NewFromBytes(packed []byte, size int) *Puzzle {
	if len(packed)%3 != 0 {
		fatal(OutOfRangeClue, fmt.Sprintf("packed clue byte sequence length %d is not a multiple of 3", len(packed)))
	}
	clues := make([]Clue, 0, len(packed)/3)
	for i := 0; i+2 < len(packed); i += 3 {
		clues = append(clues, Clue{
			Row:   int(packed[i]),
			Col:   int(packed[i+1]),
			Digit: int(packed[i+2]),
		})
	}
	return NewFromClues(clues, size)
}

// isqrt returns the integer square root of n, or the floor of it if n is
// not a perfect square.
func isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// columnsFor computes the four exact-cover column indices a candidate
// placement occupies: one column per constraint group (cell, row-digit,
// col-digit, box-digit), packed as:
//
//	cell      = row + col*N
//	rowDigit  = N² + digit + row*N
//	colDigit  = 2N² + digit + col*N
//	boxDigit  = 3N² + digit + box*N
func (p *Puzzle) columnsFor(c Clue) [4]int {
	n := p.size
	box := c.Row/p.boxSize + (c.Col/p.boxSize)*p.boxSize
	return [4]int{
		c.Row + c.Col*n,
		n*n + c.Digit + c.Row*n,
		2*n*n + c.Digit + c.Col*n,
		3*n*n + c.Digit + box*n,
	}
}

// NumColumns implements dlx.ExactCoverSource.
func (p *Puzzle) NumColumns() int {
	return 4 * p.size * p.size
}

// Rows implements dlx.ExactCoverSource: it lazily yields every
// (row, col, digit) candidate whose four columns are all disjoint from the
// columns already covered by clues. Clue placements are pre-committed, so
// search only ever fills in the puzzle's remainder.
func (p *Puzzle) Rows() iter.Seq2[Clue, []int] {
	return func(yield func(Clue, []int) bool) {
		n := p.size
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				for digit := 0; digit < n; digit++ {
					clue := Clue{Row: row, Col: col, Digit: digit}
					cols := p.columnsFor(clue)
					if p.anyCovered(cols) {
						continue
					}
					if !yield(clue, cols[:]) {
						return
					}
				}
			}
		}
	}
}

func (p *Puzzle) anyCovered(cols [4]int) bool {
	for _, col := range cols {
		if p.coveredCols.Contains(col) {
			return true
		}
	}
	return false
}

// Size returns N, the puzzle's side length.
func (p *Puzzle) Size() int {
	return p.size
}

// Clues returns the puzzle's validated given clues.
func (p *Puzzle) Clues() []Clue {
	return p.clues
}

// Solve reduces the puzzle to exact cover, runs the DLX engine, and
// materializes every solution as a completed N×N digit grid (clues plus
// the chosen row labels).
func (p *Puzzle) Solve() [][][]int {
	m := dlx.Build[Clue](p)
	solutions := m.Solve()

	grids := make([][][]int, len(solutions))
	for i, sol := range solutions {
		grids[i] = p.grid(sol)
	}
	return grids
}

func (p *Puzzle) grid(placements []Clue) [][]int {
	n := p.size
	g := make([][]int, n)
	for r := range g {
		g[r] = make([]int, n)
	}
	for _, c := range p.clues {
		g[c.Row][c.Col] = c.Digit
	}
	for _, c := range placements {
		g[c.Row][c.Col] = c.Digit
	}
	return g
}
