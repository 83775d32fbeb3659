package dlx

import (
	"iter"
	"reflect"
	"slices"
	"sort"
	"testing"
)

// rowSource is a minimal ExactCoverSource used throughout these tests: a
// fixed column count and a literal list of (label, columns) rows.
type rowSource struct {
	numCols int
	rows    [][]int
}

func (s rowSource) NumColumns() int { return s.numCols }

func (s rowSource) Rows() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for label, cols := range s.rows {
			if !yield(label, cols) {
				return
			}
		}
	}
}

// knuthToy is the toy exact cover matrix from Knuth's Dancing Links paper:
// num_cols = 6, rows = [{0,1}, {1,2}, {2,3}, {3,4}, {4,5}, {0,5}], with
// exactly two disjoint 3-row covers.
func knuthToy() rowSource {
	return rowSource{
		numCols: 6,
		rows: [][]int{
			{0, 1},
			{1, 2},
			{2, 3},
			{3, 4},
			{4, 5},
			{0, 5},
		},
	}
}

func TestSolveKnuthToyMatrix(t *testing.T) {
	m := Build[int](knuthToy())
	solutions := m.Solve()

	if len(solutions) != 2 {
		t.Fatalf("got %d solutions, want 2", len(solutions))
	}
	for i, sol := range solutions {
		if len(sol) != 3 {
			t.Errorf("solution %d has %d rows, want 3", i, len(sol))
		}
	}

	var got [][]int
	for _, sol := range solutions {
		row := slices.Clone(sol)
		sort.Ints(row)
		got = append(got, row)
	}
	want := [][]int{{0, 2, 4}, {1, 3, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got solutions %v, want %v", got, want)
	}
}

func TestSolveEmptySource(t *testing.T) {
	m := Build[int](rowSource{numCols: 3})
	solutions := m.Solve()

	// All three columns are empty and removed, so root.R == root
	// immediately: the unique exact cover is the empty row list.
	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(solutions))
	}
	if len(solutions[0]) != 0 {
		t.Errorf("got solution %v, want empty", solutions[0])
	}
}

func TestSolveOverConstrained(t *testing.T) {
	m := Build[int](rowSource{
		numCols: 2,
		rows:    [][]int{{0}, {0}},
	})
	solutions := m.Solve()

	// Column 1 is never covered by any row, so it is removed as empty.
	// Column 0 has two single-row covers.
	if len(solutions) != 2 {
		t.Fatalf("got %d solutions, want 2", len(solutions))
	}
	for _, sol := range solutions {
		if len(sol) != 1 {
			t.Errorf("got solution of length %d, want 1", len(sol))
		}
	}
}

func TestSolveDisjointRowsMustCombine(t *testing.T) {
	// Column 2 has zero rows and is removed as empty. Columns 0 and 1 are
	// each covered by a different, disjoint row, so the only exact cover
	// uses both rows together.
	m := Build[int](rowSource{
		numCols: 3,
		rows:    [][]int{{0}, {1}},
	})
	solutions := m.Solve()
	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(solutions))
	}
	if len(solutions[0]) != 2 {
		t.Errorf("got solution %v, want both rows", solutions[0])
	}
}

func TestBuildPanics(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want ErrorKind
	}{
		{"out of range column", [][]int{{0, 5}}, OutOfRangeColumn},
		{"duplicate column", [][]int{{0, 0}}, DuplicateColumn},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected a panic")
				}
				err, ok := r.(*Error)
				if !ok {
					t.Fatalf("panic value is %T, want *Error", r)
				}
				if err.Kind != c.want {
					t.Errorf("got kind %v, want %v", err.Kind, c.want)
				}
			}()
			Build[int](rowSource{numCols: 2, rows: c.rows})
		})
	}
}

func TestCoverUncoverRestoresMatrix(t *testing.T) {
	m := Build[int](knuthToy())
	before := slices.Clone(m.nodes)

	col := m.chooseColumn()
	m.cover(col)
	m.uncover(col)

	if !reflect.DeepEqual(before, m.nodes) {
		t.Fatalf("arena not restored after balanced cover/uncover:\nbefore: %+v\nafter:  %+v", before, m.nodes)
	}
}

func TestCoverUncoverNestedLIFO(t *testing.T) {
	m := Build[int](knuthToy())
	before := slices.Clone(m.nodes)

	var covered []int
	for i := 0; i < 3; i++ {
		c := m.chooseColumn()
		m.cover(c)
		covered = append(covered, c)
	}
	for i := len(covered) - 1; i >= 0; i-- {
		m.uncover(covered[i])
	}

	if !reflect.DeepEqual(before, m.nodes) {
		t.Fatalf("arena not restored after nested LIFO cover/uncover")
	}
}

func TestHeaderSizeConsistency(t *testing.T) {
	m := Build[int](knuthToy())
	for h := 1; h <= m.numCols; h++ {
		count := 0
		for i := m.nodes[h].d; i != h; i = m.nodes[i].d {
			count++
		}
		if count != m.nodes[h].data {
			t.Errorf("header %d: data=%d but D-cycle has %d nodes", h, m.nodes[h].data, count)
		}
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	m1 := Build[int](knuthToy())
	m2 := Build[int](knuthToy())

	s1 := m1.Solve()
	s2 := m2.Solve()

	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("solve is not deterministic: %v != %v", s1, s2)
	}
}

func TestSolveWithStatsMatchesSolve(t *testing.T) {
	m1 := Build[int](knuthToy())
	m2 := Build[int](knuthToy())

	plain := m1.Solve()
	withStats, stats := m2.SolveWithStats()

	if !reflect.DeepEqual(plain, withStats) {
		t.Errorf("SolveWithStats returned %v, want %v", withStats, plain)
	}
	if stats.Solutions != len(plain) {
		t.Errorf("stats.Solutions = %d, want %d", stats.Solutions, len(plain))
	}
	if stats.NodesVisited == 0 {
		t.Error("expected at least one visited node")
	}
}

func TestChooseColumnPanicsOnEmptyList(t *testing.T) {
	m := Build[int](rowSource{numCols: 1, rows: [][]int{{0}}})
	m.cover(m.chooseColumn())

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		err, ok := r.(*Error)
		if !ok || err.Kind != NoColumnChosen {
			t.Fatalf("got %v, want *Error{Kind: NoColumnChosen}", r)
		}
	}()
	m.chooseColumn()
}

// Benchmark tests
func BenchmarkMatrixBuild(b *testing.B) {
	for b.Loop() {
		_ = Build[int](knuthToy())
	}
}

func BenchmarkMatrixChooseColumn(b *testing.B) {
	m := Build[int](knuthToy())

	for b.Loop() {
		_ = m.chooseColumn()
	}
}

// Example function showing how to use the exact cover solver
func ExampleMatrix_Solve() {
	m := Build[int](knuthToy())
	solutions := m.Solve()

	if len(solutions) > 0 {
		// solutions holds every disjoint exact cover, as row label lists
	}
}
