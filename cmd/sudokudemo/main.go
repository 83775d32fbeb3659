// Command sudokudemo exercises the dlx/sudoku packages against a handful
// of fixed puzzles and prints timing and solution grids. It is a thin
// presentation layer over the engine: all solving happens in
// internal/dlx and internal/sudoku, and nothing here feeds back into
// either package's contract.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/exactcover/internal/sudoku"
)

func main() {
	if isStdoutTTY() {
		color.HiWhite("Exact Cover / Dancing Links Demonstration")
		color.HiWhite("==========================================")
	}

	run4x4()
	fmt.Println()
	run9x9()
}

func run4x4() {
	clues := []sudoku.Clue{
		{Row: 0, Col: 2, Digit: 0},
		{Row: 1, Col: 1, Digit: 2},
		{Row: 1, Col: 3, Digit: 3},
		{Row: 2, Col: 0, Digit: 2},
		{Row: 2, Col: 2, Digit: 3},
		{Row: 3, Col: 1, Digit: 1},
	}

	fmt.Println(color.HiBlueString("4x4 puzzle"))
	solveAndPrint(sudoku.NewFromClues(clues, 4))
}

func run9x9() {
	// 23 givens taken from a known-valid completed 9x9 grid, so the
	// puzzle is guaranteed consistent.
	packed := []byte{
		0, 0, 4, 0, 4, 6, 1, 1, 6, 1, 3, 0, 1, 4, 8, 2, 2, 7,
		2, 7, 5, 3, 0, 7, 3, 4, 5, 3, 8, 2, 4, 3, 7, 4, 5, 2,
		5, 0, 6, 5, 4, 1, 6, 1, 5, 6, 6, 1, 7, 3, 3, 7, 4, 0,
		7, 8, 4, 8, 1, 3, 8, 4, 7, 8, 5, 5, 8, 7, 6,
	}

	fmt.Println(color.HiBlueString("9x9 puzzle"))
	solveAndPrint(sudoku.NewFromBytes(packed, 9))
}

func solveAndPrint(p *sudoku.Puzzle) {
	start := time.Now()
	grids := p.Solve()
	elapsed := time.Since(start)

	switch len(grids) {
	case 0:
		fmt.Println(color.HiRedString("no solution found"))
	case 1:
		fmt.Printf("%s (%v)\n", color.HiGreenString("solved"), elapsed)
		printGrid(grids[0])
	default:
		fmt.Printf("%s: %d solutions (%v)\n", color.HiYellowString("ambiguous puzzle"), len(grids), elapsed)
		printGrid(grids[0])
	}
}

func printGrid(grid [][]int) {
	for _, row := range grid {
		for _, v := range row {
			fmt.Printf("%2d ", v)
		}
		fmt.Println()
	}
}

func isStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
