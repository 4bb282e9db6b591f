package hamcode

// Grid is one 20×20 code, true = black. It is an array, not a slice: plain
// assignment copies the whole grid, so callers always work on their own value.
type Grid [Size][Size]bool

// NewGrid returns a grid with the finder pattern applied and all data cells
// white.
func NewGrid() Grid {
	return ApplyFinderOverlay(Grid{})
}

// InFinder reports whether (row, col) lies in the fixed finder region.
func InFinder(row, col int) bool {
	return row < dataStart || col < dataStart
}

// ApplyFinderOverlay returns g with the finder region rewritten to its fixed
// pattern: solid black row 0 and column 0, black row 2 and column 2 from
// index 2 onward, four isolated marker cells, everything else in the top 4
// rows and left 4 columns white. Data cells are untouched. Idempotent.
func ApplyFinderOverlay(g Grid) Grid {
	for r := 0; r < dataStart; r++ {
		for c := 0; c < Size; c++ {
			g[r][c] = false
		}
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < dataStart; c++ {
			g[r][c] = false
		}
	}
	for c := 0; c < Size; c++ {
		g[0][c] = true
	}
	for r := 0; r < Size; r++ {
		g[r][0] = true
	}
	for c := 2; c < Size; c++ {
		g[2][c] = true
	}
	for r := 2; r < Size; r++ {
		g[r][2] = true
	}
	g[1][3] = true
	g[3][1] = true
	g[1][19] = true
	g[19][1] = true
	return g
}

// Toggle returns a copy of g with the cell at (row, col) flipped. Finder
// cells and out-of-range coordinates are left as they are. The overlay is
// re-applied on the way out, so the finder region is canonical in the result
// no matter how g was produced.
func (g Grid) Toggle(row, col int) Grid {
	if row < 0 || row >= Size || col < 0 || col >= Size || InFinder(row, col) {
		return g
	}
	g[row][col] = !g[row][col]
	return ApplyFinderOverlay(g)
}
