// Package render turns code grids into terminal art, plain text, and PNG
// rasters, and parses the plain-text form back into a grid.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dfbb/hamcode/internal/hamcode"
)

// border is the number of quiet cells drawn around the code on every side.
const border = 1

// Blocks renders g for a terminal using Unicode half-block characters, two
// grid rows per output line so the code appears square. A one-cell quiet
// border surrounds the code.
func Blocks(g hamcode.Grid) string {
	at := func(row, col int) bool {
		row -= border
		col -= border
		if row < 0 || row >= hamcode.Size || col < 0 || col >= hamcode.Size {
			return false
		}
		return g[row][col]
	}

	total := hamcode.Size + 2*border
	var b strings.Builder
	for row := 0; row < total; row += 2 {
		for col := 0; col < total; col++ {
			top, bot := at(row, col), at(row+1, col)
			switch {
			case top && bot:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bot:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ASCII renders g as 20 lines of 20 characters: '#' for black, '.' for
// white. Parse reads this form back.
func ASCII(g hamcode.Grid) string {
	var b strings.Builder
	for row := 0; row < hamcode.Size; row++ {
		for col := 0; col < hamcode.Size; col++ {
			if g[row][col] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse reads a grid in the ASCII form: 20 non-blank lines of 20 cells each.
// '#', '█' and '1' are black; '.' and '0' are white. Blank lines and
// trailing whitespace are ignored. The finder region is read as-is; decoding
// never inspects it.
func Parse(r io.Reader) (hamcode.Grid, error) {
	var g hamcode.Grid
	sc := bufio.NewScanner(r)
	row, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		if row >= hamcode.Size {
			return hamcode.Grid{}, fmt.Errorf("render: line %d: more than %d grid rows", lineNo, hamcode.Size)
		}
		cells := []rune(line)
		if len(cells) != hamcode.Size {
			return hamcode.Grid{}, fmt.Errorf("render: line %d: %d cells, want %d", lineNo, len(cells), hamcode.Size)
		}
		for col, ch := range cells {
			switch ch {
			case '#', '█', '1':
				g[row][col] = true
			case '.', '0':
			default:
				return hamcode.Grid{}, fmt.Errorf("render: line %d, col %d: bad cell %q", lineNo, col+1, ch)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return hamcode.Grid{}, fmt.Errorf("render: %w", err)
	}
	if row != hamcode.Size {
		return hamcode.Grid{}, fmt.Errorf("render: got %d grid rows, want %d", row, hamcode.Size)
	}
	return g, nil
}
