// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// State classifies a single cell: open floor or impassable wall.
type State uint8

const (
	// Traversable marks a cell a path may step on.
	Traversable State = iota
	// Blocked marks a wall cell.
	Blocked
)

// Cell addresses one grid position by zero-based row and column.
// Row 0 is the top row; Col 0 is the leftmost column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable rectangular occupancy map. It is built once by
// New, deep-copying its input, and never mutated afterwards, so it is
// safe to share across concurrent searches.
// Cells are stored row-major: index = Row*Cols + Col.
type Grid struct {
	rows, cols int
	cells      []State
}
