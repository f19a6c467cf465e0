package grid

import "fmt"

// neighborOffsets lists the 4-connected moves in fixed relaxation
// order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// Value 0 maps to Traversable; any other value maps to Blocked, the
// usual occupancy-map convention. The input is deep-copied, so
// mutating values after New returns does not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(rows×cols) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	cells := make([]State, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if values[r][c] != 0 {
				cells[r*cols+c] = Blocked
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols, the total cell count. Complexity: O(1).
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// StateAt returns the state of cell c. Out-of-bounds cells report
// Blocked: the world beyond the edge is wall.
// Complexity: O(1).
func (g *Grid) StateAt(c Cell) State {
	if !g.InBounds(c) {
		return Blocked
	}

	return g.cells[c.Row*g.cols+c.Col]
}

// Traversable reports whether c is in bounds and open floor.
// Complexity: O(1).
func (g *Grid) Traversable(c Cell) bool {
	return g.StateAt(c) == Traversable
}

// Index maps an in-bounds cell to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the in-bounds, traversable 4-neighbors of c in
// fixed order: up, down, left, right. c itself need not be
// traversable. Complexity: O(1), at most four results.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Traversable(n) {
			out = append(out, n)
		}
	}

	return out
}
