// Package grid models a rectangular occupancy map as an immutable
// value, ready for shortest-path search and region analysis.
//
// What:
//
//   - Grid wraps a rectangular [][]int occupancy map: value 0 is Traversable, anything else is Blocked.
//   - Validates shape up front: no rows, no columns, or ragged rows are construction errors.
//   - Deep-copies its input, so a Grid never changes after New returns.
//   - Exposes bounds checks, row-major indexing, fixed-order 4-neighbors, and connected components.
//
// Why:
//
//   - Game maps: walls and floors, with agents pathing between them.
//   - Robot planning: occupancy grids from sensors, planned over in memory.
//   - Map analysis: count rooms and isolated pockets before searching.
//
// Complexity:
//
//   - New:          O(rows×cols), Memory: O(rows×cols).
//   - InBounds, StateAt, Traversable, Index, CellAt: O(1).
//   - Neighbors:    O(1), at most four cells.
//   - Components:   O(rows×cols), Memory: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// See: the dijkstra package for shortest-path search over a Grid.
package grid
