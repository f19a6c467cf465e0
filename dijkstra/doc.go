// Package dijkstra provides a precise, easy-to-read implementation of
// Dijkstra's shortest-path algorithm on uniform-cost occupancy grids.
//
// Overview:
//
//   - FindPath computes a minimum-hop path between two cells of a
//     grid.Grid, where every move between orthogonally adjacent
//     traversable cells costs exactly one hop.
//   - Distances computes the minimum hop count from a source cell to
//     every reachable cell.
//   - Both rely on a min-heap (priority queue) to always expand the
//     next-closest cell, with the “lazy decrease-key” strategy:
//     improvements push duplicate entries, and stale entries are
//     recognized at pop time by their outdated hop count.
//
// When to use:
//
//   - Game AI: route an agent through a tile map around walls.
//   - Robotics and simulations: plan over an occupancy grid in memory.
//   - Anywhere you need guaranteed minimum-hop routes on a static grid,
//     with “no path” as an ordinary answer rather than an error.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithContext: cancel or deadline a long search; checked once per pop.
//   - WithMaxDistance: aborts exploration beyond a hop cap, saving work on large maps.
//   - WithMaxExpansions: hard budget on finalized cells; trips ErrExpansionLimit.
//   - WithOnVisit: observe every finalization, or abort by returning an error.
//   - Unreachable goals are reported via Result.Found == false, never as an error.
//
// Performance and complexity (N = rows×cols):
//
//   - Time:  O(N log N)
//   - Each cell is finalized at most once from the priority queue (up to N pops).
//   - Each relaxation may push one new entry (up to 4N pushes).
//   - Each heap Push/Pop costs O(log N).
//   - Space: O(N)
//   - O(N) for the flat distance and predecessor arrays.
//   - O(N) worst-case entries in the heap under “lazy decrease-key”.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *grid.Grid.
//   - ErrOutOfBounds:
//     Returned if start, goal, or source lies outside the grid; wrapped
//     with the role and offending cell.
//   - ErrBlockedCell:
//     Returned if start, goal, or source sits on a wall. Endpoints on
//     walls are caller bugs; rejecting them explicitly beats silently
//     answering “no path”.
//   - ErrOptionViolation:
//     Returned if an option carries an invalid value (negative cap or budget).
//   - ErrExpansionLimit:
//     Returned when the WithMaxExpansions budget is spent before the
//     search terminates.
//
// API reference:
//
//	func FindPath(
//	    g *grid.Grid,
//	    start, goal grid.Cell,
//	    opts ...Option,
//	) (*Result, error)
//
//	  - Result.Path:     cells from start to goal inclusive; nil when not Found.
//	  - Result.Cost:     number of moves, always len(Path)-1 when Found.
//	  - Result.Expanded: cells finalized during the run, goal included.
//	  - Result.Found:    whether the goal was reached.
//
//	func Distances(
//	    g *grid.Grid,
//	    source grid.Cell,
//	    opts ...Option,
//	) (map[grid.Cell]int, error)
//
//	  - map[c] = minimal hop count from source to c; unreachable cells are absent.
//
// Determinism:
//
//   - Costs are fully deterministic. Path identity among equal-cost
//     alternatives is pinned by the fixed neighbor order (up, down,
//     left, right) and the heap's pop order, but the documented
//     contract stays “any minimum-hop path” — don't depend on which.
//
// Thread safety:
//
//   - A Grid is immutable after construction, so any number of
//     concurrent searches may share one Grid. Each call owns its
//     private frontier and arrays.
//
// See also:
//
//   - grid.New: validated grid construction from an occupancy map.
//   - grid.Grid.Components: reachability structure of the same map.
//
// Thanks for choosing gridpath! We aim to provide rock-solid grid
// search that blends mathematical rigor, performance, and clarity. If
// you spot any issue or have suggestions, please open an issue or PR
// on GitHub.
package dijkstra
