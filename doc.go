// Package gridpath finds shortest paths on rectangular occupancy grids —
// the 2D maps of games, robot planners, and tile-based simulations.
//
// 🚀 What is gridpath?
//
//	A small, focused, pure-Go library that brings together:
//		• Grid model: validated, immutable occupancy grids of traversable/blocked cells
//		• Uniform-cost search: Dijkstra with a lazy-deletion min-heap frontier
//		• Region analysis: connected traversable components
//		• Tunable runs: context cancellation, hop caps, expansion budgets, visit hooks
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest contracts – "no path" is an answer, not an error; bad input is an error
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – observe every expansion with an OnVisit hook
//
// Everything is organized under two subpackages:
//
//	grid/     — Grid, Cell and State types: construction, bounds, neighbors, components
//	dijkstra/ — FindPath and Distances over a grid, with functional options
//
// Quick ASCII example:
//
//	S . . #
//	# # . #
//	. . . G
//
//	a 3×4 map where S=(0,0) reaches G=(2,3) in 5 moves around the walls.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
