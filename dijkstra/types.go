// Package dijkstra defines core types, configuration options, and
// sentinel errors for uniform-cost shortest-path search on a grid.
//
// The search explores an occupancy grid in increasing hop count from
// a start cell, maintaining a min-heap frontier and relaxing the four
// orthogonal neighbors of each finalized cell.
//
// Options:
//
//	– Ctx:           context for cancellation and deadlines (checked once per pop).
//	– MaxDistance:   optional cap on hop count; cells beyond it are never explored.
//	– MaxExpansions: optional budget on finalized cells; exceeding it aborts the run.
//	– OnVisit:       hook fired at each finalization; its error aborts the run.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrOutOfBounds     if start, goal, or source lies outside the grid.
//	– ErrBlockedCell     if start, goal, or source is a wall cell.
//	– ErrOptionViolation if an option carries an invalid value.
//	– ErrExpansionLimit  if the expansion budget runs out mid-search.
package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds is returned when an endpoint lies outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: cell out of bounds")

	// ErrBlockedCell is returned when an endpoint is a wall cell.
	ErrBlockedCell = errors.New("dijkstra: cell is blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrExpansionLimit is returned when the expansion budget runs out
	// before the search terminates.
	ErrExpansionLimit = errors.New("dijkstra: expansion limit reached")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a negative cap), it is recorded
// internally and surfaced as ErrOptionViolation when the search runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per
	// frontier pop.
	Ctx context.Context

	// MaxDistance, if > 0, skips relaxations beyond this hop count,
	// so a goal farther than MaxDistance hops is reported not found.
	// A value of 0 explicitly disables the cap.
	MaxDistance int

	// MaxExpansions, if > 0, bounds the number of finalized cells;
	// exceeding it aborts the search with ErrExpansionLimit.
	// A value of 0 explicitly disables the budget.
	MaxExpansions int

	// OnVisit is called when a cell's distance is finalized. If it
	// returns an error, the search aborts and propagates that error.
	OnVisit func(c grid.Cell, dist int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no hop cap (MaxDistance == 0)
//   - no expansion budget (MaxExpansions == 0)
//   - no-op OnVisit hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxDistance:   0,
		MaxExpansions: 0,
		OnVisit:       func(grid.Cell, int) error { return nil },
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps exploration at d hops from the start.
//
//	d > 0: cells farther than d hops are never explored
//	d == 0: explicit no cap
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no cap"
			o.MaxDistance = 0
		default:
			o.MaxDistance = d
		}
	}
}

// WithMaxExpansions bounds how many cells the search may finalize
// before giving up with ErrExpansionLimit.
//
//	n > 0: abort once a cell beyond the first n would be finalized
//	n == 0: explicit no budget
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no budget"
			o.MaxExpansions = 0
		default:
			o.MaxExpansions = n
		}
	}
}

// WithOnVisit registers a callback to run at each finalization;
// returning an error from this callback stops the search.
func WithOnVisit(fn func(c grid.Cell, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a FindPath run:
//   - Path: cells from start to goal inclusive; nil when not Found.
//   - Cost: number of moves, always len(Path)-1 when Found.
//   - Expanded: cells finalized during the search, goal included.
//   - Found: whether the goal was reached.
type Result struct {
	Path     []grid.Cell
	Cost     int
	Expanded int
	Found    bool
}
