// Package dijkstra implements Dijkstra's shortest-path algorithm on
// uniform-cost occupancy grids.
//
// Every move between orthogonally adjacent traversable cells costs
// one hop, so the search finds minimum-hop paths. It processes cells
// in order of increasing hop count using a min-heap priority queue,
// relaxing the four neighbors of each finalized cell.
//
// Complexity (N = rows×cols):
//
//   - Time:  O(N log N)
//   - Each cell is finalized at most once: up to N pops.
//   - Each relaxation may push a new entry into the heap: up to 4N pushes.
//   - Each heap operation (Push/Pop) costs O(log N).
//   - Space: O(N)
//   - O(N) for the distance and predecessor arrays.
//   - O(N) worst-case entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: improvements push duplicate
//     entries, and stale entries are recognized at pop time because they
//     carry a hop count larger than the recorded distance.
//   - We stop as soon as the goal itself is popped; its distance is final
//     at that moment, so the rest of the frontier is abandoned.
//   - Distances and predecessors live in flat row-major arrays indexed by
//     grid.Index, not maps.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// inf marks a cell not reached yet.
const inf = int(^uint(0) >> 1)

// noTarget runs the frontier to exhaustion instead of stopping at a
// goal cell. Any negative value works; cell indexes are never negative.
const noTarget = -1

// FindPath computes a minimum-hop path from start to goal on g.
//
// Returns:
//
//   - res: Path (start→goal inclusive), Cost (= len(Path)-1), Expanded
//     (finalized cell count) and Found. An unreachable goal is not an
//     error: res.Found is false and err is nil. When err is non-nil for
//     a run that started (cancellation, budget, hook), res still
//     reports the Expanded count.
//   - err: validation error before the search starts (ErrNilGrid,
//     ErrOutOfBounds, ErrBlockedCell, ErrOptionViolation), or a
//     mid-run abort (ctx error, ErrExpansionLimit, OnVisit error).
//
// When several minimum-hop paths exist, which one is returned is not
// part of the contract; the Cost is the same for all of them.
//
// Complexity: O(N log N) time, O(N) memory, N = rows×cols.
func FindPath(g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// Validate inputs before touching any state.
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	s := newSearcher(g, cfg)
	s.init(g.Index(start))
	found, err := s.run(g.Index(goal))

	res := &Result{Expanded: s.expanded, Found: found}
	if err != nil {
		return res, err
	}
	if found {
		gi := g.Index(goal)
		res.Path = s.reconstruct(gi)
		res.Cost = s.dist[gi]
	}

	return res, nil
}

// Distances computes minimum hop counts from source to every
// reachable cell of g. Cells absent from the returned map are
// unreachable (or lie beyond a configured MaxDistance cap).
//
// The same options apply as for FindPath. On a mid-run abort the map
// is nil: a partial distance map is indistinguishable from a complete
// one and would mislead.
//
// Complexity: O(N log N) time, O(N) memory, N = rows×cols.
func Distances(g *grid.Grid, source grid.Cell, opts ...Option) (map[grid.Cell]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkEndpoint(g, "source", source); err != nil {
		return nil, err
	}

	s := newSearcher(g, cfg)
	s.init(g.Index(source))
	if _, err := s.run(noTarget); err != nil {
		return nil, err
	}

	// Every cell with a finite distance was finalized, so s.expanded
	// is the exact map size.
	dist := make(map[grid.Cell]int, s.expanded)
	for i, d := range s.dist {
		if d != inf {
			dist[g.CellAt(i)] = d
		}
	}

	return dist, nil
}

// checkEndpoint validates that the named endpoint is inside the grid
// and open floor.
func checkEndpoint(g *grid.Grid, role string, c grid.Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s %v, grid %dx%d", ErrOutOfBounds, role, c, g.Rows(), g.Cols())
	}
	if !g.Traversable(c) {
		return fmt.Errorf("%w: %s %v", ErrBlockedCell, role, c)
	}

	return nil
}

// searcher holds the mutable state for a single search run.
type searcher struct {
	g        *grid.Grid // the input grid; read-only within the search
	opts     Options    // configuration (context, caps, hook)
	dist     []int      // row-major cell index → best known hop count (inf if unreached)
	prev     []int      // row-major cell index → predecessor index (-1 if none)
	pq       cellPQ     // min-heap of *cellItem for the lazy frontier
	expanded int        // cells finalized so far
}

// newSearcher allocates distance and predecessor storage sized to g.
func newSearcher(g *grid.Grid, cfg Options) *searcher {
	n := g.Size()

	return &searcher{
		g:    g,
		opts: cfg,
		dist: make([]int, n),
		prev: make([]int, n),
		pq:   make(cellPQ, 0, n),
	}
}

// init seeds the distance and predecessor arrays and pushes the start
// cell at hop count zero.
func (s *searcher) init(start int) {
	for i := range s.dist {
		s.dist[i] = inf
		s.prev[i] = -1
	}
	s.dist[start] = 0
	heap.Init(&s.pq)
	heap.Push(&s.pq, &cellItem{idx: start, dist: 0})
}

// run drains the frontier until target is finalized, the frontier
// empties, an option limit trips, or the context is done.
// target == noTarget finalizes every reachable cell.
//
// Loop invariant: when a popped entry's hop count equals the recorded
// distance of its cell, that distance is final.
func (s *searcher) run(target int) (bool, error) {
	for s.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-s.opts.Ctx.Done():
			return false, s.opts.Ctx.Err()
		default:
		}

		// 1) Pop the smallest-hop-count entry from the frontier.
		item := heap.Pop(&s.pq).(*cellItem)
		u, d := item.idx, item.dist

		// 2) Skip stale entries: a duplicate pushed before a later
		//    improvement carries a larger hop count than the record.
		if d > s.dist[u] {
			continue
		}

		// 3) u is finalized at d.
		s.expanded++
		if s.opts.MaxExpansions > 0 && s.expanded > s.opts.MaxExpansions {
			return false, fmt.Errorf("%w: budget %d", ErrExpansionLimit, s.opts.MaxExpansions)
		}
		if err := s.opts.OnVisit(s.g.CellAt(u), d); err != nil {
			return false, fmt.Errorf("dijkstra: OnVisit error at %v: %w", s.g.CellAt(u), err)
		}

		// 4) Reaching the target ends the search; its distance is final.
		if u == target {
			return true, nil
		}

		// 5) Relax the four orthogonal neighbors of u.
		s.relax(u, d)
	}

	return false, nil
}

// relax attempts to improve each traversable 4-neighbor of u through
// u, recording the new distance and predecessor and pushing a frontier
// entry on strict improvement. Neighbor order is up, down, left, right.
func (s *searcher) relax(u, du int) {
	nd := du + 1
	if s.opts.MaxDistance > 0 && nd > s.opts.MaxDistance {
		return
	}
	for _, v := range s.g.Neighbors(s.g.CellAt(u)) {
		vi := s.g.Index(v)
		// Strictly better only: pushing equal-cost duplicates would
		// waste heap space without changing any result.
		if nd >= s.dist[vi] {
			continue
		}
		s.dist[vi] = nd
		s.prev[vi] = u
		heap.Push(&s.pq, &cellItem{idx: vi, dist: nd})
	}
}

// reconstruct walks predecessor links from goal back to start, then
// reverses the walk in place to yield start→goal order.
func (s *searcher) reconstruct(goal int) []grid.Cell {
	var path []grid.Cell
	for at := goal; at >= 0; at = s.prev[at] {
		path = append(path, s.g.CellAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// cellItem represents a cell and its hop count from the start at the
// moment it was pushed. Stored in the priority queue to order cells
// by increasing hop count.
type cellItem struct {
	idx  int // row-major cell index
	dist int // hop count from start when pushed
}

// cellPQ is a min-heap (priority queue) of *cellItem, ordered by dist
// ascending. Under “lazy-decrease-key”, improvements push new entries
// and outdated ones are recognized at pop time (dist > recorded).
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *cellItem.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
