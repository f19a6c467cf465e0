package grid

// Components finds all maximal 4-connected regions of traversable
// cells. Regions appear in row-major discovery order; each region
// lists its cells in BFS order from the region's first cell.
//
// Two cells can be joined by a path if and only if they share a
// region.
//
// Time:   O(rows×cols).
// Memory: O(rows×cols) for seen flags and output.
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, g.Size())
	var comps [][]Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			c0 := Cell{Row: r, Col: c}
			if !g.Traversable(c0) || seen[g.Index(c0)] {
				continue
			}
			// BFS to collect the region
			queue := []Cell{c0}
			seen[g.Index(c0)] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				for _, v := range g.Neighbors(u) {
					if vi := g.Index(v); !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
