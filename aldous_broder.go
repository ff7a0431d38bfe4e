package maze

// Carves a uniform spanning tree by walking randomly from cell to cell, only
// opening a wall when the walk enters a cell for the first time. The walk can
// take a very long time to cover large grids. Create using
// NewAldousBroderGenerator.
type AldousBroderGenerator struct {
	*carver
	// The walk's position, or -1 before the first snapshot.
	index   int
	visited []bool
	// The number of true entries in visited.
	visitedCount int
}

// Returns an Aldous-Broder generator for a maze of the given size. The seed
// is handled the same way as in NewGenerator.
func NewAldousBroderGenerator(width, height int, seed int64) (
	*AldousBroderGenerator, error) {
	c, e := newCarver(AldousBroder, width, height, seed)
	if e != nil {
		return nil, e
	}
	return &AldousBroderGenerator{
		carver:  c,
		index:   -1,
		visited: make([]bool, width*height),
	}, nil
}

// Returns the number of cells the walk has visited so far.
func (g *AldousBroderGenerator) Visited() int {
	return g.visitedCount
}

func (g *AldousBroderGenerator) Next() (*Grid, bool) {
	if g.done {
		return nil, false
	}
	if g.index < 0 {
		g.index = g.rng.Intn(len(g.cells))
		return g.snapshot(g.index, nil)
	}
	if g.visitedCount == len(g.cells) {
		return g.finish()
	}
	i := g.index
	if !g.visited[i] {
		g.visited[i] = true
		g.visitedCount++
	}
	dirs := neighbors(i, g.width, g.height)
	if len(dirs) == 0 {
		// A 1x1 grid: the walk stays put for one step, visiting the cell.
		return g.snapshot(i, nil)
	}
	d := dirs[g.rng.Intn(len(dirs))]
	next, _ := neighbor(i, g.width, g.height, d)
	if !g.visited[next] {
		carve(g.cells, g.width, i, d)
	}
	g.index = next
	return g.snapshot(next, nil)
}
