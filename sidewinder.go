package maze

// Carves a maze row by row, collecting horizontal "runs" of cells joined to
// the east. When a run is closed, one random member of it is joined to the
// row above. Create using NewSidewinderGenerator.
type SidewinderGenerator struct {
	*carver
	// The next cell to process, or -1 before the first snapshot.
	index int
	// Indices of the cells in the run being built, west to east.
	currentRun []int
}

// Returns a sidewinder generator for a maze of the given size. The seed is
// handled the same way as in NewGenerator.
func NewSidewinderGenerator(width, height int, seed int64) (
	*SidewinderGenerator, error) {
	c, e := newCarver(Sidewinder, width, height, seed)
	if e != nil {
		return nil, e
	}
	return &SidewinderGenerator{
		carver:     c,
		index:      -1,
		currentRun: make([]int, 0, width),
	}, nil
}

// Ends the current run. If openNorth is set, a randomly chosen member of the
// run gets a passage to the north.
func (g *SidewinderGenerator) closeRun(openNorth bool) {
	member := g.currentRun[g.rng.Intn(len(g.currentRun))]
	if openNorth {
		carve(g.cells, g.width, member, North)
	}
	g.currentRun = g.currentRun[:0]
}

func (g *SidewinderGenerator) Next() (*Grid, bool) {
	if g.done {
		return nil, false
	}
	if g.index < 0 {
		g.index = 0
		return g.snapshot(0, nil)
	}
	i := g.index
	if i >= len(g.cells) {
		return g.finish()
	}
	g.currentRun = append(g.currentRun, i)
	_, hasNorth := neighbor(i, g.width, g.height, North)
	_, hasEast := neighbor(i, g.width, g.height, East)
	switch {
	case !hasNorth && !hasEast:
		// End of the first row: nothing above to join to.
		g.closeRun(false)
	case hasNorth && !hasEast:
		g.closeRun(true)
	case !hasNorth && hasEast:
		carve(g.cells, g.width, i, East)
	default:
		if g.coinFlip() {
			g.closeRun(true)
		} else {
			carve(g.cells, g.width, i, East)
		}
	}
	g.index = i + 1
	return g.snapshot(i+1, g.currentRun)
}
