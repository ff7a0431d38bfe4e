package maze

// Carves a maze one cell at a time in row-major order, opening either the
// north or the east wall of each cell. Create using NewBinaryTreeGenerator.
type BinaryTreeGenerator struct {
	*carver
	// The next cell to process, or -1 before the first snapshot.
	index int
}

// Returns a binary tree generator for a maze of the given size. The seed is
// handled the same way as in NewGenerator.
func NewBinaryTreeGenerator(width, height int, seed int64) (
	*BinaryTreeGenerator, error) {
	c, e := newCarver(BinaryTree, width, height, seed)
	if e != nil {
		return nil, e
	}
	return &BinaryTreeGenerator{
		carver: c,
		index:  -1,
	}, nil
}

func (g *BinaryTreeGenerator) Next() (*Grid, bool) {
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
	_, hasNorth := neighbor(i, g.width, g.height, North)
	_, hasEast := neighbor(i, g.width, g.height, East)
	switch {
	case hasNorth && hasEast:
		if g.coinFlip() {
			carve(g.cells, g.width, i, North)
		} else {
			carve(g.cells, g.width, i, East)
		}
	case hasNorth:
		carve(g.cells, g.width, i, North)
	case hasEast:
		carve(g.cells, g.width, i, East)
	}
	// The top-right corner has neither neighbor, so it's left alone.
	g.index = i + 1
	return g.snapshot(i+1, nil)
}
