package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSizes = []struct {
	width  int
	height int
}{
	{1, 1},
	{2, 1},
	{1, 2},
	{7, 1},
	{1, 7},
	{3, 3},
	{5, 3},
	{8, 8},
}

// Fails the test if any cell in the grid has a flag pointing out of the
// grid.
func assertNoWallsToNowhere(t *testing.T, g *Grid) {
	for i := 0; i < g.Size(); i++ {
		c := g.CellAtIndex(i)
		if i < g.Width() {
			assert.False(t, c.North, "row 0 cell %d opened north", i)
		}
		if ((i + 1) % g.Width()) == 0 {
			assert.False(t, c.East, "rightmost cell %d opened east", i)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range []Algorithm{BinaryTree, Sidewinder, AldousBroder} {
		parsed, e := ParseAlgorithm(a.String())
		require.NoError(t, e)
		assert.Equal(t, a, parsed)
	}
	parsed, e := ParseAlgorithm(" Aldous-Broder ")
	require.NoError(t, e)
	assert.Equal(t, AldousBroder, parsed)
	parsed, e = ParseAlgorithm("bintree")
	require.NoError(t, e)
	assert.Equal(t, BinaryTree, parsed)

	_, e = ParseAlgorithm("wilson")
	assert.ErrorIs(t, e, ErrUnknownAlgorithm)
}

func TestNewGeneratorRejectsBadInput(t *testing.T) {
	for _, a := range []Algorithm{BinaryTree, Sidewinder, AldousBroder} {
		_, e := NewGenerator(a, 0, 4, 1)
		assert.ErrorIs(t, e, ErrInvalidDimensions)
		_, e = NewGenerator(a, 4, -2, 1)
		assert.ErrorIs(t, e, ErrInvalidDimensions)
	}
	_, e := NewGenerator(Algorithm(42), 4, 4, 1)
	assert.ErrorIs(t, e, ErrUnknownAlgorithm)
}

func TestGeneratorsProducePerfectMazes(t *testing.T) {
	for _, a := range []Algorithm{BinaryTree, Sidewinder, AldousBroder} {
		for _, size := range testSizes {
			for seed := int64(1); seed <= 5; seed++ {
				name := fmt.Sprintf("%s/%dx%d/%d", a, size.width, size.height,
					seed)
				t.Run(name, func(t *testing.T) {
					g, e := NewGenerator(a, size.width, size.height, seed)
					require.NoError(t, e)
					grids := Collect(g)
					require.NotEmpty(t, grids)

					first := grids[0]
					assert.Equal(t, 0, first.PassageCount())
					for _, grid := range grids {
						assertNoWallsToNowhere(t, grid)
					}
					final := grids[len(grids)-1]
					assert.True(t, final.IsPerfect())
					assert.Equal(t, size.width*size.height-1,
						final.PassageCount())
				})
			}
		}
	}
}

func TestRowScanningStepCount(t *testing.T) {
	for _, a := range []Algorithm{BinaryTree, Sidewinder} {
		for _, size := range testSizes {
			g, e := NewGenerator(a, size.width, size.height, 99)
			require.NoError(t, e)
			grids := Collect(g)
			assert.Len(t, grids, size.width*size.height+1, "%s %dx%d", a,
				size.width, size.height)
			for i, grid := range grids {
				assert.Equal(t, i, grid.Current())
			}
		}
	}
}

func TestGeneratorStaysFinished(t *testing.T) {
	g, e := NewBinaryTreeGenerator(3, 2, 5)
	require.NoError(t, e)
	Collect(g)
	grid, ok := g.Next()
	assert.False(t, ok)
	assert.Nil(t, grid)
	assert.Contains(t, g.GetInfo(), "finished")
	assert.Contains(t, g.GetInfo(), "3x2 binary_tree maze with random seed 5")
}

func TestSameSeedSameMaze(t *testing.T) {
	for _, a := range []Algorithm{BinaryTree, Sidewinder, AldousBroder} {
		g1, e := NewGenerator(a, 6, 4, 1234)
		require.NoError(t, e)
		g2, e := NewGenerator(a, 6, 4, 1234)
		require.NoError(t, e)
		assert.Equal(t, Last(g1).String(), Last(g2).String(), "%s", a)
	}
}

func TestNonPositiveSeedIsReplaced(t *testing.T) {
	g, e := NewSidewinderGenerator(2, 2, 0)
	require.NoError(t, e)
	assert.Positive(t, g.Seed())
}

func TestBinaryTreeTwoByOne(t *testing.T) {
	g, e := NewBinaryTreeGenerator(2, 1, 7)
	require.NoError(t, e)
	final := Last(g)
	assert.Equal(t, Cell{East: true}, final.CellAtIndex(0))
	assert.Equal(t, Cell{}, final.CellAtIndex(1))
}

func TestSingleCell(t *testing.T) {
	for _, a := range []Algorithm{BinaryTree, Sidewinder} {
		g, e := NewGenerator(a, 1, 1, 3)
		require.NoError(t, e)
		grids := Collect(g)
		require.Len(t, grids, 2)
		assert.Equal(t, Cell{}, grids[1].CellAtIndex(0))
		assert.Equal(t, 0, grids[1].PassageCount())
	}
	// The walk has nowhere to go, so it spends one step visiting the cell.
	g, e := NewAldousBroderGenerator(1, 1, 3)
	require.NoError(t, e)
	grids := Collect(g)
	require.Len(t, grids, 2)
	assert.Equal(t, 0, grids[1].Current())
	assert.Equal(t, Cell{}, grids[1].CellAtIndex(0))
	assert.Equal(t, 1, g.Visited())
}

func TestBinaryTreeOpensExactlyOneWall(t *testing.T) {
	g, e := NewBinaryTreeGenerator(6, 6, 21)
	require.NoError(t, e)
	final := Last(g)
	for i := 0; i < final.Size(); i++ {
		c := final.CellAtIndex(i)
		if i == 5 {
			// The top-right corner can't open either wall.
			assert.Equal(t, Cell{}, c)
			continue
		}
		assert.True(t, c.North != c.East, "cell %d: %+v", i, c)
	}
}

func TestSidewinderFirstRowIsOneCorridor(t *testing.T) {
	g, e := NewSidewinderGenerator(5, 4, 8)
	require.NoError(t, e)
	final := Last(g)
	for x := 0; x < 4; x++ {
		assert.True(t, final.Cell(x, 0).East)
	}
}

func TestSidewinderHighlightsRun(t *testing.T) {
	g, e := NewSidewinderGenerator(6, 5, 77)
	require.NoError(t, e)
	grids := Collect(g)
	assert.Empty(t, grids[0].Highlights())
	for i, grid := range grids[1:] {
		processed := i
		run := grid.Highlights()
		if len(run) == 0 {
			continue
		}
		// The run is a contiguous stretch of one row ending at the cell that
		// was just processed.
		assert.Equal(t, processed, run[len(run)-1])
		for j := 1; j < len(run); j++ {
			assert.Equal(t, run[j-1]+1, run[j])
		}
		assert.Equal(t, run[0]/6, processed/6)
		// Every run member but the last is joined to its east neighbor.
		for _, member := range run[:len(run)-1] {
			assert.True(t, grid.CellAtIndex(member).East)
		}
	}
	// The last cell of every row always closes the run.
	assert.Empty(t, grids[len(grids)-1].Highlights())
}

func TestAldousBroderVisitedCount(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		g, e := NewAldousBroderGenerator(4, 3, seed)
		require.NoError(t, e)
		visitedAtLast := -1
		steps := 0
		for {
			grid, ok := g.Next()
			if !ok {
				break
			}
			steps++
			assert.True(t, grid.HasCurrent())
			assert.Empty(t, grid.Highlights())
			assert.GreaterOrEqual(t, g.Visited(), visitedAtLast)
			assert.LessOrEqual(t, g.Visited(), 12)
			visitedAtLast = g.Visited()
		}
		// The last snapshot handed out already has every cell visited.
		assert.Equal(t, 12, visitedAtLast, "seed %d", seed)
		assert.Equal(t, 12, g.Visited())
		// The initial snapshot, one carving step per other cell, and the
		// step that visits the final cell.
		assert.GreaterOrEqual(t, steps, 13)
	}
}

func TestAldousBroderSingleRow(t *testing.T) {
	g, e := NewAldousBroderGenerator(2, 1, 9)
	require.NoError(t, e)
	grids := Collect(g)
	// Start, the move that carves the only passage, and the step that visits
	// the second cell.
	require.Len(t, grids, 3)
	assert.Equal(t, 2, g.Visited())
	assert.Equal(t, Cell{East: true}, grids[2].CellAtIndex(0))
	assert.Equal(t, grids[0].Current(), grids[2].Current())
}

func TestAldousBroderMovesToNeighbors(t *testing.T) {
	g, e := NewAldousBroderGenerator(6, 6, 3)
	require.NoError(t, e)
	grids := Collect(g)
	for i := 1; i < len(grids); i++ {
		from := grids[i-1].Current()
		to := grids[i].Current()
		adjacent := false
		for _, d := range neighbors(from, 6, 6) {
			n, _ := neighbor(from, 6, 6, d)
			if n == to {
				adjacent = true
			}
		}
		assert.True(t, adjacent, "step %d jumped from %d to %d", i, from, to)
		// A step carves at most one wall.
		added := grids[i].PassageCount() - grids[i-1].PassageCount()
		assert.Contains(t, []int{0, 1}, added)
	}
}

func TestLastAndSample(t *testing.T) {
	g, e := NewBinaryTreeGenerator(4, 3, 2)
	require.NoError(t, e)
	all := Collect(g)
	require.Len(t, all, 13)

	g, e = NewBinaryTreeGenerator(4, 3, 2)
	require.NoError(t, e)
	assert.Equal(t, all[12].String(), Last(g).String())

	g, e = NewBinaryTreeGenerator(4, 3, 2)
	require.NoError(t, e)
	sampled := Sample(g, 5)
	// Steps 0, 5 and 10, then the final maze at step 12.
	require.Len(t, sampled, 4)
	assert.Equal(t, 0, sampled[0].Current())
	assert.Equal(t, 5, sampled[1].Current())
	assert.Equal(t, 10, sampled[2].Current())
	assert.Equal(t, 12, sampled[3].Current())

	g, e = NewBinaryTreeGenerator(4, 3, 2)
	require.NoError(t, e)
	// 13 snapshots with a step of 4 ends on a kept snapshot.
	sampled = Sample(g, 4)
	require.Len(t, sampled, 4)
	assert.Equal(t, 12, sampled[3].Current())

	g, e = NewBinaryTreeGenerator(4, 3, 2)
	require.NoError(t, e)
	assert.Len(t, Sample(g, 1), 13)
}
