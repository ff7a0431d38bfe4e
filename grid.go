// This defines a library for generating 2D mazes one step at a time. Every
// step produces an immutable Grid snapshot, which can be printed as text or
// rasterized into a frame of an animation.
package maze

import (
	"errors"
	"fmt"
	"sort"
)

// Returned when a width or height is less than 1, or the cell count would
// overflow.
var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// One of the four directions a passage may lead from a cell.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Unknown direction: %d", uint8(d))
}

// A single cell of the grid. Only the north and east walls are stored; the
// south wall of a cell is the north wall of the cell below it, and the west
// wall is the east wall of the cell to its left. Each field is true if the
// wall has been opened.
type Cell struct {
	North bool
	East  bool
}

// Returns the index of the neighbor of cell i in the given direction, and
// whether that neighbor exists at all. The east and west checks use the
// column so that the last cell of a row never wraps to the next one.
func neighbor(i, w, h int, d Direction) (int, bool) {
	switch d {
	case North:
		return i - w, i >= w
	case East:
		return i + 1, ((i + 1) % w) != 0
	case South:
		return i + w, (i + w) < (w * h)
	case West:
		return i - 1, (i % w) != 0
	}
	return -1, false
}

// Returns the directions in which cell i has a neighbor, in north, east,
// south, west order.
func neighbors(i, w, h int) []Direction {
	toReturn := make([]Direction, 0, 4)
	for d := North; d <= West; d++ {
		if _, ok := neighbor(i, w, h, d); ok {
			toReturn = append(toReturn, d)
		}
	}
	return toReturn
}

// Opens the wall between cell i and its neighbor in direction d, writing the
// flag to whichever of the two cells owns it. The caller must have checked
// that the neighbor exists.
func carve(cells []Cell, w, i int, d Direction) {
	switch d {
	case North:
		cells[i].North = true
	case East:
		cells[i].East = true
	case South:
		cells[i+w].North = true
	case West:
		cells[i-1].East = true
	}
}

// Returns an error if a grid of the given size can't be allocated.
func checkDimensions(width, height int) error {
	if (width < 1) || (height < 1) {
		return fmt.Errorf("%w: width and height must be at least 1, got "+
			"%dx%d", ErrInvalidDimensions, width, height)
	}
	cellCount := width * height
	if (cellCount <= 0) || ((cellCount / width) != height) {
		return fmt.Errorf("%w: the maze's size was too big",
			ErrInvalidDimensions)
	}
	return nil
}

// An immutable snapshot of a maze at one step of its generation. Create these
// using a Generator; the zero value is not useful.
type Grid struct {
	width  int
	height int
	cells  []Cell
	// The cell the generator was looking at. May be width * height on the
	// final snapshot of the row-scanning algorithms, meaning "no cell".
	current    int
	highlights map[int]bool
}

// Copies the given cells and highlights into a new Grid.
func newGrid(width, height int, cells []Cell, current int,
	highlights []int) *Grid {
	toReturn := &Grid{
		width:      width,
		height:     height,
		cells:      make([]Cell, len(cells)),
		current:    current,
		highlights: make(map[int]bool, len(highlights)),
	}
	copy(toReturn.cells, cells)
	for _, h := range highlights {
		toReturn.highlights[h] = true
	}
	return toReturn
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Returns the number of cells in the grid.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Returns the cell at the given column and row. Panics if out of range.
func (g *Grid) Cell(x, y int) Cell {
	if (x < 0) || (y < 0) || (x >= g.width) || (y >= g.height) {
		panic(fmt.Sprintf("Cell (%d, %d) is outside a %dx%d grid", x, y,
			g.width, g.height))
	}
	return g.cells[y*g.width+x]
}

// Returns the cell at the given row-major index.
func (g *Grid) CellAtIndex(i int) Cell {
	return g.cells[i]
}

// Returns the index of the cell being processed when this snapshot was taken.
// Use HasCurrent to check whether it refers to a cell at all.
func (g *Grid) Current() int {
	return g.current
}

// Returns false if the current index is past the end of the grid, which
// happens on the last snapshot of a row-by-row generator.
func (g *Grid) HasCurrent() bool {
	return (g.current >= 0) && (g.current < len(g.cells))
}

// Returns a sorted copy of the highlighted cell indices.
func (g *Grid) Highlights() []int {
	toReturn := make([]int, 0, len(g.highlights))
	for i := range g.highlights {
		toReturn = append(toReturn, i)
	}
	sort.Ints(toReturn)
	return toReturn
}

func (g *Grid) IsHighlighted(i int) bool {
	return g.highlights[i]
}

// Returns true if there is a passage from cell i in the given direction.
// Always false for a direction leading out of the grid.
func (g *Grid) IsOpen(i int, d Direction) bool {
	n, ok := neighbor(i, g.width, g.height, d)
	if !ok {
		return false
	}
	switch d {
	case North:
		return g.cells[i].North
	case East:
		return g.cells[i].East
	case South:
		return g.cells[n].North
	case West:
		return g.cells[n].East
	}
	return false
}

// Returns the number of open walls between two cells. Flags that point out
// of the grid are not counted.
func (g *Grid) PassageCount() int {
	count := 0
	for i := range g.cells {
		if g.IsOpen(i, North) {
			count++
		}
		if g.IsOpen(i, East) {
			count++
		}
	}
	return count
}

// Implements the disjoint set data structure from CLRS.
type disjointSet struct {
	parent *disjointSet
	rank   int
}

// Returns a new disjointSet containing only itself.
func newDisjointSet() *disjointSet {
	toReturn := disjointSet{
		rank: 0,
	}
	toReturn.parent = &toReturn
	return &toReturn
}

// Finds the unique "root" of a disjoint set. May adjust parent pointers.
func (s *disjointSet) findSet() *disjointSet {
	if s != s.parent {
		s.parent = s.parent.findSet()
	}
	return s.parent
}

// Adjusts both s and other to become part of the same set. May adjust parent
// pointers and ranks.
func (s *disjointSet) union(other *disjointSet) {
	x := s.findSet()
	y := other.findSet()
	if x.rank > y.rank {
		y.parent = x
		return
	}
	x.parent = y
	if x.rank == y.rank {
		y.rank++
	}
}

// Returns true if the grid's passages form a spanning tree: every cell is
// reachable from every other, and there are no loops. Also rejects flags that
// open a wall to the outside of the grid.
func (g *Grid) IsPerfect() bool {
	sets := make([]*disjointSet, len(g.cells))
	for i := range sets {
		sets[i] = newDisjointSet()
	}
	joined := 0
	for i, c := range g.cells {
		if c.North {
			if !g.IsOpen(i, North) {
				return false
			}
			if !joinCells(sets, i, i-g.width) {
				return false
			}
			joined++
		}
		if c.East {
			if !g.IsOpen(i, East) {
				return false
			}
			if !joinCells(sets, i, i+1) {
				return false
			}
			joined++
		}
	}
	// A forest with no loops and n - 1 edges is a single tree.
	return joined == (len(g.cells) - 1)
}

// Unions the sets of cells a and b. Returns false if they were already in the
// same set, meaning the passage would close a loop.
func joinCells(sets []*disjointSet, a, b int) bool {
	if sets[a].findSet() == sets[b].findSet() {
		return false
	}
	sets[a].union(sets[b])
	return true
}
