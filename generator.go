package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Returned by ParseAlgorithm and NewGenerator for an unsupported algorithm.
var ErrUnknownAlgorithm = errors.New("unknown maze algorithm")

// All of the step-by-step maze generators satisfy this interface.
type Generator interface {
	// Returns the next snapshot of the maze, or nil and false once the maze
	// is finished. The first snapshot always has every wall closed. Once
	// Next has returned false it will keep doing so.
	Next() (*Grid, bool)
	// Returns a human-readable string about the generator, for providing
	// debug info such as the random seed and the number of steps so far.
	GetInfo() string
}

// Selects one of the supported generation algorithms.
type Algorithm uint8

const (
	BinaryTree Algorithm = iota
	Sidewinder
	AldousBroder
)

func (a Algorithm) String() string {
	switch a {
	case BinaryTree:
		return "binary_tree"
	case Sidewinder:
		return "sidewinder"
	case AldousBroder:
		return "aldous_broder"
	}
	return fmt.Sprintf("Unknown algorithm: %d", uint8(a))
}

// Returns the names accepted by ParseAlgorithm, not including aliases.
func AlgorithmNames() []string {
	return []string{BinaryTree.String(), Sidewinder.String(),
		AldousBroder.String()}
}

// Converts a name such as "sidewinder" to an Algorithm. Case and surrounding
// whitespace are ignored, and "-" may be used in place of "_".
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	switch n {
	case "binary_tree", "bintree", "binarytree":
		return BinaryTree, nil
	case "sidewinder":
		return Sidewinder, nil
	case "aldous_broder", "aldousbroder":
		return AldousBroder, nil
	}
	return 0, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownAlgorithm,
		name, strings.Join(AlgorithmNames(), ", "))
}

// Creates a generator using the given algorithm. If the seed is not
// positive, a new seed will be selected based on the current time in
// nanoseconds.
func NewGenerator(a Algorithm, width, height int, seed int64) (Generator,
	error) {
	var toReturn Generator
	var e error
	switch a {
	case BinaryTree:
		toReturn, e = NewBinaryTreeGenerator(width, height, seed)
	case Sidewinder:
		toReturn, e = NewSidewinderGenerator(width, height, seed)
	case AldousBroder:
		toReturn, e = NewAldousBroderGenerator(width, height, seed)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
	if e != nil {
		return nil, e
	}
	return toReturn, nil
}

// Holds the state shared by every generator: the in-progress cells, which
// only the generator modifies, and the generator's own RNG.
type carver struct {
	algorithm Algorithm
	width     int
	height    int
	cells     []Cell
	rng       *rand.Rand
	// The seed that was used to create the RNG.
	randomSeed int64
	// The number of snapshots returned so far.
	steps int
	done  bool
}

// Allocates the cells, with every wall closed, and seeds the RNG.
func newCarver(a Algorithm, width, height int, seed int64) (*carver, error) {
	e := checkDimensions(width, height)
	if e != nil {
		return nil, e
	}
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &carver{
		algorithm:  a,
		width:      width,
		height:     height,
		cells:      make([]Cell, width*height),
		rng:        rand.New(rand.NewSource(seed)),
		randomSeed: seed,
	}, nil
}

// Copies the working cells into a new snapshot and counts the step.
func (c *carver) snapshot(current int, highlights []int) (*Grid, bool) {
	c.steps++
	return newGrid(c.width, c.height, c.cells, current, highlights), true
}

// Marks the generator as finished.
func (c *carver) finish() (*Grid, bool) {
	c.done = true
	return nil, false
}

// Returns true with probability 1/2.
func (c *carver) coinFlip() bool {
	return c.rng.Intn(2) == 0
}

// Returns the seed used by the generator's RNG.
func (c *carver) Seed() int64 {
	return c.randomSeed
}

func (c *carver) GetInfo() string {
	state := "in progress"
	if c.done {
		state = "finished"
	}
	return fmt.Sprintf("%dx%d %s maze with random seed %d, %d steps (%s)",
		c.width, c.height, c.algorithm, c.randomSeed, c.steps, state)
}

// Pulls every snapshot from the generator, in order.
func Collect(g Generator) []*Grid {
	var toReturn []*Grid
	for {
		grid, ok := g.Next()
		if !ok {
			return toReturn
		}
		toReturn = append(toReturn, grid)
	}
}

// Runs the generator to completion, returning only the finished maze.
func Last(g Generator) *Grid {
	var toReturn *Grid
	for {
		grid, ok := g.Next()
		if !ok {
			return toReturn
		}
		toReturn = grid
	}
}

// Like Collect, but only keeps every n-th snapshot, starting with the first.
// The finished maze is always kept, even if it doesn't fall on a multiple of
// n. An n less than 2 keeps everything.
func Sample(g Generator, every int) []*Grid {
	if every < 2 {
		return Collect(g)
	}
	var toReturn []*Grid
	var last *Grid
	keptLast := false
	for i := 0; ; i++ {
		grid, ok := g.Next()
		if !ok {
			break
		}
		last = grid
		keptLast = (i % every) == 0
		if keptLast {
			toReturn = append(toReturn, grid)
		}
	}
	if (last != nil) && !keptLast {
		toReturn = append(toReturn, last)
	}
	return toReturn
}
