package maze

import (
	"image"
	"image/color"
)

const (
	// Blank space around the maze, in pixels.
	paddingPixels = 20
	// The thickness of a wall.
	borderPixels = 2
	// The width and height of the open part of a cell.
	cellPixels = 10
	// The distance from one cell's west wall to the next cell's west wall.
	cellPitch = cellPixels + borderPixels
)

// Indices into Palette.
const (
	WallColorIndex uint8 = iota
	BackgroundColorIndex
	CurrentColorIndex
	HighlightColorIndex
)

// The fixed four-color palette used by every rasterized frame.
var Palette = color.Palette{
	color.Black,
	color.White,
	color.RGBA{R: 230, G: 20, B: 20, A: 255},
	color.RGBA{R: 100, G: 120, B: 255, A: 255},
}

// Returns the size, in pixels, of the image Rasterize produces for a grid
// with the given number of cells across and down.
func RasterSize(cellsWide, cellsHigh int) (int, int) {
	w := 2*paddingPixels + borderPixels + cellPitch*cellsWide
	h := 2*paddingPixels + borderPixels + cellPitch*cellsHigh
	return w, h
}

// Sets every pixel in the w x h rectangle with the top-left corner at (x, y).
func fillRect(pic *image.Paletted, x, y, w, h int, index uint8) {
	for row := y; row < (y + h); row++ {
		start := pic.PixOffset(x, row)
		for i := 0; i < w; i++ {
			pic.Pix[start+i] = index
		}
	}
}

// Draws the grid into a new paletted image using Palette. Highlighted cells
// and the current cell are filled before any walls are drawn, so walls stay
// visible on top of them. The same grid always produces the same pixels.
func Rasterize(g *Grid) *image.Paletted {
	w, h := RasterSize(g.width, g.height)
	pic := image.NewPaletted(image.Rect(0, 0, w, h), Palette)
	fillRect(pic, 0, 0, w, h, BackgroundColorIndex)

	// The fill covers the cell along with its east and south wall slots, so
	// open passages out of a filled cell take its color too.
	for i := range g.cells {
		if !g.highlights[i] {
			continue
		}
		x, y := cellOrigin(g, i)
		fillRect(pic, x, y, cellPitch, cellPitch, HighlightColorIndex)
	}
	if g.HasCurrent() {
		x, y := cellOrigin(g, g.current)
		fillRect(pic, x, y, cellPitch, cellPitch, CurrentColorIndex)
	}

	mazeHeight := cellPitch * g.height
	mazeWidth := cellPitch * g.width
	// West edge of the maze.
	fillRect(pic, paddingPixels, paddingPixels, borderPixels, mazeHeight,
		WallColorIndex)
	for i, c := range g.cells {
		// (left, top) is the top-left corner of the cell's west wall slot.
		left := paddingPixels + (i%g.width)*cellPitch
		top := paddingPixels + (i/g.width)*cellPitch
		if !c.North {
			fillRect(pic, left+borderPixels, top, cellPitch, borderPixels,
				WallColorIndex)
		}
		if !c.East {
			fillRect(pic, left+cellPitch, top, borderPixels, cellPitch,
				WallColorIndex)
		}
		// The post at the top-right corner is drawn even with both walls
		// open.
		fillRect(pic, left+cellPitch, top, borderPixels, borderPixels,
			WallColorIndex)
	}
	// South edge of the maze.
	fillRect(pic, paddingPixels, paddingPixels+mazeHeight,
		mazeWidth+borderPixels, borderPixels, WallColorIndex)
	return pic
}

// Returns the top-left pixel of the open part of cell i.
func cellOrigin(g *Grid, i int) (int, int) {
	x := paddingPixels + borderPixels + (i%g.width)*cellPitch
	y := paddingPixels + borderPixels + (i/g.width)*cellPitch
	return x, y
}

// Rasterizes each of the grids, in order.
func RasterizeAll(grids []*Grid) []*image.Paletted {
	toReturn := make([]*image.Paletted, len(grids))
	for i, g := range grids {
		toReturn[i] = Rasterize(g)
	}
	return toReturn
}
