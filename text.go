package maze

import (
	"strings"
)

// Segments used when printing a grid. Each cell takes four characters across
// and two lines down.
const (
	textCorner      = "+"
	textWestWall    = "|"
	textNorthOpen   = "   +"
	textNorthClosed = "---+"
	textEastOpen    = "    "
	textEastClosed  = "   |"
)

// Draws the grid using ASCII characters: 2 * height + 1 lines, each
// 4 * width + 1 characters long, with no trailing newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((2*g.height + 1) * (4*g.width + 2))
	for y := 0; y < g.height; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		b.WriteString(textCorner)
		for _, c := range row {
			if c.North {
				b.WriteString(textNorthOpen)
			} else {
				b.WriteString(textNorthClosed)
			}
		}
		b.WriteString("\n")
		b.WriteString(textWestWall)
		for _, c := range row {
			if c.East {
				b.WriteString(textEastOpen)
			} else {
				b.WriteString(textEastClosed)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(textCorner)
	b.WriteString(strings.Repeat(textNorthClosed, g.width))
	return b.String()
}
