package maze

import "fmt"

// Direction is one of the four sides of a cell.
type Direction uint8

// Directions. Rows grow southwards, columns grow eastwards.
const (
	North Direction = iota
	South
	East
	West
)

// Directions lists the four directions in their base order, before any
// shuffling.
var Directions = [4]Direction{North, South, East, West}

// String returns the single-letter name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case South:
		return "s"
	case East:
		return "e"
	case West:
		return "w"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the column and row offsets of a step in direction d.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

// Cell holds the set of open sides of one grid cell.
type Cell struct {
	open uint8
}

// IsOpen reports whether a passage leaves the cell in direction d.
func (c Cell) IsOpen(d Direction) bool { return c.open&(1<<d) != 0 }

// Visited reports whether the cell has at least one open side.
func (c Cell) Visited() bool { return c.open != 0 }

// OpenSides returns the open directions in base order.
func (c Cell) OpenSides() []Direction {
	var sides []Direction
	for _, d := range Directions {
		if c.IsOpen(d) {
			sides = append(sides, d)
		}
	}
	return sides
}

func (c *Cell) setOpen(d Direction) { c.open |= 1 << d }

// Grid is a Width×Height array of cells stored row by row.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// NewGrid returns a grid with every side closed. It panics on non-positive
// dimensions; use [Generate] for validated construction.
func NewGrid(width, height int) *Grid {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("maze: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// InBounds reports whether (c, r) addresses a cell of the grid.
func (g *Grid) InBounds(c, r int) bool {
	return c >= 0 && c < g.Width && r >= 0 && r < g.Height
}

// At returns the cell at column c and row r.
func (g *Grid) At(c, r int) Cell {
	return g.cells[r*g.Width+c]
}

// Neighbor returns the coordinates of the cell next to (c, r) in direction d.
// ok is false when that cell lies outside the grid.
func (g *Grid) Neighbor(c, r int, d Direction) (nc, nr int, ok bool) {
	dc, dr := d.Delta()
	nc, nr = c+dc, r+dr
	return nc, nr, g.InBounds(nc, nr)
}

// Connect opens the passage between (c, r) and its neighbor in direction d,
// on both sides. It returns false if either cell is out of bounds.
func (g *Grid) Connect(c, r int, d Direction) bool {
	if !g.InBounds(c, r) {
		return false
	}
	nc, nr, ok := g.Neighbor(c, r, d)
	if !ok {
		return false
	}
	g.cells[r*g.Width+c].setOpen(d)
	g.cells[nr*g.Width+nc].setOpen(d.Opposite())
	return true
}

// Passages counts the open connections between pairs of cells.
func (g *Grid) Passages() int {
	n := 0
	for r := range g.Height {
		for c := range g.Width {
			cell := g.At(c, r)
			if cell.IsOpen(East) {
				n++
			}
			if cell.IsOpen(South) {
				n++
			}
		}
	}
	return n
}

// Edge is one passage, always listed from the western or northern cell.
type Edge struct {
	C   int       `json:"c"`
	R   int       `json:"r"`
	Dir Direction `json:"dir"` // East or South
}

// Edges lists all passages in row-major order.
func (g *Grid) Edges() []Edge {
	edges := make([]Edge, 0, g.Width*g.Height)
	for r := range g.Height {
		for c := range g.Width {
			cell := g.At(c, r)
			if cell.IsOpen(East) {
				edges = append(edges, Edge{C: c, R: r, Dir: East})
			}
			if cell.IsOpen(South) {
				edges = append(edges, Edge{C: c, R: r, Dir: South})
			}
		}
	}
	return edges
}
