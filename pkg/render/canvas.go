package render

import (
	"github.com/matzehuels/mazestroke/pkg/stroke"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// Canvas is a pen plotter. Moves with the pen down leave a line.
type Canvas interface {
	PenUp()
	PenDown()
	MoveTo(x, y float64)
}

// Draw traces lines on c in order, lifting the pen between polylines.
func Draw(c Canvas, f Frame, lines []stroke.Polyline) {
	for _, l := range lines {
		c.PenUp()
		for i, p := range l {
			x, y := f.Place(p)
			c.MoveTo(x, y)
			if i == 0 {
				c.PenDown()
			}
		}
	}
}

// DrawPath traces the center line of a route through cells, entering from
// the west border and leaving through the east border.
func DrawPath(c Canvas, f Frame, cells []walls.Cell) {
	if len(cells) == 0 {
		return
	}
	c.PenUp()
	first := cells[0]
	x, y := f.At(float64(first.C), float64(first.R)+0.5)
	c.MoveTo(x, y)
	c.PenDown()
	for _, cell := range cells {
		x, y := f.At(float64(cell.C)+0.5, float64(cell.R)+0.5)
		c.MoveTo(x, y)
	}
	last := cells[len(cells)-1]
	x, y = f.At(float64(last.C)+1, float64(last.R)+0.5)
	c.MoveTo(x, y)
}

// Move is one recorded pen movement.
type Move struct {
	X, Y float64
	Down bool
}

// Recorder is a [Canvas] that keeps every move. It is useful for previews
// and for checking what a sink would draw.
type Recorder struct {
	Moves []Move
	down  bool
}

// PenUp lifts the pen.
func (r *Recorder) PenUp() { r.down = false }

// PenDown lowers the pen.
func (r *Recorder) PenDown() { r.down = true }

// MoveTo records a move with the current pen state.
func (r *Recorder) MoveTo(x, y float64) {
	r.Moves = append(r.Moves, Move{X: x, Y: y, Down: r.down})
}

// Strokes returns the number of visible line pieces drawn.
func (r *Recorder) Strokes() int {
	n := 0
	for _, m := range r.Moves {
		if m.Down {
			n++
		}
	}
	return n
}
