package stroke

import (
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// Polyline is a connected run of lattice points. Consecutive points are one
// unit apart and every polyline has at least two points.
type Polyline []walls.Point

// Segments returns the unit segments the polyline covers, in drawing order.
func (p Polyline) Segments() []walls.Segment {
	if len(p) < 2 {
		return nil
	}
	segs := make([]walls.Segment, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		segs = append(segs, walls.NewSegment(p[i-1], p[i]))
	}
	return segs
}

// First returns the leading point.
func (p Polyline) First() walls.Point { return p[0] }

// Last returns the trailing point.
func (p Polyline) Last() walls.Point { return p[len(p)-1] }

// Content flattens lines back into their unit segments.
func Content(lines []Polyline) []walls.Segment {
	n := 0
	for _, l := range lines {
		n += max(len(l)-1, 0)
	}
	segs := make([]walls.Segment, 0, n)
	for _, l := range lines {
		segs = append(segs, l.Segments()...)
	}
	return segs
}

// Points counts the points of all lines, which is the number of pen moves
// needed to draw them.
func Points(lines []Polyline) int {
	n := 0
	for _, l := range lines {
		n += len(l)
	}
	return n
}
