package walls

import (
	"cmp"
	"fmt"
)

// Point is a corner of the wall lattice.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Compare orders points by X, then Y.
func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// Segment is a unit wall between two adjacent lattice points. A is always
// the smaller point, so equal walls compare equal as values.
type Segment struct {
	A, B Point
}

// NewSegment returns the canonical segment joining p and q.
func NewSegment(p, q Point) Segment {
	if q.Compare(p) < 0 {
		p, q = q, p
	}
	return Segment{A: p, B: q}
}

// Horizontal reports whether the segment runs along the x axis.
func (s Segment) Horizontal() bool { return s.A.Y == s.B.Y }

// Compare orders segments by A, then B.
func (s Segment) Compare(o Segment) int {
	if c := s.A.Compare(o.A); c != 0 {
		return c
	}
	return s.B.Compare(o.B)
}

// String formats the segment as "(x,y)-(x,y)".
func (s Segment) String() string { return s.A.String() + "-" + s.B.String() }

// Entrance returns the west border segment at row height/2 that is left open.
func Entrance(width, height int) Segment {
	return NewSegment(Point{0, height / 2}, Point{0, height/2 + 1})
}

// Exit returns the east border segment at row height/2 that is left open.
func Exit(width, height int) Segment {
	return NewSegment(Point{width, height / 2}, Point{width, height/2 + 1})
}

// ExpectedCount returns the number of segments [Extract] yields for any
// perfect maze of the given size: all lattice sides, minus one per passage,
// minus the entrance and exit.
func ExpectedCount(width, height int) int {
	return width*(height+1) + height*(width+1) - (width*height - 1) - 2
}
