package walls

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/maze"
)

// Side returns the lattice segment covering side d of cell (c, r).
func Side(c, r int, d maze.Direction) Segment {
	switch d {
	case maze.North:
		return NewSegment(Point{c, r}, Point{c + 1, r})
	case maze.South:
		return NewSegment(Point{c, r + 1}, Point{c + 1, r + 1})
	case maze.West:
		return NewSegment(Point{c, r}, Point{c, r + 1})
	default:
		return NewSegment(Point{c + 1, r}, Point{c + 1, r + 1})
	}
}

// Extract collects the closed sides of every cell of g, minus the entrance
// and exit, sorted by [Segment.Compare].
//
// A missing entrance or exit means the grid carries an open side on its
// border, which a carved maze never does; it is reported as INTERNAL_ERROR.
func Extract(g *maze.Grid) ([]Segment, error) {
	set := mapset.New[Segment]()
	for r := range g.Height {
		for c := range g.Width {
			cell := g.At(c, r)
			for _, d := range maze.Directions {
				if !cell.IsOpen(d) {
					set.Put(Side(c, r, d))
				}
			}
		}
	}

	for _, s := range []Segment{Entrance(g.Width, g.Height), Exit(g.Width, g.Height)} {
		if !set.Has(s) {
			return nil, errors.New(errors.ErrCodeInternal, "border segment %s is not a wall", s)
		}
		set.Remove(s)
	}

	segs := make([]Segment, 0, set.Size())
	set.Each(func(s Segment) {
		segs = append(segs, s)
	})
	slices.SortFunc(segs, Segment.Compare)
	return segs, nil
}
