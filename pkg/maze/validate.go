package maze

import (
	"github.com/spakin/disjoint"

	"github.com/matzehuels/mazestroke/pkg/errors"
)

// Validate checks that every open side is mirrored by its neighbor and that
// the passages form a spanning tree: W·H−1 of them, no cycle, one component.
func (g *Grid) Validate() error {
	for r := range g.Height {
		for c := range g.Width {
			for _, d := range Directions {
				if !g.At(c, r).IsOpen(d) {
					continue
				}
				nc, nr, ok := g.Neighbor(c, r, d)
				if !ok {
					return errors.New(errors.ErrCodeInternal,
						"cell (%d,%d) is open to the %s edge of the grid", c, r, d)
				}
				if !g.At(nc, nr).IsOpen(d.Opposite()) {
					return errors.New(errors.ErrCodeInternal,
						"cell (%d,%d) is open to %s but (%d,%d) is closed to %s", c, r, d, nc, nr, d.Opposite())
				}
			}
		}
	}

	want := g.Width*g.Height - 1
	if n := g.Passages(); n != want {
		return errors.New(errors.ErrCodeInternal, "grid has %d passages, want %d", n, want)
	}

	reaches := make([]*disjoint.Element, g.Width*g.Height)
	for i := range reaches {
		reaches[i] = disjoint.NewElement()
	}
	for _, e := range g.Edges() {
		nc, nr, _ := g.Neighbor(e.C, e.R, e.Dir)
		a, b := reaches[e.R*g.Width+e.C], reaches[nr*g.Width+nc]
		if a.Find() == b.Find() {
			return errors.New(errors.ErrCodeInternal, "passage %s of (%d,%d) closes a cycle", e.Dir, e.C, e.R)
		}
		disjoint.Union(a, b)
	}
	root := reaches[0].Find()
	for i, el := range reaches {
		if el.Find() != root {
			return errors.New(errors.ErrCodeInternal, "cell (%d,%d) is unreachable", i%g.Width, i/g.Width)
		}
	}
	return nil
}
